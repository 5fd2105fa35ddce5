package models

type Column struct {
	Name string
	Kind Kind
}

// Reserved columns have no name and are always written blank.
func (c Column) Reserved() bool {
	return c.Name == ""
}

const (
	SvcRefNbr          = "svc_ref_nbr"
	TransactionType    = "transaction_Type"
	ContractNumber     = "contract_number"
	ClientNote1        = "client_note_1"
	PlanCode           = "plan_code"
	EffectiveDate      = "effective_date"
	Unknown7           = "unknown_7"
	Unknown8           = "unknown_8"
	FirstName          = "first_name"
	LastName           = "last_name"
	Address1           = "address1"
	Address2           = "address2"
	City               = "city"
	State              = "state"
	ZipCode            = "zip_code"
	Phone              = "phone"
	Email              = "email"
	Year               = "year"
	Make               = "make"
	Model              = "model"
	VIN                = "vin"
	Unknown22          = "unknown_22"
	Unknown23          = "unknown_23"
	Unknown24          = "unknown_24"
	ExpirationDate     = "expiration_date"
	BillingDataElement = "billing_data_element"
)

// Columns is the layout of the contract extract, in file order.
var Columns = []Column{
	{SvcRefNbr, KindText},
	{TransactionType, KindText},
	{ContractNumber, KindText},
	{ClientNote1, KindInt},
	{PlanCode, KindText},
	{EffectiveDate, KindDate},
	{Unknown7, KindBlank},
	{Unknown8, KindBlank},
	{FirstName, KindText},
	{LastName, KindText},
	{Address1, KindText},
	{Address2, KindText},
	{City, KindText},
	{State, KindText},
	{ZipCode, KindText},
	{Phone, KindText},
	{Email, KindText},
	{Year, KindInt},
	{Make, KindText},
	{Model, KindText},
	{VIN, KindText},
	{Unknown22, KindBlank},
	{Unknown23, KindBlank},
	{Unknown24, KindBlank},
	{ExpirationDate, KindDate},
	{"", KindBlank},
	{BillingDataElement, KindText},
}

func Header(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
