package fixture

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"example.com/mppfixtures/models"
)

const (
	ContractPrefix = "MPP"
	BillingPrefix  = "MPP-767-"

	// TermDays separates the effective and expiration dates.
	TermDays = 3650
)

var (
	TransactionTypes = []string{"N", "C", "R", "U"}
	PlanCodes        = []string{"AB", "AC", "AA"}

	epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Generator builds contract records from its own random source. Two
// generators with the same non-zero seed and reference time produce the same
// records; seed 0 draws a seed from system entropy.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

func New(seed uint64, now time.Time) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   now,
	}
}

func (g *Generator) Batch(n int) []models.Record {
	records := make([]models.Record, 0, n)
	for range n {
		records = append(records, g.Record())
	}
	return records
}

func (g *Generator) Record() models.Record {
	f := g.faker

	effective := g.effectiveDate()
	expiration := effective.AddDate(0, 0, TermDays)
	vehicle := NewVehicle(f)

	return models.NewRecord(
		models.Field{Name: models.SvcRefNbr, Value: models.Text(ReferenceCode(f))},
		models.Field{Name: models.TransactionType, Value: models.Text(f.RandomString(TransactionTypes))},
		models.Field{Name: models.ContractNumber, Value: models.Text(ContractPrefix + digits(f, 20))},
		models.Field{Name: models.ClientNote1, Value: models.Int(f.Number(100, 999))},
		models.Field{Name: models.PlanCode, Value: models.Text(f.RandomString(PlanCodes))},
		models.Field{Name: models.EffectiveDate, Value: models.Date(effective)},
		models.Field{Name: models.Unknown7, Value: models.Blank()},
		models.Field{Name: models.Unknown8, Value: models.Blank()},
		models.Field{Name: models.FirstName, Value: models.Text(f.FirstName())},
		models.Field{Name: models.LastName, Value: models.Text(f.LastName())},
		models.Field{Name: models.Address1, Value: models.Text(f.Street())},
		models.Field{Name: models.Address2, Value: models.Text(secondaryAddress(f))},
		models.Field{Name: models.City, Value: models.Text(f.City())},
		models.Field{Name: models.State, Value: models.Text(f.StateAbr())},
		models.Field{Name: models.ZipCode, Value: models.Text(f.Zip())},
		models.Field{Name: models.Phone, Value: models.Text(f.PhoneFormatted())},
		models.Field{Name: models.Email, Value: models.Text(InvalidEmail(f))},
		models.Field{Name: models.Year, Value: models.Int(vehicle.Year)},
		models.Field{Name: models.Make, Value: models.Text(vehicle.Make)},
		models.Field{Name: models.Model, Value: models.Text(vehicle.Model)},
		models.Field{Name: models.VIN, Value: models.Text(vehicle.VIN)},
		models.Field{Name: models.Unknown22, Value: models.Blank()},
		models.Field{Name: models.Unknown23, Value: models.Blank()},
		models.Field{Name: models.Unknown24, Value: models.Blank()},
		models.Field{Name: models.ExpirationDate, Value: models.Date(expiration)},
		models.Field{Name: models.BillingDataElement, Value: models.Text(BillingPrefix + digits(f, 10))},
	)
}

// effectiveDate is a calendar day between the epoch and the reference time.
func (g *Generator) effectiveDate() time.Time {
	d := g.faker.DateRange(epoch, g.now).UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// digits returns an n digit number without a leading zero.
func digits(f *gofakeit.Faker, n uint) string {
	return strconv.Itoa(f.Number(1, 9)) + f.DigitN(n-1)
}
