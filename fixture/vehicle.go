package fixture

import (
	"github.com/brianvoe/gofakeit/v7"
)

const (
	MinVehicleYear = 2010
	MaxVehicleYear = 2025
)

// Makes lists the makes a vehicle can be drawn from, in table order.
var Makes = []string{"Ford", "Honda", "Toyota", "Chevrolet"}

// Models maps each make to the models it can be paired with.
var Models = map[string][]string{
	"Ford":      {"F-150", "Focus", "Mustang"},
	"Honda":     {"CRV", "Civic", "Pilot"},
	"Toyota":    {"Camry", "Corolla", "Tacoma"},
	"Chevrolet": {"Silverado", "Equinox", "Malibu"},
}

type Vehicle struct {
	VIN   string
	Year  int
	Make  string
	Model string
}

// NewVehicle fabricates a vehicle. The VIN is not decoded against the other
// fields.
func NewVehicle(f *gofakeit.Faker) Vehicle {
	mk := Makes[f.Number(0, len(Makes)-1)]
	choices := Models[mk]
	return Vehicle{
		VIN:   VIN(f),
		Year:  f.Number(MinVehicleYear, MaxVehicleYear),
		Make:  mk,
		Model: choices[f.Number(0, len(choices)-1)],
	}
}

const (
	vinLength        = 17
	vinCheckPosition = 8
	vinAlphabet      = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"
)

var vinWeights = [vinLength]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// VIN returns a 17 character identifier with a valid ISO 3779 check digit.
func VIN(f *gofakeit.Faker) string {
	b := make([]byte, vinLength)
	for i := range b {
		b[i] = vinAlphabet[f.Number(0, len(vinAlphabet)-1)]
	}
	b[vinCheckPosition] = VINCheckDigit(string(b))
	return string(b)
}

// VINCheckDigit computes the check character for a 17 character VIN. The
// character at the check position is ignored.
func VINCheckDigit(vin string) byte {
	sum := 0
	for i := 0; i < vinLength && i < len(vin); i++ {
		sum += vinValue(vin[i]) * vinWeights[i]
	}
	r := sum % 11
	if r == 10 {
		return 'X'
	}
	return byte('0' + r)
}

func vinValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'H':
		return int(c-'A') + 1
	case c >= 'J' && c <= 'N':
		return int(c-'J') + 1
	case c == 'P':
		return 7
	case c == 'R':
		return 9
	case c >= 'S' && c <= 'Z':
		return int(c-'S') + 2
	}
	return 0
}
