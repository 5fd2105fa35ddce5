package fixture

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	refCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	RefCodeLength   = 5
)

// ReferenceCode returns a 5 character code drawn with replacement from A-Z0-9.
func ReferenceCode(f *gofakeit.Faker) string {
	var b strings.Builder
	b.Grow(RefCodeLength)
	for range RefCodeLength {
		b.WriteByte(refCodeAlphabet[f.Number(0, len(refCodeAlphabet)-1)])
	}
	return b.String()
}

// InvalidEmail returns an address that is malformed in one of five ways.
func InvalidEmail(f *gofakeit.Faker) string {
	patterns := []func() string{
		func() string { return "not-an-email" },
		func() string { return word(f) + "@missing-dot" },
		func() string { return word(f) + word(f) + word(f) },
		func() string { return word(f) + "@" + word(f) + "@" + word(f) + ".com" },
		func() string { return word(f) + "@" + word(f) },
	}
	return patterns[f.Number(0, len(patterns)-1)]()
}

// word is a fabricated lowercase token. Dictionary entries with spaces or
// punctuation are reduced to their letters so emails stay malformed the
// intended way.
func word(f *gofakeit.Faker) string {
	w := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, f.Word())
	if w == "" {
		return strings.ToLower(f.LetterN(6))
	}
	return w
}

func secondaryAddress(f *gofakeit.Faker) string {
	return f.Numerify(f.RandomString([]string{"Apt. ###", "Suite ###"}))
}
