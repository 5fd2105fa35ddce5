package fixture

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/mppfixtures/models"
)

var (
	contractPattern = regexp.MustCompile(`^MPP\d{20}$`)
	billingPattern  = regexp.MustCompile(`^MPP-767-\d{10}$`)
	refNow          = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
)

func get(t *testing.T, rec models.Record, name string) models.Value {
	t.Helper()
	v, ok := rec.Get(name)
	require.True(t, ok, "missing field %q", name)
	return v
}

func TestRecordFields(t *testing.T) {
	g := New(0, refNow)
	for range 200 {
		rec := g.Record()

		// Every named column is present, the reserved one is not.
		require.Equal(t, len(models.Columns)-1, rec.Len())
		for _, c := range models.Columns {
			if c.Reserved() {
				continue
			}
			v := get(t, rec, c.Name)
			assert.Equal(t, c.Kind, v.Kind(), c.Name)
		}

		assert.Regexp(t, refCodePattern, get(t, rec, models.SvcRefNbr).String())
		assert.Contains(t, TransactionTypes, get(t, rec, models.TransactionType).String())
		assert.Contains(t, PlanCodes, get(t, rec, models.PlanCode).String())
		assert.Regexp(t, contractPattern, get(t, rec, models.ContractNumber).String())
		assert.Regexp(t, billingPattern, get(t, rec, models.BillingDataElement).String())
		assert.Regexp(t, `^[1-9]\d{2}$`, get(t, rec, models.ClientNote1).String())
		assert.Regexp(t, `^[A-Z]{2}$`, get(t, rec, models.State).String())
		assert.NotRegexp(t, validEmail, get(t, rec, models.Email).String())

		for _, name := range []string{models.Unknown7, models.Unknown8, models.Unknown22, models.Unknown23, models.Unknown24} {
			assert.Equal(t, "", get(t, rec, name).String(), name)
		}
	}
}

func TestRecordDates(t *testing.T) {
	g := New(0, refNow)
	for range 500 {
		rec := g.Record()

		effective, err := time.Parse(models.DateLayout, get(t, rec, models.EffectiveDate).String())
		require.NoError(t, err)
		expiration, err := time.Parse(models.DateLayout, get(t, rec, models.ExpirationDate).String())
		require.NoError(t, err)

		require.Equal(t, TermDays*24*time.Hour, expiration.Sub(effective))
		require.False(t, effective.Before(epoch))
		require.False(t, effective.After(refNow))
	}
}

func TestRecordVehicleFromTable(t *testing.T) {
	g := New(0, refNow)
	for range 500 {
		rec := g.Record()
		mk := get(t, rec, models.Make).String()
		require.Contains(t, Models, mk)
		require.Contains(t, Models[mk], get(t, rec, models.Model).String())
	}
}

func TestBatch(t *testing.T) {
	records := New(0, refNow).Batch(50)
	assert.Len(t, records, 50)
	assert.Empty(t, New(0, refNow).Batch(0))
}

func TestSeedReproducible(t *testing.T) {
	a := New(42, refNow).Batch(20)
	b := New(42, refNow).Batch(20)
	assert.Equal(t, a, b)

	c := New(43, refNow).Batch(20)
	assert.NotEqual(t, a, c)
}
