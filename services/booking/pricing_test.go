package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	t.Run("two hours at 20.00 per hour", func(t *testing.T) {
		total, err := Price(2000, "18:00", "20:00")
		require.NoError(t, err)
		assert.Equal(t, int64(4000), total)
	})

	t.Run("single slot", func(t *testing.T) {
		total, err := Price(1500, "09:00", "10:00")
		require.NoError(t, err)
		assert.Equal(t, int64(1500), total)
	})

	t.Run("partial hour prorates by the minute", func(t *testing.T) {
		total, err := Price(2000, "18:00", "19:30")
		require.NoError(t, err)
		assert.Equal(t, int64(3000), total)
	})

	t.Run("monotonic in duration", func(t *testing.T) {
		one, err := Price(2500, "10:00", "11:00")
		require.NoError(t, err)
		three, err := Price(2500, "10:00", "13:00")
		require.NoError(t, err)
		assert.Greater(t, three, one)
		assert.Equal(t, one*3, three)
	})

	t.Run("zero rate prices to zero", func(t *testing.T) {
		total, err := Price(0, "08:00", "22:00")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := Price(2000, "20:00", "18:00")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := Price(2000, "18:00", "18:00")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("malformed times", func(t *testing.T) {
		_, err := Price(2000, "18h00", "20:00")
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)

		_, err = Price(2000, "18:00", "24:30")
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})
}

func TestApplyDiscount(t *testing.T) {
	t.Run("flat percent", func(t *testing.T) {
		assert.Equal(t, int64(3600), ApplyDiscount(4000, 10))
		assert.Equal(t, int64(2000), ApplyDiscount(4000, 50))
	})

	t.Run("discount rounds down, payable rounds up", func(t *testing.T) {
		assert.Equal(t, int64(67), ApplyDiscount(95, 30))
	})

	t.Run("zero percent is identity", func(t *testing.T) {
		assert.Equal(t, int64(4000), ApplyDiscount(4000, 0))
	})

	t.Run("never negative", func(t *testing.T) {
		assert.Zero(t, ApplyDiscount(4000, 100))
		assert.Zero(t, ApplyDiscount(4000, 150))
	})
}
