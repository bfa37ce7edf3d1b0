package guard_test

import (
	"errors"
	"testing"

	"github.com/AbnerVital/7KDelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errNotConstructed := errors.New("Money must be created via NewMoney")

	type money struct {
		amount float64
		guard  guard.ConstructorGuard
	}

	newMoney := func(amount float64) money {
		return money{amount: amount, guard: guard.NewConstructorGuard()}
	}

	constructed := newMoney(9.90)
	require.NoError(t, constructed.guard.Validate(errNotConstructed))
	assert.InDelta(t, 9.90, constructed.amount, 0.001)

	var zero money
	require.ErrorIs(t, zero.guard.Validate(errNotConstructed), errNotConstructed)
}
