package product_test

import (
	"testing"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/product"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates an available product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Margherita", "tomato and mozzarella", 35.90, "pizzas", "https://cdn.example/margherita.png")

		require.NoError(t, err)
		assert.True(t, id.IsEqual(p.ID()))
		assert.Equal(t, "Margherita", p.Name())
		assert.Equal(t, "tomato and mozzarella", p.Description())
		assert.InDelta(t, 35.90, p.Price(), 0.001)
		assert.Equal(t, "pizzas", p.Category())
		assert.True(t, p.IsAvailable())
	})

	t.Run("allows a free product", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Brinde", "", 0, "extras", "")
		require.NoError(t, err)
		assert.Zero(t, p.Price())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := product.NewProduct(kernel.UUID{}, "x", "", 1, "pizzas", "")
		require.Error(t, err)

		_, err = product.NewProduct(id, "", "", 1, "pizzas", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = product.NewProduct(id, "x", "", -0.01, "pizzas", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = product.NewProduct(id, "x", "", 1, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreProduct(t *testing.T) {
	p, err := product.RestoreProduct(kernel.NewUUID(), "Calabresa", "", 42.00, "pizzas", "", false)

	require.NoError(t, err)
	assert.False(t, p.IsAvailable())
}

func TestProduct_Update(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Margherita", "old", 35.90, "pizzas", "")
	require.NoError(t, err)

	t.Run("replaces editable fields", func(t *testing.T) {
		err = p.Update("Margherita Especial", "new", 39.90, "pizzas", "https://cdn.example/new.png", false)

		require.NoError(t, err)
		assert.Equal(t, "Margherita Especial", p.Name())
		assert.Equal(t, "new", p.Description())
		assert.InDelta(t, 39.90, p.Price(), 0.001)
		assert.False(t, p.IsAvailable())
	})

	t.Run("rejects an invalid price and keeps state", func(t *testing.T) {
		err = p.Update("x", "", -1, "pizzas", "", true)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.InDelta(t, 39.90, p.Price(), 0.001)
	})
}

func TestProduct_Availability(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Guarana", "", 8.00, "drinks", "")
	require.NoError(t, err)

	p.MakeUnavailable()
	assert.False(t, p.IsAvailable())

	p.MakeAvailable()
	assert.True(t, p.IsAvailable())
}

func TestProduct_Validate(t *testing.T) {
	var p *product.Product
	require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)

	zero := &product.Product{}
	require.ErrorIs(t, zero.Validate(), product.ErrProductIsNotConstructed)
}
