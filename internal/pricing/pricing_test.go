package pricing

import (
	"testing"

	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_FixedRateTotals(t *testing.T) {
	t.Parallel()

	items := []models.OrderItem{
		{Name: "Dal", Price: 100, Quantity: 2},
		{Name: "Roti", Price: 50, Quantity: 1},
	}

	got := Calculate(items)
	assert.Equal(t, 250.0, got.Subtotal)
	assert.Equal(t, 12.5, got.Tax)
	assert.Equal(t, 262.5, got.GrandTotal)
}

func TestCalculate_RoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	got := Calculate([]models.OrderItem{{Name: "Tea", Price: 10.99, Quantity: 3}})
	assert.Equal(t, 32.97, got.Subtotal)
	assert.Equal(t, 1.65, got.Tax)
	assert.Equal(t, 34.62, got.GrandTotal)
}

func TestCalculate_Empty(t *testing.T) {
	t.Parallel()

	got := Calculate(nil)
	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.Tax)
	assert.Zero(t, got.GrandTotal)
}

func TestGroup_MergesSameName(t *testing.T) {
	t.Parallel()

	lines := []models.CartLine{
		{Name: "Pizza", Price: 200, Quantity: 1, Section: "Mains"},
		{Name: "Coke", Price: 40, Quantity: 1},
		{Name: "Pizza", Price: 200, Quantity: 2},
	}

	items := Group(lines)
	require.Len(t, items, 2)

	pizza := items[0]
	assert.Equal(t, "Pizza", pizza.Name)
	assert.Equal(t, 3, pizza.Quantity)
	assert.Equal(t, 200.0, pizza.Price)
	assert.Equal(t, "Mains", pizza.Section)
	require.NotNil(t, pizza.TotalPrice)
	assert.Equal(t, 600.0, *pizza.TotalPrice)

	assert.Equal(t, "Coke", items[1].Name)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestGroup_MissingQuantityCountsAsOne(t *testing.T) {
	t.Parallel()

	items := Group([]models.CartLine{
		{Name: "Lassi", Price: 60},
		{Name: "Lassi", Price: 60, Quantity: 2},
	})
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 180.0, *items[0].TotalPrice)
}

func TestGroup_FirstPriceWins(t *testing.T) {
	t.Parallel()

	items := Group([]models.CartLine{
		{Name: "Soup", Price: 100, Quantity: 1},
		{Name: "Soup", Price: 120, Quantity: 1},
	})
	require.Len(t, items, 1)
	assert.Equal(t, 100.0, items[0].Price)
	assert.Equal(t, 220.0, *items[0].TotalPrice)
	assert.Equal(t, 220.0, Calculate(items).Subtotal)
}

func TestTotalQuantity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, TotalQuantity([]models.OrderItem{{Quantity: 3}, {Quantity: 0}}))
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 12.345, want: 12.35},
		{in: 12.344, want: 12.34},
		{in: 262.5, want: 262.5},
		{in: 0, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in))
	}
}
