// Package pricing groups cart lines and derives order totals.
package pricing

import (
	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/shopspring/decimal"
)

var TaxRate = decimal.RequireFromString("0.05")

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"gstAmount"`
	GrandTotal float64 `json:"grandTotal"`
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func lineQuantity(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}

// Group merges lines that share a name. The merged unit price is the price of
// the first line seen with that name, while TotalPrice sums price*quantity of
// every merged line, so two same-named lines with different prices produce a
// TotalPrice that is not Price*Quantity.
func Group(lines []models.CartLine) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(lines))
	idx := make(map[string]int, len(lines))
	totals := make([]decimal.Decimal, 0, len(lines))

	for _, ln := range lines {
		qty := lineQuantity(ln.Quantity)
		lineTotal := decimal.NewFromFloat(ln.Price).Mul(decimal.NewFromInt(int64(qty)))

		if i, ok := idx[ln.Name]; ok {
			out[i].Quantity += qty
			totals[i] = totals[i].Add(lineTotal)
			continue
		}

		idx[ln.Name] = len(out)
		out = append(out, models.OrderItem{
			Name:     ln.Name,
			Quantity: qty,
			Price:    ln.Price,
			Image:    ln.Image,
			Cuisine:  ln.Cuisine,
			Section:  ln.Section,
		})
		totals = append(totals, lineTotal)
	}

	for i := range out {
		tp, _ := totals[i].Round(2).Float64()
		out[i].TotalPrice = &tp
	}
	return out
}

func Subtotal(items []models.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if it.TotalPrice != nil {
			sum = sum.Add(decimal.NewFromFloat(*it.TotalPrice))
			continue
		}
		qty := lineQuantity(it.Quantity)
		sum = sum.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(qty))))
	}
	return sum
}

func Calculate(items []models.OrderItem) Totals {
	sub := Subtotal(items).Round(2)
	tax := sub.Mul(TaxRate).Round(2)
	grand := sub.Add(tax).Round(2)

	s, _ := sub.Float64()
	t, _ := tax.Float64()
	g, _ := grand.Float64()
	return Totals{Subtotal: s, Tax: t, GrandTotal: g}
}

func TotalQuantity(items []models.OrderItem) int {
	n := 0
	for _, it := range items {
		n += lineQuantity(it.Quantity)
	}
	return n
}
