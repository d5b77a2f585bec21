package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepro/invoice-api/internal/domain/pricing"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func item(qty, price string) pricing.Item {
	return pricing.Item{Quantity: dec(qty), UnitPrice: dec(price)}
}

func taxedItem(qty, price, rate string) pricing.Item {
	return pricing.Item{Quantity: dec(qty), UnitPrice: dec(price), TaxRate: decp(rate)}
}

func TestCompute_SubtotalIsSumOfItemAmounts(t *testing.T) {
	items := []pricing.Item{
		item("2", "10.50"),
		item("1", "99.99"),
		item("0.5", "8"),
	}
	got := pricing.Compute(items, decimal.Zero, "", decimal.Zero)

	assert.True(t, got.Subtotal.Equal(dec("124.99")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TotalAmount.Equal(got.Subtotal))
}

func TestCompute_SubtotalIndependentOfItemOrder(t *testing.T) {
	a := []pricing.Item{item("3", "7"), item("1", "0.10"), item("12", "2.25")}
	b := []pricing.Item{a[2], a[0], a[1]}

	ta := pricing.Compute(a, dec("10"), pricing.DiscountPercentage, dec("5"))
	tb := pricing.Compute(b, dec("10"), pricing.DiscountPercentage, dec("5"))

	assert.True(t, ta.Subtotal.Equal(tb.Subtotal))
	assert.True(t, ta.TotalAmount.Equal(tb.TotalAmount))
}

func TestCompute_InvoiceLevelTax(t *testing.T) {
	// No item-level tax, invoice rate 10%, no discount.
	items := []pricing.Item{item("4", "25")} // subtotal 100
	got := pricing.Compute(items, dec("10"), "", decimal.Zero)

	assert.True(t, got.TaxAmount.Equal(dec("10")), "tax = %s", got.TaxAmount)
	assert.True(t, got.TotalAmount.Equal(dec("110")))
}

func TestCompute_ItemTaxOverridesInvoiceTax(t *testing.T) {
	// One item carries 8%; the 20% invoice rate must contribute nothing.
	items := []pricing.Item{
		taxedItem("1", "100", "8"),
		item("1", "50"),
	}
	got := pricing.Compute(items, dec("20"), "", decimal.Zero)

	assert.True(t, got.Subtotal.Equal(dec("150")))
	assert.True(t, got.TaxAmount.Equal(dec("8")), "item tax wins, got %s", got.TaxAmount)
	assert.True(t, got.TotalAmount.Equal(dec("158")))
}

func TestCompute_PercentageDiscount(t *testing.T) {
	items := []pricing.Item{item("10", "100")} // subtotal 1000
	got := pricing.Compute(items, decimal.Zero, pricing.DiscountPercentage, dec("5"))

	assert.True(t, got.DiscountAmount.Equal(dec("50")))
	assert.True(t, got.TotalAmount.Equal(dec("950")))
}

func TestCompute_FixedDiscountExceedingSubtotalGoesNegative(t *testing.T) {
	items := []pricing.Item{item("1", "100")}
	got := pricing.Compute(items, decimal.Zero, pricing.DiscountFixed, dec("150"))

	require.True(t, got.DiscountAmount.Equal(dec("150")))
	// Not clamped to zero.
	assert.True(t, got.TotalAmount.Equal(dec("-50")), "total = %s", got.TotalAmount)
}

func TestCompute_FixedDiscountNotTreatedAsPercentage(t *testing.T) {
	items := []pricing.Item{item("10", "100")}
	got := pricing.Compute(items, decimal.Zero, pricing.DiscountFixed, dec("25"))

	assert.True(t, got.DiscountAmount.Equal(dec("25")))
	assert.True(t, got.TotalAmount.Equal(dec("975")))
}

func TestCompute_InvoiceTaxAppliesAfterDiscount(t *testing.T) {
	// End-to-end vector: items (40×50) + (10×100), tax 10%, discount 5%.
	items := []pricing.Item{
		item("40", "50"),
		item("10", "100"),
	}
	got := pricing.Compute(items, dec("10"), pricing.DiscountPercentage, dec("5"))

	assert.True(t, got.Subtotal.Equal(dec("3000")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.DiscountAmount.Equal(dec("150")), "discount = %s", got.DiscountAmount)
	assert.True(t, got.TaxAmount.Equal(dec("285")), "tax = %s", got.TaxAmount)
	assert.True(t, got.TotalAmount.Equal(dec("3135")), "total = %s", got.TotalAmount)
}

func TestCompute_EmptyItems(t *testing.T) {
	got := pricing.Compute(nil, dec("19"), pricing.DiscountFixed, dec("30"))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.DiscountAmount.Equal(dec("30")))
	// Tax applies to the negative post-discount amount.
	assert.True(t, got.TaxAmount.Equal(dec("-5.7")))
	assert.True(t, got.TotalAmount.Equal(dec("-35.7")))
}

func TestCompute_ZeroDiscountValueIgnoresKind(t *testing.T) {
	items := []pricing.Item{item("1", "80")}
	got := pricing.Compute(items, decimal.Zero, pricing.DiscountPercentage, decimal.Zero)

	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.TotalAmount.Equal(dec("80")))
}

func TestItemTax(t *testing.T) {
	assert.Nil(t, pricing.ItemTax(item("2", "10")))

	got := pricing.ItemTax(taxedItem("2", "100", "19"))
	require.NotNil(t, got)
	assert.True(t, got.Equal(dec("38")))
}

func TestRound2_HalfUpAtBoundaryOnly(t *testing.T) {
	assert.Equal(t, "1.01", pricing.Round2(dec("1.005")).StringFixed(2))
	assert.Equal(t, "2.34", pricing.Round2(dec("2.344999")).StringFixed(2))
}
