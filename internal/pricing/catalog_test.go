package pricing

import (
	"testing"

	"glassworks/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s(v string) *string { return &v }

func testSnapshot() *CatalogSnapshot {
	price := 30.0
	return &CatalogSnapshot{
		Glass: []domain.GlassPrice{
			{Color: "Прозрачный", Thickness: s("8 мм"), PricePerSqm: 45},
			{Color: "прозрачный", Thickness: s("10"), PricePerSqm: 50},
			{Color: "Бронза", Thickness: nil, PricePerSqm: 60},
		},
		Hardware: []domain.HardwareItem{
			{Name: "Профиль (GEL)", Section: "профили", UnitPrice: &price},
			{Name: "Ручка", Section: "ручки", UnitPrice: nil},
		},
		Services: []domain.ServiceItem{
			{Name: "Закалка", Price: 15},
		},
		BaseCosts: []domain.BaseCost{
			{Name: "Петля", Value: 12},
			{Name: "Доставка по городу", Value: 20},
		},
	}
}

func TestCatalog_GlassPrice_ThicknessNormalized(t *testing.T) {
	cat := testSnapshot()

	v, err := cat.GlassPrice("ПРОЗРАЧНЫЙ", "8")
	require.NoError(t, err)
	assert.Equal(t, 45.0, v)

	v, err = cat.GlassPrice("прозрачный", "10 мм")
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)

	_, err = cat.GlassPrice("прозрачный", "12")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_GlassPrice_NilThicknessMatchesEmpty(t *testing.T) {
	cat := testSnapshot()
	v, err := cat.GlassPrice("бронза", "")
	require.NoError(t, err)
	assert.Equal(t, 60.0, v)
}

func TestCatalog_HardwarePrice_NormalizedName(t *testing.T) {
	cat := testSnapshot()
	v, err := cat.HardwarePrice("профиль")
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)
}

func TestCatalog_HardwarePrice_NilPriceIsNotZero(t *testing.T) {
	cat := testSnapshot()
	_, err := cat.HardwarePrice("ручка")
	assert.ErrorIs(t, err, ErrNoPrice)
}

func TestCatalog_HardwareFallsBackToBaseCost(t *testing.T) {
	cat := testSnapshot()
	// "Петля" is only in base costs; it must resolve, not report unavailable.
	v, err := cat.HardwarePrice("петля")
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)
}

func TestCatalog_ServicePrice(t *testing.T) {
	cat := testSnapshot()

	v, err := cat.ServicePrice("закалка")
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)

	_, err = cat.ServicePrice("полировка")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_SurchargeChain(t *testing.T) {
	cat := testSnapshot()

	// Substring match reaches "Доставка по городу" in base costs.
	v, err := cat.surchargeValue([]string{"доставка"}, MatchSubstring)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)

	// Exact match must not over-match the same entry.
	_, err = cat.surchargeValue([]string{"доставка"}, MatchExact)
	assert.ErrorIs(t, err, ErrNotFound)
}
