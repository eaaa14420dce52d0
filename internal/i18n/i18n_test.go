package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load()
	require.NoError(t, err)
	return b
}

func TestLoad_EmbeddedLocales(t *testing.T) {
	b := loadBundle(t)
	assert.True(t, b.Has("en"))
	assert.True(t, b.Has("ta"))
	assert.False(t, b.Has("fr"))
	assert.ElementsMatch(t, []string{"en", "ta"}, b.Locales())
}

func TestT_Lookup(t *testing.T) {
	b := loadBundle(t)

	assert.Equal(t, "Your cart is empty.", b.T("en", "checkout_empty_cart", nil))

	// Tamil has its own translation, not the English string.
	ta := b.T("ta", "checkout_empty_cart", nil)
	assert.NotEmpty(t, ta)
	assert.NotEqual(t, "Your cart is empty.", ta)
}

func TestT_Placeholders(t *testing.T) {
	b := loadBundle(t)

	got := b.T("en", "orders_updated", map[string]any{"orderId": "a1b2c3d", "status": "Packed"})
	assert.Equal(t, "Order a1b2c3d is now Packed.", got)

	// Numeric values are formatted.
	got = b.T("en", "time_advanced", map[string]any{"days": 3})
	assert.Equal(t, "Simulated time advanced by 3 day(s).", got)

	// An unbound placeholder is left as-is.
	got = b.T("en", "orders_updated", map[string]any{"orderId": "a1b2c3d"})
	assert.Equal(t, "Order a1b2c3d is now {{status}}.", got)
}

func TestT_Fallbacks(t *testing.T) {
	b := loadBundle(t)

	// Unknown locale resolves through English.
	assert.Equal(t, "Order not found.", b.T("fr", "orders_not_found", nil))

	// A key in no locale is echoed back.
	assert.Equal(t, "no_such_key", b.T("en", "no_such_key", nil))
	assert.Equal(t, "no_such_key", b.T("ta", "no_such_key", nil))
}
