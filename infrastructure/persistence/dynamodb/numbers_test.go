package dynamodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeItem(t *testing.T) {
	t.Run("integral floats become int64", func(t *testing.T) {
		item := normalizeItem(map[string]interface{}{
			"stock_quantity": float64(42),
			"price":          float64(19.99),
		})

		assert.Equal(t, int64(42), item["stock_quantity"])
		assert.Equal(t, 19.99, item["price"])
	})

	t.Run("whole-dollar price stays integral", func(t *testing.T) {
		item := normalizeItem(map[string]interface{}{"price": float64(100)})

		assert.Equal(t, int64(100), item["price"])
	})

	t.Run("recurses into nested maps and lists", func(t *testing.T) {
		item := normalizeItem(map[string]interface{}{
			"nested": map[string]interface{}{"count": float64(3)},
			"values": []interface{}{float64(1), float64(2.5), "text"},
		})

		nested := item["nested"].(map[string]interface{})
		assert.Equal(t, int64(3), nested["count"])

		values := item["values"].([]interface{})
		assert.Equal(t, int64(1), values[0])
		assert.Equal(t, 2.5, values[1])
		assert.Equal(t, "text", values[2])
	})

	t.Run("integers beyond exact float precision stay float64", func(t *testing.T) {
		item := normalizeItem(map[string]interface{}{
			"boundary": float64(1 << 53),
			"inside":   float64(1<<53 - 1),
		})

		assert.Equal(t, float64(1<<53), item["boundary"])
		assert.Equal(t, int64(1<<53-1), item["inside"])
	})

	t.Run("non-numeric values pass through", func(t *testing.T) {
		item := normalizeItem(map[string]interface{}{
			"name":   "Widget",
			"active": true,
		})

		assert.Equal(t, "Widget", item["name"])
		assert.Equal(t, true, item["active"])
	})

	t.Run("nil item", func(t *testing.T) {
		assert.Nil(t, normalizeItem(nil))
	})
}
