package dynamodb

import "math"

// DynamoDB stores numbers as exact decimal strings. Decoding an item into a
// generic map yields float64 for every number, which would render whole
// quantities as "7.0" style JSON artifacts. normalizeItem converts integral
// values back to int64 so stock quantities stay integers while monetary
// values keep their fraction.

const maxExactInt = float64(int64(1) << 53)

func normalizeItem(item map[string]interface{}) map[string]interface{} {
	if item == nil {
		return nil
	}
	for k, v := range item {
		item[k] = normalizeValue(v)
	}
	return item
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return normalizeItem(val)
	case []interface{}:
		for i, elem := range val {
			val[i] = normalizeValue(elem)
		}
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < maxExactInt {
			return int64(val)
		}
		return val
	default:
		return v
	}
}
