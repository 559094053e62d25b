// Package docfields reads loosely typed document fields.
package docfields

func String(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

func Bool(doc map[string]any, key string) bool {
	b, _ := doc[key].(bool)
	return b
}

// Strings returns the string elements of an array field, skipping anything
// else. Never nil.
func Strings(doc map[string]any, key string) []string {
	out := []string{}
	arr, ok := doc[key].([]any)
	if !ok {
		return out
	}
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
