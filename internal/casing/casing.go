// Package casing normalizes the object keys of decoded JSON values.
package casing

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Key converts a snake_case or kebab-case key to camelCase. Keys without a
// separator are returned unchanged so camelCase keys and identifiers such as
// "ETH" survive.
func Key(k string) string {
	if !strings.ContainsAny(k, "_-") {
		return k
	}
	return lo.CamelCase(k)
}

// Keys returns a copy of v with every object key passed through Key, at any
// depth. When two keys collide, the one already in camelCase wins; among
// converted keys the lexically smallest source key wins.
func Keys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := lo.Keys(t)
		slices.Sort(keys)

		out := make(map[string]any, len(t))
		for _, k := range keys {
			if Key(k) == k {
				out[k] = Keys(t[k])
			}
		}
		for _, k := range keys {
			converted := Key(k)
			if converted == k {
				continue
			}
			if _, taken := out[converted]; !taken {
				out[converted] = Keys(t[k])
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Keys(val)
		}
		return out
	default:
		return v
	}
}
