package cache

import (
	"sort"
	"strings"
)

// Key identifies one cached query: the resource family, the operation within
// it, and the parameters that scope it. Two keys with equal params are the
// same key no matter the order the params were set in.
type Key struct {
	Entity    string
	Qualifier string
	Params    map[string]string
}

// NewKey builds a Key. Params may be nil.
func NewKey(entity, qualifier string, params map[string]string) Key {
	return Key{Entity: entity, Qualifier: qualifier, Params: params}
}

// String returns the canonical form, with params in sorted order so that
// structurally equal keys collapse to the same string.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Entity)
	b.WriteByte(':')
	b.WriteString(k.Qualifier)

	if len(k.Params) > 0 {
		names := make([]string, 0, len(k.Params))
		for name := range k.Params {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteByte(':')
		for i, name := range names {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(name)
			b.WriteByte('=')
			b.WriteString(k.Params[name])
		}
	}
	return b.String()
}
