package options

import (
	"fmt"
	"strings"
)

// Registry holds the closed category set. It is built once at startup and
// read-only afterwards, so lookups need no locking.
type Registry struct {
	categories []Category
	byKey      map[string]Category
}

// NewRegistry builds a registry over the compiled-in categories.
func NewRegistry() *Registry {
	r := &Registry{
		byKey: make(map[string]Category),
	}
	for _, c := range builtinCategories() {
		r.register(c)
	}
	return r
}

func (r *Registry) register(c Category) {
	if _, exists := r.byKey[c.Key()]; exists {
		panic(fmt.Sprintf("option category with key '%s' already registered", c.Key()))
	}
	r.byKey[c.Key()] = c
	r.categories = append(r.categories, c)
}

// Category returns the category registered under the normalized key.
func (r *Registry) Category(key string) (Category, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

// Categories returns every category in registration order. Callers must not
// mutate the returned slice.
func (r *Registry) Categories() []Category {
	return r.categories
}

// IsOptionArg reports whether arg selects option items: it contains '=' and
// its normalized key names a registered category. The flag layer uses this
// to keep option arguments away from flag parsing.
func (r *Registry) IsOptionArg(arg string) bool {
	key, _, found := strings.Cut(arg, "=")
	if !found {
		return false
	}
	_, ok := r.byKey[NormalizeKey(key)]
	return ok
}

// NormalizeKey canonicalizes the key half of an option argument: lower-case,
// leading "--" stripped, pluralized with a trailing "s" unless one is
// already present.
func NormalizeKey(key string) string {
	key = strings.TrimPrefix(strings.ToLower(key), "--")
	if !strings.HasSuffix(key, "s") {
		key += "s"
	}
	return key
}
