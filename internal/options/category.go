package options

import (
	"fmt"
	"sync"

	"github.com/vk/benchgridgo/internal/diagnostics"
	"github.com/vk/benchgridgo/internal/runcfg"
)

// Category is one closed option group. Implementations differ only in how
// names resolve to items: from a static table, from runtime discovery, or
// not at all.
type Category interface {
	// Key is the canonical plural identifier, e.g. "jobs".
	Key() string

	// Kind is the singular label used in error messages, e.g. "Job".
	Kind() string

	// Names lists the selectable names in registration order. Categories
	// that cannot enumerate without side effects return nil.
	Names() []string

	// Lookup resolves one normalized name to its item bundle.
	Lookup(name string) ([]any, error)

	// Items is the aggregate of every bundle in registration order,
	// duplicates preserved.
	Items() []any

	// Apply looks value up and adds the resulting bundle to cfg.
	Apply(value string, cfg *runcfg.Config) error

	// ApplyAll adds the whole aggregate to cfg.
	ApplyAll(cfg *runcfg.Config) error
}

// entry is one name registration inside a static table.
type entry struct {
	name  string
	items []any
}

// staticCategory resolves names against a table fixed at construction.
// The aggregate and the name list are memoized on first use.
type staticCategory struct {
	key     string
	kind    string
	entries []entry
	index   map[string][]any
	names   func() []string
	all     func() []any
}

func newStaticCategory(key, kind string, entries []entry) *staticCategory {
	c := &staticCategory{
		key:     key,
		kind:    kind,
		entries: entries,
		index:   make(map[string][]any, len(entries)),
	}
	for _, e := range entries {
		if _, exists := c.index[e.name]; exists {
			panic(fmt.Sprintf("option category '%s' already registers name '%s'", key, e.name))
		}
		c.index[e.name] = e.items
	}
	c.names = sync.OnceValue(func() []string {
		names := make([]string, len(c.entries))
		for i, e := range c.entries {
			names[i] = e.name
		}
		return names
	})
	c.all = sync.OnceValue(func() []any {
		var all []any
		for _, e := range c.entries {
			all = append(all, e.items...)
		}
		return all
	})
	return c
}

func (c *staticCategory) Key() string  { return c.key }
func (c *staticCategory) Kind() string { return c.kind }

func (c *staticCategory) Names() []string { return c.names() }

func (c *staticCategory) Lookup(name string) ([]any, error) {
	items, ok := c.index[name]
	if !ok {
		return nil, &UnknownItemError{Kind: c.kind, Value: name}
	}
	return items, nil
}

func (c *staticCategory) Items() []any { return c.all() }

func (c *staticCategory) Apply(value string, cfg *runcfg.Config) error {
	items, err := c.Lookup(value)
	if err != nil {
		return err
	}
	cfg.Add(items...)
	return nil
}

func (c *staticCategory) ApplyAll(cfg *runcfg.Config) error {
	cfg.Add(c.Items()...)
	return nil
}

// diagnoserCategory resolves values against discovered probes instead of a
// static table. Names returns nil: enumerating would trigger discovery,
// which listing must not do.
type diagnoserCategory struct{}

func (c *diagnoserCategory) Key() string  { return "diagnosers" }
func (c *diagnoserCategory) Kind() string { return "Diagnoser" }

func (c *diagnoserCategory) Names() []string { return nil }

func (c *diagnoserCategory) Lookup(name string) ([]any, error) {
	for _, d := range diagnostics.Available() {
		if diagnostics.DisplayName(d) == name {
			return []any{d}, nil
		}
	}
	return nil, &UnknownItemError{Kind: c.Kind(), Value: name}
}

func (c *diagnoserCategory) Items() []any {
	probes := diagnostics.Available()
	items := make([]any, len(probes))
	for i, d := range probes {
		items[i] = d
	}
	return items
}

func (c *diagnoserCategory) Apply(value string, cfg *runcfg.Config) error {
	items, err := c.Lookup(value)
	if err != nil {
		return err
	}
	cfg.Add(items...)
	return nil
}

func (c *diagnoserCategory) ApplyAll(cfg *runcfg.Config) error {
	cfg.Add(c.Items()...)
	return nil
}

// unsupportedCategory rejects every selection. The loggers group is wired
// programmatically, not through option arguments.
type unsupportedCategory struct {
	key  string
	kind string
}

func (c *unsupportedCategory) Key() string  { return c.key }
func (c *unsupportedCategory) Kind() string { return c.kind }

func (c *unsupportedCategory) Names() []string { return nil }

func (c *unsupportedCategory) Lookup(name string) ([]any, error) {
	return nil, &UnsupportedCategoryError{Value: name}
}

func (c *unsupportedCategory) Items() []any { return nil }

func (c *unsupportedCategory) Apply(value string, cfg *runcfg.Config) error {
	_, err := c.Lookup(value)
	return err
}

func (c *unsupportedCategory) ApplyAll(cfg *runcfg.Config) error {
	return &UnsupportedCategoryError{Value: "all"}
}
