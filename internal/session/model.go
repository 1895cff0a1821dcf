package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Defaults is the format-agnostic model of a session file: ordered option
// selections plus display settings.
type Defaults struct {
	Options  []Selection
	Settings Settings
}

// Selection is one category selection, e.g. key "columns" with values
// ["mean", "p95"]. Keys and values are kept as written; normalization and
// lookup happen later, in the option resolver.
type Selection struct {
	Key    string
	Values []string
}

// Settings are display preferences a session file may set.
type Settings struct {
	// OutputWidth overrides terminal width detection when positive.
	OutputWidth int `hcl:"output_width,optional" json:"output_width,omitempty" validate:"omitempty,gte=40,lte=240"`

	// Artifacts is the directory run artifacts are written to, relative to
	// the working directory.
	Artifacts string `hcl:"artifacts,optional" json:"artifacts,omitempty"`
}

// Args renders every selection as a resolver argument of the form
// "key=v1,v2", in selection order.
func (d *Defaults) Args() []string {
	args := make([]string, 0, len(d.Options))
	for _, sel := range d.Options {
		args = append(args, sel.Key+"="+strings.Join(sel.Values, ","))
	}
	return args
}

// merge appends other's selections after d's and lets other's explicit
// settings win.
func (d *Defaults) merge(other *Defaults) {
	d.Options = append(d.Options, other.Options...)
	if other.Settings.OutputWidth != 0 {
		d.Settings.OutputWidth = other.Settings.OutputWidth
	}
	if other.Settings.Artifacts != "" {
		d.Settings.Artifacts = other.Settings.Artifacts
	}
}

func (d *Defaults) validate() error {
	if err := validate.Struct(&d.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if filepath.IsAbs(d.Settings.Artifacts) {
		return fmt.Errorf("settings: artifacts path must be relative, got %s", d.Settings.Artifacts)
	}
	for _, sel := range d.Options {
		if sel.Key == "" {
			return fmt.Errorf("option selection with empty key")
		}
		if len(sel.Values) == 0 {
			return fmt.Errorf("option '%s' has no values", sel.Key)
		}
	}
	return nil
}
