package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// hclFile is the top-level structure of an HCL session file.
type hclFile struct {
	Options  []*hclOptionsBlock `hcl:"options,block"`
	Settings *Settings          `hcl:"settings,block"`
}

// hclOptionsBlock keeps its body raw: option keys are free-form attribute
// names, matched against the registry later.
type hclOptionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// HCLLoader reads session defaults from HCL files.
type HCLLoader struct{}

func (l *HCLLoader) Extensions() []string { return []string{extHCL} }

func (l *HCLLoader) Load(ctx context.Context, path string) (*Defaults, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	defaults := &Defaults{}
	if parsed.Settings != nil {
		defaults.Settings = *parsed.Settings
	}
	for _, block := range parsed.Options {
		selections, err := selectionsFromBody(block.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding options in %s: %w", path, err)
		}
		defaults.Options = append(defaults.Options, selections...)
	}
	return defaults, nil
}

// selectionsFromBody reads every attribute of an options block in source
// order.
func selectionsFromBody(body hcl.Body) ([]Selection, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading option attributes: %w", diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	selections := make([]Selection, 0, len(ordered))
	for _, attr := range ordered {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating option '%s': %w", attr.Name, diags)
		}
		values, err := stringsFromCty(value)
		if err != nil {
			return nil, fmt.Errorf("option '%s': %w", attr.Name, err)
		}
		selections = append(selections, Selection{Key: attr.Name, Values: values})
	}
	return selections, nil
}

// stringsFromCty coerces an option value: either one string-convertible
// scalar or a collection of them.
func stringsFromCty(v cty.Value) ([]string, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("value must not be null")
	}
	t := v.Type()
	if t.IsTupleType() || t.IsListType() || t.IsSetType() {
		values := make([]string, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()
			s, err := scalarToString(el)
			if err != nil {
				return nil, err
			}
			values = append(values, s)
		}
		return values, nil
	}
	s, err := scalarToString(v)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func scalarToString(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", fmt.Errorf("value must not be null")
	}
	converted, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("value is not convertible to string: %w", err)
	}
	return converted.AsString(), nil
}
