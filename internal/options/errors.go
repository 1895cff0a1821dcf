package options

import "fmt"

// UnknownItemError reports a value that names no item in its category.
type UnknownItemError struct {
	// Kind is the category's singular label, e.g. "Job".
	Kind string
	// Value is the normalized input that failed to resolve.
	Value string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("%s with name '%s' is not registered", e.Kind, e.Value)
}

// UnsupportedCategoryError reports a selection attempt on a category that is
// deliberately not configurable through option arguments.
type UnsupportedCategoryError struct {
	// Value is the selection the user attempted.
	Value string
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("logger selection via command-line options is not supported, got '%s'", e.Value)
}
