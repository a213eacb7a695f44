package model

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/andybalholm/cascadia"
)

// ErrInvalidConfig is matched by every ConfigValidationError.
var ErrInvalidConfig = errors.New("model: invalid widget configuration")

var containerPattern = regexp.MustCompile(`^\w+$`)

// ConfigValidationError reports a single violated configuration invariant.
type ConfigValidationError struct {
	Property string
	Reason   string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("model: invalid configuration for %q: %s", e.Property, e.Reason)
}

// Is lets errors.Is match ErrInvalidConfig.
func (e *ConfigValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ValidContainer reports whether name is usable as a container selector.
// Only [A-Za-z0-9_] is accepted so the name can be used verbatim as a CSS
// class and inside generated script.
func ValidContainer(name string) bool {
	return containerPattern.MatchString(name)
}

// Validate checks every invariant and returns all violations joined with
// errors.Join. A nil return means the configuration can be rendered.
func Validate(cfg Config, record Record) error {
	var errs []error
	add := func(property, reason string) {
		errs = append(errs, &ConfigValidationError{Property: property, Reason: reason})
	}

	if !ValidContainer(cfg.Container) {
		add("container", "allowed only alphanumeric characters plus underscore: [A-Za-z0-9_]")
	}
	if reason := selectorProblem(cfg.Body); reason != "" {
		add("body", reason)
	}
	if reason := selectorProblem(cfg.Item); reason != "" {
		add("item", reason)
	}
	switch {
	case isNilRecord(record):
		add("model", "must be set")
	case record.FormName() == "":
		add("model", "form name cannot be empty for tabular inputs")
	}
	if cfg.FormID == "" {
		add("formId", "must be set")
	}
	if !cfg.InsertPosition.Valid() {
		add("insertPosition", fmt.Sprintf("allowed values: %q or %q", InsertBottom, InsertTop))
	}
	if len(cfg.Fields) == 0 {
		add("fields", "must list at least one field")
	}
	if cfg.Min < 0 {
		add("min", "must be zero or greater")
	}
	if cfg.Limit < cfg.Min {
		add("limit", fmt.Sprintf("must be greater than or equal to min (%d)", cfg.Min))
	}

	return errors.Join(errs...)
}

// ValidationErrors unpacks the individual violations from an error returned by
// Validate. Unrelated errors yield nil.
func ValidationErrors(err error) []*ConfigValidationError {
	if err == nil {
		return nil
	}
	var out []*ConfigValidationError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			out = append(out, ValidationErrors(inner)...)
		}
		return out
	}
	var single *ConfigValidationError
	if errors.As(err, &single) {
		out = append(out, single)
	}
	return out
}

// selectorProblem returns why selector cannot be used to query rendered
// markup, or "" when it compiles.
func selectorProblem(selector string) string {
	if selector == "" {
		return "must be set"
	}
	if _, err := cascadia.Compile(selector); err != nil {
		return fmt.Sprintf("invalid selector %q: %v", selector, err)
	}
	return ""
}

func isNilRecord(record Record) bool {
	if record == nil {
		return true
	}
	rv := reflect.ValueOf(record)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
