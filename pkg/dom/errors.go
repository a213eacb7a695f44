package dom

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is matched by TemplateNotFoundError.
var ErrTemplateNotFound = errors.New("dom: template not found")

// TemplateNotFoundError reports that no element matched the item selector.
type TemplateNotFoundError struct {
	Selector string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("dom: no element matches item selector %q", e.Selector)
}

func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// InvalidSelectorError wraps a selector compilation failure.
type InvalidSelectorError struct {
	Selector string
	Err      error
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("dom: invalid selector %q: %v", e.Selector, e.Err)
}

func (e *InvalidSelectorError) Unwrap() error {
	return e.Err
}
