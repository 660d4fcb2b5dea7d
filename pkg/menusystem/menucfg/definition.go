package menucfg

import (
	"errors"
	"fmt"
	"strings"
)

// Entry kinds accepted in a definition.
const (
	KindItem    = "item"
	KindBack    = "back"
	KindNumeric = "numeric"
	KindMenu    = "menu"
)

// Definition is the root of a declarative menu document.
type Definition struct {
	Title   string    `toml:"title" yaml:"title"`       // Root menu display name
	TitleID string    `toml:"title_id" yaml:"title_id"` // Localization message id for the title
	Items   []ItemDef `toml:"items" yaml:"items"`
}

// ItemDef describes one entry in a menu. Kind selects the component built
// from it; an empty kind means a plain item. The numeric fields apply only
// to kind "numeric" and Items only to kind "menu".
type ItemDef struct {
	Kind      string    `toml:"kind" yaml:"kind"`
	Name      string    `toml:"name" yaml:"name"`
	NameID    string    `toml:"name_id" yaml:"name_id"`
	Icon      string    `toml:"icon" yaml:"icon"`
	Handler   string    `toml:"handler" yaml:"handler"`
	Formatter string    `toml:"formatter" yaml:"formatter"`
	Value     float64   `toml:"value" yaml:"value"`
	Min       float64   `toml:"min" yaml:"min"`
	Max       float64   `toml:"max" yaml:"max"`
	Increment float64   `toml:"increment" yaml:"increment"`
	Items     []ItemDef `toml:"items" yaml:"items"`
}

// kind returns the effective kind, defaulting empty to a plain item.
func (it ItemDef) kind() string {
	if it.Kind == "" {
		return KindItem
	}
	return it.Kind
}

// ValidationError describes a single problem found in a definition.
type ValidationError struct {
	Path    string // Location in the definition (e.g., "items[2].items[0]")
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}

// Validate checks the definition and returns every problem found. A nil
// result means the definition can be built.
func (d *Definition) Validate() []ValidationError {
	return validateItems(d.Items, "items")
}

func validateItems(items []ItemDef, path string) []ValidationError {
	var errs []ValidationError
	for i, it := range items {
		errs = append(errs, validateItem(it, fmt.Sprintf("%s[%d]", path, i))...)
	}
	return errs
}

func validateItem(it ItemDef, path string) []ValidationError {
	var errs []ValidationError

	if it.Name == "" && it.NameID == "" {
		errs = append(errs, ValidationError{Path: path, Message: "name or name_id is required"})
	}

	switch it.kind() {
	case KindItem, KindBack:
		if len(it.Items) > 0 {
			errs = append(errs, ValidationError{Path: path, Message: `items are only valid on kind "menu"`})
		}
	case KindNumeric:
		if len(it.Items) > 0 {
			errs = append(errs, ValidationError{Path: path, Message: `items are only valid on kind "menu"`})
		}
		if it.Increment <= 0 {
			errs = append(errs, ValidationError{Path: path, Message: "increment must be positive"})
		}
		if it.Min > it.Max {
			errs = append(errs, ValidationError{Path: path, Message: "min must not exceed max"})
		} else if it.Value < it.Min || it.Value > it.Max {
			errs = append(errs, ValidationError{Path: path, Message: "value must lie within [min, max]"})
		}
	case KindMenu:
		errs = append(errs, validateItems(it.Items, path+".items")...)
	default:
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf("unknown kind %q", it.Kind)})
	}

	return errs
}

// joinErrors flattens validation errors into a single error value.
func joinErrors(errs []ValidationError) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return errors.New(strings.Join(msgs, "; "))
}
