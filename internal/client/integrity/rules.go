package integrity

import (
	"fmt"
	"strings"
)

// ReferenceRule requires Field to match ReferencedField of some item in
// ReferencedCollection. An empty ReferencedField matches the item id.
type ReferenceRule struct {
	Field                string
	ReferencedCollection string
	ReferencedField      string
	Required             bool
}

// ConstraintFunc reports whether value (the field value, nil if absent)
// satisfies the constraint for the whole item
type ConstraintFunc func(value any, item map[string]any) (bool, error)

// ConstraintRule is an arbitrary predicate over one field.
// An empty Field passes the whole item as value.
type ConstraintRule struct {
	Check   ConstraintFunc
	Name    string
	Field   string
	Message string
}

// lookupPath resolves a dotted path inside a decoded object
func lookupPath(item map[string]any, path string) (any, bool) {
	if path == "" {
		return item, item != nil
	}

	var current any = item
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// referenceKey normalizes a referenced value for index lookups
func referenceKey(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}

// runConstraint calls rule.Check with panics turned into errors
func runConstraint(rule ConstraintRule, value any, item map[string]any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("constraint panicked: %v", r)
		}
	}()

	if rule.Check == nil {
		return false, fmt.Errorf("constraint %q has no check function", rule.Name)
	}

	return rule.Check(value, item)
}
