package integrity

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
)

// Kind is the JSON type a schema field expects
type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindBoolean
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a kind name ("string", "number", ...) into Kind
func ParseKind(name string) (Kind, error) {
	for k := KindString; k <= KindArray; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown field kind %q", name)
}

// Schema describes the expected shape of every item in a collection
type Schema struct {
	Fields []Field
}

// Field describes one object field.
// Min and Max bound numbers by value, strings and arrays by length.
type Field struct {
	Min      *float64
	Max      *float64
	Pattern  *regexp.Regexp // Pattern применяется только к строкам
	Items    *Field         // Items схема элементов массива, Name игнорируется
	Name     string
	Enum     []any
	Fields   []Field // Fields вложенные поля объекта
	Kind     Kind
	Required bool
}

// Float returns a pointer to v, handy for Min and Max
func Float(v float64) *float64 {
	return &v
}

// fieldResult is the outcome of checking one field path
type fieldResult struct {
	path    string
	message string
	passed  bool
}

// checkField validates value at path against f and returns exactly one
// terminal result per leaf. present reports whether the key exists.
func checkField(f *Field, path string, value any, present bool) []fieldResult {
	if !present || value == nil {
		if f.Required {
			return []fieldResult{{path: path, message: fmt.Sprintf("required field %q is missing", path)}}
		}
		return []fieldResult{{path: path, passed: true, message: fmt.Sprintf("optional field %q is absent", path)}}
	}

	if !kindMatches(f.Kind, value) {
		return []fieldResult{{path: path, message: fmt.Sprintf("field %q must be %s, got %s", path, f.Kind, jsonKind(value))}}
	}

	if msg := checkBounds(f, path, value); msg != "" {
		return []fieldResult{{path: path, message: msg}}
	}

	if f.Pattern != nil {
		if s, ok := value.(string); ok && !f.Pattern.MatchString(s) {
			return []fieldResult{{path: path, message: fmt.Sprintf("field %q does not match pattern %s", path, f.Pattern)}}
		}
	}

	if len(f.Enum) > 0 && !inEnum(f.Enum, value) {
		return []fieldResult{{path: path, message: fmt.Sprintf("field %q value %v is not one of %v", path, value, f.Enum)}}
	}

	switch v := value.(type) {
	case map[string]any:
		if len(f.Fields) > 0 {
			var results []fieldResult
			for i := range f.Fields {
				sub := &f.Fields[i]
				subValue, ok := v[sub.Name]
				results = append(results, checkField(sub, path+"."+sub.Name, subValue, ok)...)
			}
			return results
		}
	case []any:
		if f.Items != nil && len(v) > 0 {
			var results []fieldResult
			for i, elem := range v {
				results = append(results, checkField(f.Items, fmt.Sprintf("%s[%d]", path, i), elem, true)...)
			}
			return results
		}
	}

	return []fieldResult{{path: path, passed: true, message: fmt.Sprintf("field %q is valid", path)}}
}

func kindMatches(kind Kind, value any) bool {
	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindNumber:
		_, ok := value.(float64)
		return ok
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindObject:
		_, ok := value.(map[string]any)
		return ok
	case KindArray:
		_, ok := value.([]any)
		return ok
	}
	return false
}

func jsonKind(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", value)
}

func checkBounds(f *Field, path string, value any) string {
	if f.Min == nil && f.Max == nil {
		return ""
	}

	var n float64
	var what string
	switch v := value.(type) {
	case float64:
		n, what = v, "value"
	case string:
		n, what = float64(len([]rune(v))), "length"
	case []any:
		n, what = float64(len(v)), "length"
	default:
		return ""
	}

	if f.Min != nil && n < *f.Min {
		return fmt.Sprintf("field %q %s %v is below minimum %v", path, what, n, *f.Min)
	}
	if f.Max != nil && n > *f.Max {
		return fmt.Sprintf("field %q %s %v exceeds maximum %v", path, what, n, *f.Max)
	}
	return ""
}

func inEnum(enum []any, value any) bool {
	for _, candidate := range enum {
		if reflect.DeepEqual(candidate, value) {
			return true
		}
	}
	return false
}

// normalizeSchema converts enum literals to their generic JSON form so they
// compare equal to decoded payload values
func normalizeSchema(fields []Field) error {
	for i := range fields {
		f := &fields[i]
		for j, candidate := range f.Enum {
			normalized, err := toGeneric(candidate)
			if err != nil {
				return fmt.Errorf("field %q enum: %w", f.Name, err)
			}
			f.Enum[j] = normalized
		}
		if err := normalizeSchema(f.Fields); err != nil {
			return err
		}
		if f.Items != nil {
			items := []Field{*f.Items}
			if err := normalizeSchema(items); err != nil {
				return err
			}
			f.Items = &items[0]
		}
	}
	return nil
}

func toGeneric(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return generic, nil
}

// copyFields deep copies a field list so registration never aliases caller data
func copyFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Enum = append([]any(nil), f.Enum...)
		f.Fields = copyFields(f.Fields)
		if f.Items != nil {
			items := copyFields([]Field{*f.Items})
			f.Items = &items[0]
		}
		out[i] = f
	}
	return out
}
