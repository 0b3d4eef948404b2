package gekko

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/gekko3d/gekko-lights/scene"
)

type PropertyType string

const (
	PropertyBoolean     PropertyType = "boolean"
	PropertyNumber      PropertyType = "number"
	PropertyRGB         PropertyType = "rgb"
	PropertyEnumeration PropertyType = "enumeration"
)

type EnumOption struct {
	Name  string
	Value any
}

type PropertyOptions struct {
	Min              *float64
	Max              *float64
	Step             float64
	DecimalPrecision int
	Enumerations     []EnumOption
}

// PropertySchema describes one editable property of a component. Filter
// lists the values other properties must have for this one to show up in the
// editor; a slice value matches any of its elements.
type PropertySchema struct {
	Name         string
	DisplayName  string
	Description  string
	Type         PropertyType
	DefaultValue any
	Options      PropertyOptions
	Filter       map[string]any
	Hidden       bool
}

type Schema []PropertySchema

// ComponentData is the loosely typed property bag coming from level files and
// the editor.
type ComponentData map[string]any

func bound(v float64) *float64 { return &v }

func (s Schema) Property(name string) (PropertySchema, bool) {
	idx := slices.IndexFunc(s, func(p PropertySchema) bool { return p.Name == name })
	if idx < 0 {
		return PropertySchema{}, false
	}
	return s[idx], true
}

// Exposed lists the properties the editor may show or edit.
func (s Schema) Exposed() Schema {
	var res Schema
	for _, p := range s {
		if !p.Hidden {
			res = append(res, p)
		}
	}
	return res
}

// Visible lists the exposed properties whose filters match data.
func (s Schema) Visible(data ComponentData) Schema {
	var res Schema
	for _, p := range s.Exposed() {
		if p.Visible(data) {
			res = append(res, p)
		}
	}
	return res
}

func (p PropertySchema) Visible(data ComponentData) bool {
	for key, want := range p.Filter {
		got, ok := normalizeScalar(data[key])
		if !ok {
			return false
		}

		wantValue := reflect.ValueOf(want)
		if wantValue.Kind() == reflect.Slice {
			matched := false
			for i := 0; i < wantValue.Len(); i++ {
				if w, ok := normalizeScalar(wantValue.Index(i).Interface()); ok && w == got {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
			continue
		}

		if w, ok := normalizeScalar(want); !ok || w != got {
			return false
		}
	}
	return true
}

// Coerce converts loosely typed input into the property's canonical Go value:
// bool, float64, scene.Color, or the matching enumeration option's value.
func (p PropertySchema) Coerce(value any) (any, error) {
	switch p.Type {
	case PropertyBoolean:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, p.invalid(value, "expected a boolean")

	case PropertyNumber:
		n, ok := normalizeScalar(value)
		f, isFloat := n.(float64)
		if !ok || !isFloat {
			return nil, p.invalid(value, "expected a number")
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, p.invalid(value, "expected a finite number")
		}
		if p.Options.Min != nil && f < *p.Options.Min {
			return nil, p.invalid(value, fmt.Sprintf("below minimum %v", *p.Options.Min))
		}
		if p.Options.Max != nil && f > *p.Options.Max {
			return nil, p.invalid(value, fmt.Sprintf("above maximum %v", *p.Options.Max))
		}
		return f, nil

	case PropertyRGB:
		c, ok := toColor(value)
		if !ok {
			return nil, p.invalid(value, "expected an rgb color")
		}
		return c, nil

	case PropertyEnumeration:
		got, ok := normalizeScalar(value)
		if ok {
			for _, opt := range p.Options.Enumerations {
				if want, _ := normalizeScalar(opt.Value); want == got {
					return opt.Value, nil
				}
			}
		}
		return nil, p.invalid(value, "not one of the allowed values")
	}
	return nil, p.invalid(value, fmt.Sprintf("unsupported property type %q", p.Type))
}

func (p PropertySchema) invalid(value any, reason string) error {
	return fmt.Errorf("%w: %s = %v: %s", ErrInvalidProperty, p.Name, value, reason)
}

// normalizeScalar maps every numeric kind to float64 and named string/bool
// types to their base type so values from YAML, JSON and Go code compare equal.
func normalizeScalar(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), true
	case reflect.String:
		return v.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return nil, false
}

func toColor(value any) (scene.Color, bool) {
	if c, ok := value.(scene.Color); ok {
		return c, true
	}
	if value == nil {
		return scene.Color{}, false
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return scene.Color{}, false
	}
	if v.Len() != 3 && v.Len() != 4 {
		return scene.Color{}, false
	}

	channels := []float32{0, 0, 0, 1}
	for i := 0; i < v.Len(); i++ {
		n, ok := normalizeScalar(v.Index(i).Interface())
		f, isFloat := n.(float64)
		if !ok || !isFloat || math.IsNaN(f) || math.IsInf(f, 0) {
			return scene.Color{}, false
		}
		channels[i] = float32(f)
	}
	return scene.Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, true
}

// bindProperty stores a coerced value into the component field tagged with
// the property name.
func bindProperty(component any, group string, name string, value any) error {
	field, ok := reflectFieldByUsage(component, group, name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	v := reflect.ValueOf(value)
	if !v.Type().ConvertibleTo(field.Type()) {
		return fmt.Errorf("%w: %s = %v: cannot store %s in %s", ErrInvalidProperty, name, value, v.Type(), field.Type())
	}
	field.Set(v.Convert(field.Type()))
	return nil
}

func readProperty(component any, group string, name string) (any, error) {
	field, ok := reflectFieldByUsage(component, group, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return field.Interface(), nil
}
