package column

import (
	"fmt"
	"reflect"
)

// Template builds the content of one cell from a row's data item.
type Template interface {
	Build(item any) any
}

// TemplateFunc adapts a function to Template.
type TemplateFunc func(item any) any

// Build calls f.
func (f TemplateFunc) Build(item any) any { return f(item) }

// Field returns a template reading name from a map item (string keys) or an
// exported struct field, following pointers. Missing fields build nil.
func Field(name string) Template {
	return TemplateFunc(func(item any) any {
		return lookup(item, name)
	})
}

// Text returns a template formatting item with format.
func Text(format string) Template {
	return TemplateFunc(func(item any) any {
		return fmt.Sprintf(format, item)
	})
}

func lookup(item any, name string) any {
	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		val := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !val.IsValid() {
			return nil
		}
		return val.Interface()
	case reflect.Struct:
		f := v.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil
		}
		return f.Interface()
	default:
		return nil
	}
}
