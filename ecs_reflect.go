package gekko

import (
	"reflect"
)

func reflectSliceMake(elem reflect.Type) any {
	return reflect.MakeSlice(reflect.SliceOf(elem), 0, 1).Interface()
}

func reflectSliceGet(slice any, idx int) reflect.Value {
	return reflect.ValueOf(slice).Index(idx)
}

func reflectSliceSet(slice any, idx int, val reflect.Value) {
	reflect.ValueOf(slice).Index(idx).Set(val)
}

func reflectSliceAppend(slice any, val reflect.Value) any {
	return reflect.Append(
		reflect.ValueOf(slice),
		val,
	).Interface()
}

func reflectSliceLen(slice any) int {
	return reflect.ValueOf(slice).Len()
}

// reflectFieldByUsage finds the struct field tagged `gekko:"<group>" usage:"<usage>"`.
// component must be a pointer to a struct for the returned value to be settable.
func reflectFieldByUsage(component any, group string, usage string) (reflect.Value, bool) {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if group == field.Tag.Get("gekko") && usage == field.Tag.Get("usage") {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// reflectUsages lists the usage tags of every field in the given group, in
// declaration order.
func reflectUsages(componentType reflect.Type, group string) []string {
	if componentType.Kind() == reflect.Pointer {
		componentType = componentType.Elem()
	}
	var res []string
	for i := 0; i < componentType.NumField(); i++ {
		field := componentType.Field(i)
		if group == field.Tag.Get("gekko") {
			res = append(res, field.Tag.Get("usage"))
		}
	}
	return res
}
