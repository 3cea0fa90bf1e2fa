package optly

import "reflect"

// lengthKey is the designated sequence size selector served by the generic
// lookup path.
const lengthKey = "length"

// isAbsent reports whether value represents "no value here": a nil
// interface or a nil value of a nilable kind. Falsy values (false, 0, "")
// are present.
func isAbsent(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// elemValue dereferences pointers and interfaces; a nil link yields an
// invalid value.
func elemValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
