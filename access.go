package optly

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/viant/xunsafe"
)

var structTypes sync.Map //map[reflect.Type]*xunsafe.Struct

func xStructFor(structType reflect.Type) *xunsafe.Struct {
	if cached, ok := structTypes.Load(structType); ok {
		return cached.(*xunsafe.Struct)
	}
	xStruct := xunsafe.NewStruct(structType)
	structTypes.Store(structType, xStruct)
	return xStruct
}

// lookup resolves key against the current value; absent containers,
// non structured values and missing keys all yield nil. Only the requested
// key is read, sibling values are never touched.
func (h *Handle) lookup(key string) interface{} {
	value := h.Value()
	if value == nil {
		return nil
	}
	switch actual := value.(type) {
	case map[string]interface{}:
		return actual[key]
	case map[string]string:
		item, ok := actual[key]
		if !ok {
			return nil
		}
		return item
	case map[string]int:
		item, ok := actual[key]
		if !ok {
			return nil
		}
		return item
	case map[string]bool:
		item, ok := actual[key]
		if !ok {
			return nil
		}
		return item
	case []interface{}:
		if key == lengthKey {
			return len(actual)
		}
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= len(actual) {
			return nil
		}
		return actual[index]
	}
	return h.reflectLookup(value, key)
}

func (h *Handle) reflectLookup(value interface{}, key string) interface{} {
	v := elemValue(reflect.ValueOf(value))
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Map:
		return mapValue(v, key)
	case reflect.Slice:
		if key == lengthKey {
			return sliceLen(v)
		}
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil
		}
		return sliceItem(v, index)
	case reflect.Array:
		if key == lengthKey {
			return v.Len()
		}
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= v.Len() {
			return nil
		}
		return v.Index(index).Interface()
	case reflect.Struct:
		return h.structField(v, key)
	}
	return nil
}

// item resolves a sequence index; maps fall back to the stringified index.
func (h *Handle) item(index int) interface{} {
	value := h.Value()
	if value == nil {
		return nil
	}
	if actual, ok := value.([]interface{}); ok {
		if index < 0 || index >= len(actual) {
			return nil
		}
		return actual[index]
	}
	v := elemValue(reflect.ValueOf(value))
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Slice:
		return sliceItem(v, index)
	case reflect.Array:
		if index < 0 || index >= v.Len() {
			return nil
		}
		return v.Index(index).Interface()
	case reflect.Map:
		return mapValue(v, strconv.Itoa(index))
	}
	return nil
}

func (h *Handle) structField(v reflect.Value, key string) interface{} {
	xStruct := xStructFor(v.Type())
	holder := v.Interface()
	ptr := xunsafe.AsPointer(holder)
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		for _, name := range h.options.fieldNames(field.Name, field.Tag) {
			if name == key {
				return field.Value(ptr)
			}
		}
	}
	return nil
}

func sliceLen(v reflect.Value) int {
	holder := v.Interface()
	xSlice := xunsafe.NewSlice(v.Type())
	return xSlice.Len(xunsafe.AsPointer(holder))
}

func sliceItem(v reflect.Value, index int) interface{} {
	holder := v.Interface()
	ptr := xunsafe.AsPointer(holder)
	xSlice := xunsafe.NewSlice(v.Type())
	if index < 0 || index >= xSlice.Len(ptr) {
		return nil
	}
	return xSlice.ValueAt(ptr, index)
}

var stringType = reflect.TypeOf("")

func mapValue(v reflect.Value, key string) interface{} {
	keyType := v.Type().Key()
	var mapKey reflect.Value
	switch keyType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil
		}
		mapKey = reflect.ValueOf(index).Convert(keyType)
	default:
		if !stringType.ConvertibleTo(keyType) {
			return nil
		}
		mapKey = reflect.ValueOf(key).Convert(keyType)
	}
	item := v.MapIndex(mapKey)
	if !item.IsValid() {
		return nil
	}
	return item.Interface()
}
