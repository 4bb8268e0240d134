package instance

import (
	"fmt"
	"reflect"
)

// Value represents a self describing argument value
type Value struct {
	kind  Kind
	rType reflect.Type
	value interface{}
}

// Kind returns value kind, Invalid for null
func (v Value) Kind() Kind {
	return v.kind
}

// Type returns value runtime type
func (v Value) Type() reflect.Type {
	return v.rType
}

// Interface returns underlying value
func (v Value) Interface() interface{} {
	return v.value
}

// IsNull returns true if value is null
func (v Value) IsNull() bool {
	return v.kind == Invalid
}

func (v Value) String() string {
	if v.IsNull() {
		return "null"
	}
	return fmt.Sprintf("%v(%v)", v.kind, v.value)
}

// Null returns null value
func Null() Value {
	return Value{}
}

// Int returns integer value
func Int(v int64) Value {
	return newValue(KindInt, v)
}

// Bool returns boolean value
func Bool(v bool) Value {
	return newValue(KindBool, v)
}

// String returns string value
func String(v string) Value {
	return newValue(KindString, v)
}

// Float returns float value
func Float(v float64) Value {
	return newValue(KindFloat, v)
}

// Collection returns collection value, v has to be a slice, array or map
func Collection(v interface{}) Value {
	if v == nil {
		return Null()
	}
	if KindOf(reflect.TypeOf(v).Kind()) != KindCollection {
		panic(fmt.Sprintf("expected slice, array or map, but had: %T", v))
	}
	return newValue(KindCollection, v)
}

// Object returns an object value carrying v runtime type
func Object(v interface{}) Value {
	if v == nil {
		return Null()
	}
	return newValue(KindObject, v)
}

// ValueOf classifies v by its dynamic type
func ValueOf(v interface{}) Value {
	switch actual := v.(type) {
	case nil:
		return Null()
	case Value:
		return actual
	case *Value:
		if actual == nil {
			return Null()
		}
		return *actual
	}
	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rValue.IsNil() {
			return Null()
		}
	}
	return newValue(KindOf(rValue.Kind()), v)
}

func newValue(kind Kind, v interface{}) Value {
	return Value{kind: kind, rType: reflect.TypeOf(v), value: v}
}
