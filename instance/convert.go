package instance

import (
	"fmt"
	"math"
	"reflect"
)

// assign converts matched value to constructor parameter type; matching already checked the kind,
// so only representation changes (int64 to int32, []interface{} to []string) take place here.
func assign(value Value, rType reflect.Type) (reflect.Value, error) {
	if value.IsNull() {
		return reflect.Zero(rType), nil
	}
	rValue := reflect.ValueOf(value.Interface())
	if rValue.Type().AssignableTo(rType) {
		return rValue, nil
	}
	switch value.Kind() {
	case KindInt:
		return convertInt(rValue, rType)
	case KindFloat:
		if KindOf(rType.Kind()) == KindFloat {
			if reflect.Zero(rType).OverflowFloat(rValue.Float()) {
				return reflect.Value{}, fmt.Errorf("%v overflows %v", rValue.Float(), rType)
			}
			return rValue.Convert(rType), nil
		}
	case KindCollection:
		return convertCollection(rValue, rType)
	}
	if KindOf(rValue.Kind()) == KindOf(rType.Kind()) && rValue.Type().ConvertibleTo(rType) {
		return rValue.Convert(rType), nil
	}
	return reflect.Value{}, fmt.Errorf("unable to assign %v to %v", rValue.Type(), rType)
}

func convertInt(rValue reflect.Value, rType reflect.Type) (reflect.Value, error) {
	target := reflect.New(rType).Elem()
	switch rType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var v int64
		switch rValue.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if rValue.Uint() > math.MaxInt64 {
				return reflect.Value{}, fmt.Errorf("%v overflows %v", rValue.Uint(), rType)
			}
			v = int64(rValue.Uint())
		default:
			v = rValue.Int()
		}
		if target.OverflowInt(v) {
			return reflect.Value{}, fmt.Errorf("%v overflows %v", v, rType)
		}
		target.SetInt(v)
		return target, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var v uint64
		switch rValue.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			v = rValue.Uint()
		default:
			if rValue.Int() < 0 {
				return reflect.Value{}, fmt.Errorf("%v overflows %v", rValue.Int(), rType)
			}
			v = uint64(rValue.Int())
		}
		if target.OverflowUint(v) {
			return reflect.Value{}, fmt.Errorf("%v overflows %v", v, rType)
		}
		target.SetUint(v)
		return target, nil
	}
	if rValue.Type().ConvertibleTo(rType) {
		return rValue.Convert(rType), nil
	}
	return reflect.Value{}, fmt.Errorf("unable to assign %v to %v", rValue.Type(), rType)
}

func convertCollection(rValue reflect.Value, rType reflect.Type) (reflect.Value, error) {
	if rValue.Kind() == rType.Kind() && rValue.Type().ConvertibleTo(rType) {
		return rValue.Convert(rType), nil
	}
	switch rType.Kind() {
	case reflect.Slice, reflect.Array:
		if rValue.Kind() != reflect.Slice && rValue.Kind() != reflect.Array {
			break
		}
		var target reflect.Value
		if rType.Kind() == reflect.Slice {
			target = reflect.MakeSlice(rType, rValue.Len(), rValue.Len())
		} else {
			if rType.Len() != rValue.Len() {
				return reflect.Value{}, fmt.Errorf("unable to assign %v items to %v", rValue.Len(), rType)
			}
			target = reflect.New(rType).Elem()
		}
		for i := 0; i < rValue.Len(); i++ {
			item, err := assign(ValueOf(rValue.Index(i).Interface()), rType.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("item %v: %w", i, err)
			}
			target.Index(i).Set(item)
		}
		return target, nil
	case reflect.Map:
		if rValue.Kind() != reflect.Map {
			break
		}
		target := reflect.MakeMapWithSize(rType, rValue.Len())
		iter := rValue.MapRange()
		for iter.Next() {
			key, err := assign(ValueOf(iter.Key().Interface()), rType.Key())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
			}
			item, err := assign(ValueOf(iter.Value().Interface()), rType.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("item %v: %w", iter.Key(), err)
			}
			target.SetMapIndex(key, item)
		}
		return target, nil
	}
	return reflect.Value{}, fmt.Errorf("unable to assign %v to %v", rValue.Type(), rType)
}
