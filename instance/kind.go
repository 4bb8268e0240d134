package instance

import "reflect"

// Kind represents a dynamic value kind
type Kind int

const (
	//Invalid represents null value or unsupported constraint
	Invalid Kind = iota
	KindInt
	KindBool
	KindString
	KindFloat
	KindCollection
	KindObject
)

var kindNames = map[Kind]string{
	Invalid:        "null",
	KindInt:        "integer",
	KindBool:       "boolean",
	KindString:     "string",
	KindFloat:      "float",
	KindCollection: "collection",
	KindObject:     "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf returns a kind for supplied reflect kind
func KindOf(rKind reflect.Kind) Kind {
	switch rKind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Slice, reflect.Array, reflect.Map:
		return KindCollection
	case reflect.Invalid:
		return Invalid
	}
	return KindObject
}
