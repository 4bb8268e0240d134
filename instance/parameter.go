package instance

import (
	"fmt"
	"reflect"
)

type (
	// Parameter represents constructor parameter descriptor
	Parameter struct {
		Name       string
		Position   int
		Constraint *Constraint
		Optional   bool
	}

	// Constraint represents declared parameter type: builtin kind tag or named type
	Constraint struct {
		Kind Kind
		Type reflect.Type
	}
)

// Required returns true if parameter is not optional
func (p *Parameter) Required() bool {
	return !p.Optional
}

func (p *Parameter) String() string {
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("#%v", p.Position)
	}
	return fmt.Sprintf("%v %v", name, p.Constraint)
}

// IsBuiltin returns true for builtin kind tag constraint
func (c *Constraint) IsBuiltin() bool {
	return c.Kind != Invalid
}

// Accepts returns true if value is compatible with the constraint, no coercion takes place
func (c *Constraint) Accepts(value Value) bool {
	if value.IsNull() {
		return false
	}
	if c.IsBuiltin() {
		return value.Kind() == c.Kind
	}
	if c.Type == nil || value.Type() == nil {
		return false
	}
	return value.Type().AssignableTo(c.Type)
}

func (c *Constraint) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.IsBuiltin() {
		return c.Kind.String()
	}
	return c.Type.String()
}

// ConstraintOf returns parameter constraint for Go type.
// Predeclared scalar types, unnamed collections and the empty interface map to builtin tags,
// anything else is matched by assignability.
func ConstraintOf(rType reflect.Type) *Constraint {
	ret := &Constraint{Type: rType}
	switch rType.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if rType.Name() == "" {
			ret.Kind = KindCollection
		}
		return ret
	case reflect.Interface:
		if rType.NumMethod() == 0 {
			ret.Kind = KindObject
		}
		return ret
	}
	if rType.PkgPath() != "" || rType.Name() == "" {
		return ret
	}
	switch kind := KindOf(rType.Kind()); kind {
	case KindInt, KindBool, KindString, KindFloat:
		ret.Kind = kind
	}
	return ret
}
