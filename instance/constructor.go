package instance

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type (
	// Constructor represents a registered constructor with its parameter descriptors
	Constructor struct {
		Name     string
		Type     reflect.Type
		Params   []*Parameter
		fn       reflect.Value
		defaults map[int]reflect.Value
		pending  []*paramOption
		err      error
	}

	// Option represents constructor option
	Option func(c *Constructor)

	// paramOption applies to a parameter once its name is known
	paramOption struct {
		name  string
		apply func(c *Constructor, param *Parameter) error
	}
)

// HasFunc returns true if type defines constructor function
func (c *Constructor) HasFunc() bool {
	return c.fn.IsValid()
}

// Instantiable returns true if constructor can produce an instance
func (c *Constructor) Instantiable() bool {
	if c.HasFunc() {
		return true
	}
	if c.Type == nil {
		return false
	}
	switch c.Type.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return false
	}
	return true
}

// Required returns required parameter count
func (c *Constructor) Required() int {
	ret := 0
	for _, param := range c.Params {
		if param.Required() {
			ret++
		}
	}
	return ret
}

// Named returns a copy of the constructor with parameter names filled from names where missing,
// options registered for parameters named only here are applied to the copy
func (c *Constructor) Named(names []string) *Constructor {
	if len(names) != len(c.Params) {
		return c
	}
	ret := *c
	ret.Params = make([]*Parameter, len(c.Params))
	for i, param := range c.Params {
		clone := *param
		if clone.Name == "" {
			clone.Name = names[i]
		}
		ret.Params[i] = &clone
	}
	if len(c.pending) > 0 {
		ret.defaults = make(map[int]reflect.Value, len(c.defaults))
		for position, value := range c.defaults {
			ret.defaults[position] = value
		}
		ret.err = ret.resolve()
	}
	return &ret
}

// Instantiate matches args with constructor parameters and creates an instance
func (c *Constructor) Instantiate(args *Args) (interface{}, error) {
	if !c.Instantiable() {
		return nil, fmt.Errorf("%w: %v", ErrNotInstantiable, c.Name)
	}
	if c.err != nil {
		return nil, fmt.Errorf("%v: %w", c.Name, c.err)
	}
	matched, err := Match(c.Params, args)
	if err != nil {
		if mismatch, ok := err.(*ArgumentMismatchError); ok {
			mismatch.Type = c.Name
			return nil, mismatch
		}
		return nil, fmt.Errorf("%v: %w", c.Name, err)
	}
	ret, err := c.New(matched)
	if err != nil {
		return nil, &InstantiationError{Type: c.Name, Err: err}
	}
	return ret, nil
}

// New calls constructor with matched arguments, parameters without argument receive a default or zero value
func (c *Constructor) New(args Arguments) (result interface{}, err error) {
	if !c.HasFunc() {
		return newInstance(c.Type).Interface(), nil
	}
	fnType := c.fn.Type()
	byPosition := args.ByPosition()
	inputs := make([]reflect.Value, fnType.NumIn())
	for i := range inputs {
		paramType := fnType.In(i)
		if arg, ok := byPosition[i]; ok {
			if inputs[i], err = assign(arg.Value, paramType); err != nil {
				return nil, fmt.Errorf("parameter %v: %w", arg.Parameter, err)
			}
			continue
		}
		if value, ok := c.defaults[i]; ok {
			inputs[i] = value
			continue
		}
		inputs[i] = reflect.Zero(paramType)
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("constructor panic: %v", r)
		}
	}()
	var outputs []reflect.Value
	if fnType.IsVariadic() {
		outputs = c.fn.CallSlice(inputs)
	} else {
		outputs = c.fn.Call(inputs)
	}
	if len(outputs) == 2 && !outputs[1].IsNil() {
		return nil, outputs[1].Interface().(error)
	}
	return outputs[0].Interface(), nil
}

func (c *Constructor) param(name string) *Parameter {
	for _, param := range c.Params {
		if param.Name == name {
			return param
		}
	}
	return nil
}

// WithNames assigns parameter names in positional order
func WithNames(names ...string) Option {
	return func(c *Constructor) {
		for i, name := range names {
			if i < len(c.Params) {
				c.Params[i].Name = name
			}
		}
	}
}

// resolve applies pending parameter options, an option naming an unknown parameter is kept
// pending while some parameter is still unnamed
func (c *Constructor) resolve() error {
	var unresolved []*paramOption
	for _, option := range c.pending {
		param := c.param(option.name)
		if param == nil {
			unresolved = append(unresolved, option)
			continue
		}
		if err := option.apply(c, param); err != nil {
			return err
		}
	}
	c.pending = unresolved
	if len(unresolved) > 0 && !c.hasUnnamed() {
		return fmt.Errorf("unknown parameter: %v", unresolved[0].name)
	}
	return nil
}

func (c *Constructor) hasUnnamed() bool {
	for _, param := range c.Params {
		if param.Name == "" {
			return true
		}
	}
	return false
}

// WithOptional marks named parameters as optional, it can precede WithNames
func WithOptional(names ...string) Option {
	return func(c *Constructor) {
		for _, name := range names {
			c.pending = append(c.pending, &paramOption{name: name, apply: func(c *Constructor, param *Parameter) error {
				param.Optional = true
				return nil
			}})
		}
	}
}

// WithDefault marks named parameter optional with default value, it can precede WithNames
func WithDefault(name string, value interface{}) Option {
	return func(c *Constructor) {
		c.pending = append(c.pending, &paramOption{name: name, apply: func(c *Constructor, param *Parameter) error {
			rValue, err := assign(ValueOf(value), c.fn.Type().In(param.Position))
			if err != nil {
				return fmt.Errorf("invalid default for %v: %w", name, err)
			}
			param.Optional = true
			c.defaults[param.Position] = rValue
			return nil
		}})
	}
}

// NewConstructor creates constructor for fn, fn has to return a value or a value and an error
func NewConstructor(fn interface{}, opts ...Option) (*Constructor, error) {
	rFn := reflect.ValueOf(fn)
	if rFn.Kind() != reflect.Func || rFn.IsNil() {
		return nil, fmt.Errorf("expected constructor func, but had: %T", fn)
	}
	fnType := rFn.Type()
	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return nil, fmt.Errorf("invalid constructor %v: second result has to be error", fnType)
		}
	default:
		return nil, fmt.Errorf("invalid constructor %v: expected (T) or (T, error) results", fnType)
	}
	ret := &Constructor{Type: fnType.Out(0), fn: rFn, defaults: map[int]reflect.Value{}}
	for i := 0; i < fnType.NumIn(); i++ {
		ret.Params = append(ret.Params, &Parameter{
			Position:   i,
			Constraint: ConstraintOf(fnType.In(i)),
			Optional:   fnType.IsVariadic() && i == fnType.NumIn()-1,
		})
	}
	for _, opt := range opts {
		opt(ret)
	}
	if err := ret.resolve(); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewTypeConstructor creates constructor for a type without constructor function
func NewTypeConstructor(name string, rType reflect.Type) *Constructor {
	return &Constructor{Name: name, Type: rType}
}

func newInstance(rType reflect.Type) reflect.Value {
	switch rType.Kind() {
	case reflect.Ptr:
		return reflect.New(rType.Elem())
	case reflect.Struct:
		return reflect.New(rType)
	case reflect.Map:
		return reflect.MakeMap(rType)
	case reflect.Slice:
		return reflect.MakeSlice(rType, 0, 0)
	}
	return reflect.New(rType).Elem()
}
