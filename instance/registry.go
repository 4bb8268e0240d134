package instance

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/viant/xreflect"
)

// Provider returns constructor for a fully qualified type name
type Provider interface {
	Lookup(name string) (*Constructor, error)
}

// Registry represents constructor registry, registered types are mirrored into xreflect types,
// so types registered by other xreflect users can be instantiated without constructor.
type Registry struct {
	mux          sync.RWMutex
	types        *xreflect.Types
	constructors map[string]*Constructor
}

// Default represents process wide registry
var Default = NewRegistry(nil)

// Types returns underlying type registry
func (r *Registry) Types() *xreflect.Types {
	return r.types
}

// Register registers constructor fn under fully qualified type name
func (r *Registry) Register(name string, fn interface{}, opts ...Option) error {
	constructor, err := NewConstructor(fn, opts...)
	if err != nil {
		return fmt.Errorf("failed to register %v: %w", name, err)
	}
	constructor.Name = name
	return r.register(name, constructor)
}

// MustRegister registers constructor or panics
func (r *Registry) MustRegister(name string, fn interface{}, opts ...Option) {
	if err := r.Register(name, fn, opts...); err != nil {
		panic(err)
	}
}

// RegisterType registers a type without constructor function
func (r *Registry) RegisterType(name string, rType reflect.Type) error {
	if rType == nil {
		return fmt.Errorf("failed to register %v: type was nil", name)
	}
	return r.register(name, NewTypeConstructor(name, rType))
}

// MustRegisterType registers type or panics
func (r *Registry) MustRegisterType(name string, rType reflect.Type) {
	if err := r.RegisterType(name, rType); err != nil {
		panic(err)
	}
}

func (r *Registry) register(name string, constructor *Constructor) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.constructors[name]; ok {
		return fmt.Errorf("constructor for %v already registered", name)
	}
	pkg, typeName := SplitName(name)
	rType := constructor.Type
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if err := r.types.Register(typeName, xreflect.WithPackage(pkg), xreflect.WithReflectType(rType)); err != nil {
		return fmt.Errorf("failed to register type %v: %w", name, err)
	}
	r.constructors[name] = constructor
	return nil
}

// Lookup returns constructor for supplied name
func (r *Registry) Lookup(name string) (*Constructor, error) {
	r.mux.RLock()
	constructor, ok := r.constructors[name]
	r.mux.RUnlock()
	if ok {
		return constructor, nil
	}
	pkg, typeName := SplitName(name)
	var opts []xreflect.Option
	if pkg != "" {
		opts = append(opts, xreflect.WithPackage(pkg))
	}
	rType, err := r.types.Lookup(typeName, opts...)
	if err != nil || rType == nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeNotFound, name)
	}
	return NewTypeConstructor(name, rType), nil
}

// Names returns registered constructor names
func (r *Registry) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	var result = make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// NewRegistry creates a registry, types is optional parent type registry
func NewRegistry(types *xreflect.Types) *Registry {
	if types == nil {
		types = xreflect.NewTypes()
	}
	return &Registry{types: types, constructors: map[string]*Constructor{}}
}

// SplitName splits fully qualified name into package and type name
func SplitName(name string) (string, string) {
	index := strings.LastIndex(name, ".")
	if index == -1 {
		return "", name
	}
	return name[:index], name[index+1:]
}
