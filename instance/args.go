package instance

import (
	"sort"
	"strconv"
	"strings"
)

// Args represents caller supplied arguments, keyed either by parameter name or position.
// Both key kinds share one logical collection: Len counts them together.
type Args struct {
	named      map[string]Value
	positional map[int]Value
	next       int
}

// Len returns number of supplied arguments
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.named) + len(a.positional)
}

// Named returns named argument
func (a *Args) Named(name string) (Value, bool) {
	if a == nil || a.named == nil {
		return Null(), false
	}
	ret, ok := a.named[name]
	return ret, ok
}

// Positional returns argument at index
func (a *Args) Positional(index int) (Value, bool) {
	if a == nil || a.positional == nil {
		return Null(), false
	}
	ret, ok := a.positional[index]
	return ret, ok
}

// Set sets named argument, value is classified with ValueOf unless it is already a Value
func (a *Args) Set(name string, value interface{}) *Args {
	if a.named == nil {
		a.named = map[string]Value{}
	}
	a.named[name] = ValueOf(value)
	return a
}

// SetAt sets positional argument
func (a *Args) SetAt(index int, value interface{}) *Args {
	if a.positional == nil {
		a.positional = map[int]Value{}
	}
	a.positional[index] = ValueOf(value)
	if index >= a.next {
		a.next = index + 1
	}
	return a
}

// Add appends positional arguments after the highest positional index
func (a *Args) Add(values ...interface{}) *Args {
	for _, value := range values {
		a.SetAt(a.next, value)
	}
	return a
}

// Names returns sorted argument names
func (a *Args) Names() []string {
	var result = make([]string, 0, len(a.named))
	for name := range a.named {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Indexes returns sorted positional indexes
func (a *Args) Indexes() []int {
	var result = make([]int, 0, len(a.positional))
	for index := range a.positional {
		result = append(result, index)
	}
	sort.Ints(result)
	return result
}

func (a *Args) String() string {
	if a == nil {
		return "[]"
	}
	var items []string
	for _, index := range a.Indexes() {
		items = append(items, strconv.Itoa(index)+": "+a.positional[index].String())
	}
	for _, name := range a.Names() {
		items = append(items, name+": "+a.named[name].String())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// NewArgs creates empty arguments
func NewArgs() *Args {
	return &Args{}
}

// Positional creates positional arguments
func Positional(values ...interface{}) *Args {
	return NewArgs().Add(values...)
}

// Named creates named arguments
func Named(values map[string]interface{}) *Args {
	ret := NewArgs()
	for name, value := range values {
		ret.Set(name, value)
	}
	return ret
}
