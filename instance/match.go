package instance

import (
	"fmt"
	"sort"
)

type (
	// Argument represents an argument matched with a constructor parameter
	Argument struct {
		Parameter *Parameter
		Value     Value
	}

	// Arguments represents matched arguments in parameter order
	Arguments []*Argument
)

// Values returns matched values
func (a Arguments) Values() []interface{} {
	var result = make([]interface{}, len(a))
	for i, arg := range a {
		result[i] = arg.Value.Interface()
	}
	return result
}

// ByPosition indexes arguments by parameter position
func (a Arguments) ByPosition() map[int]*Argument {
	var result = make(map[int]*Argument, len(a))
	for _, arg := range a {
		result[arg.Parameter.Position] = arg
	}
	return result
}

// Match projects args onto parameters. Each parameter first takes a compatible named argument,
// then the first compatible positional argument at or after the cursor; a consumed position is never reused.
// Unmatched optional parameters are omitted. Neither params nor args are modified.
func Match(params []*Parameter, args *Args) (Arguments, error) {
	params = ordered(params)
	required := 0
	for _, param := range params {
		if param.Required() {
			required++
		}
	}
	if args.Len() < required {
		return nil, fmt.Errorf("%w: expected at least %v, but had %v", ErrArgumentCountMismatch, required, args.Len())
	}

	var result = make(Arguments, 0, len(params))
	cursor := 0
	for _, param := range params {
		if value, ok := matchNamed(param, args); ok {
			result = append(result, &Argument{Parameter: param, Value: value})
			continue
		}
		if value, index, ok := matchPositional(param, args, cursor); ok {
			result = append(result, &Argument{Parameter: param, Value: value})
			cursor = index + 1
			continue
		}
		if param.Optional {
			continue
		}
		return nil, &ArgumentMismatchError{Parameter: param}
	}
	return result, nil
}

func matchNamed(param *Parameter, args *Args) (Value, bool) {
	if param.Name == "" {
		return Null(), false
	}
	value, ok := args.Named(param.Name)
	if !ok || !param.Constraint.Accepts(value) {
		return Null(), false
	}
	return value, true
}

func matchPositional(param *Parameter, args *Args, cursor int) (Value, int, bool) {
	size := args.Len()
	for i := cursor; i < size; i++ {
		value, ok := args.Positional(i)
		if ok && param.Constraint.Accepts(value) {
			return value, i, true
		}
	}
	return Null(), -1, false
}

func ordered(params []*Parameter) []*Parameter {
	isSorted := sort.SliceIsSorted(params, func(i, j int) bool {
		return params[i].Position < params[j].Position
	})
	if isSorted {
		return params
	}
	var result = make([]*Parameter, len(params))
	copy(result, params)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Position < result[j].Position
	})
	return result
}
