package instance

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type shape interface {
	Area() float64
}

type square struct {
	Side float64
}

func (s *square) Area() float64 {
	return s.Side * s.Side
}

func params(types ...interface{}) []*Parameter {
	var result []*Parameter
	for i := 0; i < len(types); i += 2 {
		result = append(result, &Parameter{
			Name:       types[i].(string),
			Position:   i / 2,
			Constraint: ConstraintOf(reflect.TypeOf(types[i+1]).Elem()),
		})
	}
	return result
}

func TestMatch(t *testing.T) {
	var testCases = []struct {
		description string
		params      []*Parameter
		args        *Args
		expect      []interface{}
		expectErr   error
	}{
		{
			description: "unordered named arguments",
			params:      params("aString", (*string)(nil), "anInt", (*int)(nil), "anArray", (*[]interface{})(nil)),
			args:        Named(map[string]interface{}{"anArray": []interface{}{}, "aString": "string", "anInt": 5}),
			expect:      []interface{}{"string", 5, []interface{}{}},
		},
		{
			description: "positional arguments",
			params:      params("aString", (*string)(nil), "anInt", (*int)(nil)),
			args:        Positional("string", 6),
			expect:      []interface{}{"string", 6},
		},
		{
			description: "mixed named and positional arguments",
			params:      params("aString", (*string)(nil), "anInt", (*int)(nil)),
			args:        Positional(6).Set("aString", "text"),
			expect:      []interface{}{"text", 6},
		},
		{
			description: "incompatible positional candidate is skipped",
			params:      params("value", (*int)(nil)),
			args:        Positional("text", 7),
			expect:      []interface{}{7},
		},
		{
			description: "incompatible named argument falls back to positional",
			params:      params("value", (*int)(nil)),
			args:        Positional(3).Set("value", "text"),
			expect:      []interface{}{3},
		},
		{
			description: "cursor moves past consumed position",
			params:      params("a", (*int)(nil), "b", (*int)(nil)),
			args:        Positional("x", 1, 2),
			expect:      []interface{}{1, 2},
		},
		{
			description: "consumed position is not reused",
			params:      params("a", (*string)(nil), "b", (*string)(nil)),
			args:        Positional("x", 5),
			expectErr:   ErrArgumentMismatch,
		},
		{
			description: "integer is not a float",
			params:      params("value", (*float64)(nil)),
			args:        Positional(5),
			expectErr:   ErrArgumentMismatch,
		},
		{
			description: "null is never compatible",
			params:      params("value", (*string)(nil)),
			args:        NewArgs().Set("value", nil),
			expectErr:   ErrArgumentMismatch,
		},
		{
			description: "missing required argument",
			params:      params("value", (*int)(nil)),
			args:        NewArgs(),
			expectErr:   ErrArgumentCountMismatch,
		},
		{
			description: "named type by interface",
			params:      params("shape", (*shape)(nil)),
			args:        Positional(&square{Side: 2}),
			expect:      []interface{}{&square{Side: 2}},
		},
		{
			description: "object tag requires object",
			params:      params("value", (*interface{})(nil)),
			args:        Positional("text", &square{}),
			expect:      []interface{}{&square{}},
		},
		{
			description: "no parameters",
			params:      nil,
			args:        Positional(1, 2),
			expect:      []interface{}{},
		},
	}

	for _, testCase := range testCases {
		matched, err := Match(testCase.params, testCase.args)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			assert.Nil(t, matched, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, matched.Values(), testCase.description)
	}
}

func TestMatch_Optional(t *testing.T) {
	parameters := params("a", (*int)(nil), "b", (*string)(nil), "c", (*bool)(nil))
	parameters[1].Optional = true

	matched, err := Match(parameters, Positional(1, true))
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{1, true}, matched.Values())
	byPosition := matched.ByPosition()
	assert.Contains(t, byPosition, 0)
	assert.Contains(t, byPosition, 2)
	assert.NotContains(t, byPosition, 1)

	_, err = Match(parameters, Positional(1, "x"))
	assert.True(t, errors.Is(err, ErrArgumentMismatch))
	mismatch := &ArgumentMismatchError{}
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "c", mismatch.Parameter.Name)
}

func TestMatch_PermutationInvariant(t *testing.T) {
	parameters := params("aString", (*string)(nil), "anInt", (*int)(nil), "aBool", (*bool)(nil))
	entries := [][2]interface{}{{"aString", "s"}, {"anInt", 3}, {"aBool", true}}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, order := range orders {
		args := NewArgs()
		for _, index := range order {
			args.Set(entries[index][0].(string), entries[index][1])
		}
		matched, err := Match(parameters, args)
		assert.Nil(t, err, fmt.Sprint(order))
		assert.EqualValues(t, []interface{}{"s", 3, true}, matched.Values(), fmt.Sprint(order))
	}
}

func TestMatch_DoesNotModifyInput(t *testing.T) {
	parameters := params("b", (*int)(nil), "a", (*string)(nil))
	parameters[0].Position, parameters[1].Position = 1, 0
	args := Positional("x", 1)

	matched, err := Match(parameters, args)
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{"x", 1}, matched.Values())
	assert.Equal(t, "b", parameters[0].Name)
	assert.Equal(t, 2, args.Len())
}
