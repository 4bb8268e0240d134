package foldertwo // import "github.com/viant/resolver/testdata/folderone/foldertwo"

import "fmt"

type NeedsParam struct {
	Value int
}

func NewNeedsParam(value int) (*NeedsParam, error) {
	if value < 0 {
		return nil, fmt.Errorf("invalid value: %v", value)
	}
	return &NeedsParam{Value: value}, nil
}
