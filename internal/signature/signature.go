// Package signature extracts constructor function signatures from a Go syntax tree
package signature

import (
	"go/ast"
	"go/types"
	"strings"
)

// Prefix represents constructor function name prefix
const Prefix = "New"

type (
	// Param represents constructor parameter as declared in source
	Param struct {
		Name     string
		Type     string
		Variadic bool
	}

	// Func represents constructor function declaration
	Func struct {
		Name    string
		Params  []*Param
		Results []string
		Node    *ast.FuncDecl
	}
)

// Names returns parameter names in declaration order
func (f *Func) Names() []string {
	var result = make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		result = append(result, param.Name)
	}
	return result
}

// ReturnsError returns true if the last result is an error
func (f *Func) ReturnsError() bool {
	return len(f.Results) == 2 && f.Results[1] == "error"
}

// Constructor returns New<Type> (or New) top level function returning typeName, or nil
func Constructor(file *ast.File, typeName string) *Func {
	if file == nil || typeName == "" {
		return nil
	}
	var fallback *Func
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv != nil {
			continue
		}
		name := funcDecl.Name.Name
		if name != Prefix+typeName && name != Prefix {
			continue
		}
		aFunc := newFunc(funcDecl)
		if !aFunc.returns(typeName) {
			continue
		}
		if name == Prefix {
			fallback = aFunc
			continue
		}
		return aFunc
	}
	return fallback
}

func (f *Func) returns(typeName string) bool {
	switch len(f.Results) {
	case 1:
	case 2:
		if !f.ReturnsError() {
			return false
		}
	default:
		return false
	}
	return strings.TrimPrefix(f.Results[0], "*") == typeName
}

func newFunc(funcDecl *ast.FuncDecl) *Func {
	ret := &Func{Name: funcDecl.Name.Name, Node: funcDecl}
	if params := funcDecl.Type.Params; params != nil {
		for _, field := range params.List {
			typeExpr := field.Type
			variadic := false
			if ellipsis, ok := typeExpr.(*ast.Ellipsis); ok {
				typeExpr = ellipsis.Elt
				variadic = true
			}
			typeName := types.ExprString(typeExpr)
			if len(field.Names) == 0 {
				ret.Params = append(ret.Params, &Param{Type: typeName, Variadic: variadic})
				continue
			}
			for _, ident := range field.Names {
				name := ident.Name
				if name == "_" {
					name = ""
				}
				ret.Params = append(ret.Params, &Param{Name: name, Type: typeName, Variadic: variadic})
			}
		}
	}
	if results := funcDecl.Type.Results; results != nil {
		for _, field := range results.List {
			typeName := types.ExprString(field.Type)
			count := len(field.Names)
			if count == 0 {
				count = 1
			}
			for i := 0; i < count; i++ {
				ret.Results = append(ret.Results, typeName)
			}
		}
	}
	return ret
}
