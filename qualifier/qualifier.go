// Package qualifier locates the package clause and type declaration of a parsed Go source unit.
//
// The Qualifier is a flat scan: it keeps the last package clause and the last type
// declaration visited in document order, without checking how they are nested.
package qualifier

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
)

// ErrNoDeclarationFound is returned when a traversal did not visit a requested declaration
var ErrNoDeclarationFound = errors.New("no declaration found")

// Qualifier records the last namespace and type declaration visited
type Qualifier struct {
	fileSet   *token.FileSet
	namespace *Namespace
	aType     *Type
}

// Visit implements ast.Visitor
func (q *Qualifier) Visit(node ast.Node) ast.Visitor {
	switch actual := node.(type) {
	case *ast.File:
		q.namespace = newNamespace(actual, q.fileSet)
	case *ast.TypeSpec:
		if actual.Assign.IsValid() { //alias
			return q
		}
		q.aType = &Type{Node: actual, Name: actual.Name.Name}
	}
	return q
}

// Namespace returns last visited namespace declaration
func (q *Qualifier) Namespace() (*Namespace, error) {
	if q.namespace == nil {
		return nil, fmt.Errorf("%w: package clause", ErrNoDeclarationFound)
	}
	return q.namespace, nil
}

// Type returns last visited type declaration
func (q *Qualifier) Type() (*Type, error) {
	if q.aType == nil {
		return nil, fmt.Errorf("%w: type declaration", ErrNoDeclarationFound)
	}
	return q.aType, nil
}

// Walk traverses node with a new qualifier
func Walk(node ast.Node, fileSet *token.FileSet) *Qualifier {
	ret := New(fileSet)
	if node != nil {
		ast.Walk(ret, node)
	}
	return ret
}

// New creates a qualifier, fileSet is used to detect import comments and can be nil
func New(fileSet *token.FileSet) *Qualifier {
	return &Qualifier{fileSet: fileSet}
}
