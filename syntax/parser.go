package syntax

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// ErrParse is returned when source unit is syntactically invalid
var ErrParse = errors.New("syntax error")

type (
	// Tree represents parsed source unit
	Tree struct {
		File    *ast.File
		FileSet *token.FileSet
	}

	// Parser turns source text into a syntax tree
	Parser interface {
		Parse(name string, content []byte) (*Tree, error)
	}

	// ParseError represents source unit parsing error
	ParseError struct {
		URL string
		Err error
	}

	goParser struct {
		mode parser.Mode
	}
)

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %v: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (p *goParser) Parse(name string, content []byte) (*Tree, error) {
	fileSet := token.NewFileSet()
	file, err := parser.ParseFile(fileSet, name, content, p.mode)
	if err != nil {
		return nil, &ParseError{URL: name, Err: err}
	}
	return &Tree{File: file, FileSet: fileSet}, nil
}

// Position returns node position
func (t *Tree) Position(node ast.Node) token.Position {
	return t.FileSet.Position(node.Pos())
}

// New returns Go source parser, comments are retained for import comment detection
func New() Parser {
	return &goParser{mode: parser.ParseComments | parser.AllErrors}
}
