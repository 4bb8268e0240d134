package qualifier

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

type (
	// Namespace represents package clause declaration
	Namespace struct {
		Node       *ast.File
		Name       string
		ImportPath string
		Segments   []string
	}

	// Type represents type declaration
	Type struct {
		Node *ast.TypeSpec
		Name string
	}
)

// Path returns namespace segments joined with separator
func (n *Namespace) Path(separator string) string {
	if n == nil {
		return ""
	}
	return strings.Join(n.Segments, separator)
}

// IsTopLevel returns true if type is declared at file scope of file
func (t *Type) IsTopLevel(file *ast.File) bool {
	if file == nil {
		return false
	}
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range genDecl.Specs {
			if spec == t.Node {
				return true
			}
		}
	}
	return false
}

func newNamespace(file *ast.File, fileSet *token.FileSet) *Namespace {
	ret := &Namespace{Node: file, Name: file.Name.Name}
	ret.ImportPath = importComment(file, fileSet)
	if ret.ImportPath != "" {
		ret.Segments = strings.Split(ret.ImportPath, "/")
	} else {
		ret.Segments = []string{ret.Name}
	}
	return ret
}

// importComment returns canonical import path declared as `package x // import "path"`
func importComment(file *ast.File, fileSet *token.FileSet) string {
	if fileSet == nil {
		return ""
	}
	line := fileSet.Position(file.Name.Pos()).Line
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if comment.Pos() < file.Name.End() {
				continue
			}
			if fileSet.Position(comment.Pos()).Line != line {
				return ""
			}
			text := comment.Text
			switch {
			case strings.HasPrefix(text, "//"):
				text = text[2:]
			case strings.HasPrefix(text, "/*"):
				text = strings.TrimSuffix(text[2:], "*/")
			}
			text = strings.TrimSpace(text)
			if !strings.HasPrefix(text, "import ") {
				return ""
			}
			importPath, err := strconv.Unquote(strings.TrimSpace(text[len("import "):]))
			if err != nil {
				return ""
			}
			return strings.Trim(importPath, "/")
		}
	}
	return ""
}
