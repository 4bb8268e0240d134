package codegen

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/resolver/internal/signature"
	"golang.org/x/tools/imports"
)

const instancePkg = "github.com/viant/resolver/instance"

//go:embed tmpl/register.gox
var registerGoTemplate string

// Registration represents a single type registration
type Registration struct {
	Name        string
	TypeName    string
	Constructor *signature.Func
}

func (r *Registration) statement(imports *Imports) string {
	name := strconv.Quote(r.Name)
	if r.Constructor != nil {
		statement := "\tinstance.Default.MustRegister(" + name + ", " + r.Constructor.Name
		if names := quoted(r.Constructor.Names()); names != "" {
			statement += ", instance.WithNames(" + names + ")"
		}
		return statement + ")"
	}
	imports.AddPackage("reflect")
	// pointer form works for any named type without a composite literal
	return "\tinstance.Default.MustRegisterType(" + name + ", reflect.TypeOf((*" + r.TypeName + ")(nil)).Elem())"
}

func quoted(names []string) string {
	var items = make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			return ""
		}
		items = append(items, strconv.Quote(name))
	}
	return strings.Join(items, ", ")
}

// GenerateRegistration generates init source registering types with the default instance registry
func GenerateRegistration(filename string, pkg string, registrations ...*Registration) ([]byte, error) {
	if len(registrations) == 0 {
		return nil, fmt.Errorf("no registrations for package %v", pkg)
	}
	anImports := NewImports()
	anImports.AddPackage(instancePkg)
	var statements []string
	for _, registration := range registrations {
		statements = append(statements, registration.statement(anImports))
	}
	code := strings.Replace(registerGoTemplate, "$Package", pkg, 1)
	code = strings.Replace(code, "$Registrations", strings.Join(statements, "\n"), 1)
	code = strings.Replace(code, "$Imports", anImports.Block(), 1)
	formatted, err := imports.Process(filename, []byte(code), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated %v: %w\n%s", filename, err, code)
	}
	return formatted, nil
}
