package codegen

import (
	"sort"
	"strings"
)

type Imports struct {
	Packages     []string
	packageIndex map[string]bool
}

func (i *Imports) AddPackage(pkg string) {
	if i.packageIndex[pkg] {
		return
	}
	i.packageIndex[pkg] = true
	i.Packages = append(i.Packages, pkg)
}

func (i *Imports) Block() string {
	if len(i.Packages) == 0 {
		return ""
	}
	packages := append([]string{}, i.Packages...)
	sort.Strings(packages)
	builder := strings.Builder{}
	builder.WriteString("import (\n")
	for _, item := range packages {
		builder.WriteString("\t\"")
		builder.WriteString(item)
		builder.WriteString("\"\n")
	}
	builder.WriteByte(')')
	return builder.String()
}

func NewImports() *Imports {
	return &Imports{packageIndex: map[string]bool{}}
}
