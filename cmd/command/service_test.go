package command

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/resolver/cmd/options"
	"github.com/viant/resolver/instance"
)

type vendor struct {
	ID   int
	Name string
	Tags []string
}

func newVendor(id int, name string, tags []string) *vendor {
	return &vendor{ID: id, Name: name, Tags: tags}
}

const vendorSource = `package model // import "example.com/demo/model"

type Vendor struct {
	ID   int
	Name string
	Tags []string
}

func NewVendor(id int, name string, tags []string) *Vendor {
	return &Vendor{ID: id, Name: name, Tags: tags}
}
`

func newService(t *testing.T, files map[string]string) (*Service, *bytes.Buffer) {
	ctx := context.Background()
	fs := afs.New()
	for URL, content := range files {
		err := fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content))
		assert.Nil(t, err, URL)
	}
	registry := instance.NewRegistry(nil)
	assert.Nil(t, registry.Register("example.com/demo/model.Vendor", newVendor))
	out := &bytes.Buffer{}
	return &Service{fs: fs, registry: registry, out: out}, out
}

func TestService_Resolve(t *testing.T) {
	srv, out := newService(t, map[string]string{"mem://localhost/command/case001/vendor.go": vendorSource})
	err := srv.Exec(context.Background(), &options.Options{Resolve: &options.Resolve{Source: options.Source{URL: "mem://localhost/command/case001/vendor.go"}}})
	assert.Nil(t, err)
	assert.Equal(t, "example.com/demo/model.Vendor\n", out.String())
}

func TestService_Make(t *testing.T) {
	var testCases = []struct {
		description string
		args        string
		expect      []string
		expectErr   bool
	}{
		{
			description: "named arguments",
			args:        "name: acme\ntags: [a, b]\nid: 3\n",
			expect:      []string{`"ID": 3`, `"Name": "acme"`, `"a"`},
		},
		{
			description: "positional arguments",
			args:        "- 4\n- acme\n- []\n",
			expect:      []string{`"ID": 4`},
		},
		{
			description: "missing arguments",
			args:        "id: 3\n",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		srv, out := newService(t, map[string]string{
			"mem://localhost/command/case002/vendor.go": vendorSource,
			"mem://localhost/command/case002/args.yaml": testCase.args,
		})
		aMake := &options.Make{Source: options.Source{URL: "mem://localhost/command/case002/vendor.go"}, ArgsURL: "mem://localhost/command/case002/args.yaml"}
		err := srv.Exec(context.Background(), &options.Options{Make: aMake})
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		for _, expect := range testCase.expect {
			assert.Contains(t, out.String(), expect, testCase.description)
		}
	}
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	srv, out := newService(t, map[string]string{"mem://localhost/command/case003/vendor.go": vendorSource})
	err := srv.Exec(ctx, &options.Options{Generate: &options.Generate{Source: options.Source{URL: "mem://localhost/command/case003/vendor.go"}}})
	if !assert.Nil(t, err) {
		return
	}
	assert.Contains(t, out.String(), "vendor_register.go")

	code, err := srv.fs.DownloadWithURL(ctx, "mem://localhost/command/case003/vendor_register.go")
	if !assert.Nil(t, err) {
		return
	}
	assert.Contains(t, string(code), "package model")
	assert.Contains(t, string(code), `instance.Default.MustRegister("example.com/demo/model.Vendor", NewVendor, instance.WithNames("id", "name", "tags"))`)

	srv, _ = newService(t, map[string]string{"mem://localhost/command/case004/code.go": "package model\n\ntype Code int\n"})
	err = srv.Exec(ctx, &options.Options{Generate: &options.Generate{Source: options.Source{URL: "mem://localhost/command/case004/code.go"}}})
	if !assert.Nil(t, err) {
		return
	}
	code, err = srv.fs.DownloadWithURL(ctx, "mem://localhost/command/case004/code_register.go")
	if !assert.Nil(t, err) {
		return
	}
	assert.Contains(t, string(code), `instance.Default.MustRegisterType("model.Code", reflect.TypeOf((*Code)(nil)).Elem())`)
}

func TestService_Generate_Rejected(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		expectErr   string
	}{
		{
			description: "generic type",
			source:      "package model\n\ntype List[T any] []T\n",
			expectErr:   "generic",
		},
		{
			description: "type declared in function body",
			source:      "package model\n\ntype Outer struct{}\n\nfunc run() {\n\ttype inner int\n\t_ = inner(1)\n}\n",
			expectErr:   "file scope",
		},
	}

	ctx := context.Background()
	for _, testCase := range testCases {
		srv, _ := newService(t, map[string]string{"mem://localhost/command/case005/model.go": testCase.source})
		err := srv.Exec(ctx, &options.Options{Generate: &options.Generate{Source: options.Source{URL: "mem://localhost/command/case005/model.go"}}})
		if !assert.NotNil(t, err, testCase.description) {
			continue
		}
		assert.Contains(t, err.Error(), testCase.expectErr, testCase.description)
		exists, _ := srv.fs.Exists(ctx, "mem://localhost/command/case005/inner_register.go")
		assert.False(t, exists, testCase.description)
	}
}
