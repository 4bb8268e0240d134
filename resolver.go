// Package resolver determines the fully qualified type declared by a Go source unit and
// instantiates it by matching loosely ordered arguments with the type constructor.
package resolver

import (
	"context"
	"errors"
	"go/ast"
	"go/token"
	"strings"
	"time"

	"github.com/viant/resolver/instance"
	"github.com/viant/resolver/internal/modpath"
	"github.com/viant/resolver/internal/signature"
	"github.com/viant/resolver/qualifier"
	"github.com/viant/resolver/source"
	"github.com/viant/resolver/syntax"
)

// Resolver represents a resolved source unit, it is read only after construction
type Resolver struct {
	options   *Options
	unit      *source.Unit
	tree      *syntax.Tree
	namespace *qualifier.Namespace
	aType     *qualifier.Type
	signature *signature.Func
}

// URL returns source unit URL
func (r *Resolver) URL() string {
	return r.unit.URL
}

// Namespace returns namespace path, empty for source without namespace declaration
func (r *Resolver) Namespace() string {
	return r.namespace.Path(r.options.pathSeparator)
}

// TypeName returns declared type name
func (r *Resolver) TypeName() string {
	return r.aType.Name
}

// FullyQualifiedName returns namespace path joined with type name
func (r *Resolver) FullyQualifiedName() string {
	namespace := r.Namespace()
	if namespace == "" {
		return r.TypeName()
	}
	return namespace + r.options.separator + r.TypeName()
}

// NamespaceNode returns namespace declaration node or nil
func (r *Resolver) NamespaceNode() *ast.File {
	if r.namespace == nil {
		return nil
	}
	return r.namespace.Node
}

// TypeNode returns type declaration node
func (r *Resolver) TypeNode() *ast.TypeSpec {
	return r.aType.Node
}

// Declaration returns resolved type declaration
func (r *Resolver) Declaration() *qualifier.Type {
	return r.aType
}

// Position returns source position of node
func (r *Resolver) Position(node ast.Node) token.Position {
	return r.tree.Position(node)
}

// Signature returns source declared constructor or nil
func (r *Resolver) Signature() *signature.Func {
	return r.signature
}

// Constructor returns registered constructor for the resolved type, parameter names
// missing in the registration are taken from the source declared constructor
func (r *Resolver) Constructor() (*instance.Constructor, error) {
	constructor, err := r.options.provider.Lookup(r.FullyQualifiedName())
	if err != nil {
		return nil, err
	}
	if r.signature != nil {
		constructor = constructor.Named(r.signature.Names())
	}
	return constructor, nil
}

// InstantiateOrFail creates an instance of the resolved type
func (r *Resolver) InstantiateOrFail(args *instance.Args) (result interface{}, err error) {
	start := time.Now()
	onDone := r.options.instantiateCounter.Begin(start)
	defer func() {
		r.options.instantiateCounter.Done(onDone, err)
		r.options.logger.Instantiated(r.FullyQualifiedName(), args.String(), time.Since(start), err)
	}()
	constructor, err := r.Constructor()
	if err != nil {
		return nil, err
	}
	return constructor.Instantiate(args)
}

// Instantiate creates an instance of the resolved type or returns nil on any failure
func (r *Resolver) Instantiate(args *instance.Args) interface{} {
	ret, err := r.InstantiateOrFail(args)
	if err != nil {
		return nil
	}
	return ret
}

func (r *Resolver) init(ctx context.Context) (err error) {
	onDone := r.options.resolveCounter.Begin(time.Now())
	defer func() {
		r.options.resolveCounter.Done(onDone, err)
	}()
	start := time.Now()
	r.tree, err = r.options.parser.Parse(r.unit.URL, r.unit.Content)
	r.options.logger.Parsed(r.unit.URL, time.Since(start), err)
	if err != nil {
		return err
	}
	aQualifier := qualifier.Walk(r.tree.File, r.tree.FileSet)
	if r.aType, err = aQualifier.Type(); err != nil {
		r.options.logger.Resolved(r.unit.URL, "", err)
		return err
	}
	namespace, err := aQualifier.Namespace()
	if err != nil && !errors.Is(err, qualifier.ErrNoDeclarationFound) {
		return err
	}
	if r.namespace, err = r.rebase(ctx, namespace); err != nil {
		return err
	}
	r.signature = signature.Constructor(r.tree.File, r.aType.Name)
	r.options.logger.Resolved(r.unit.URL, r.FullyQualifiedName(), nil)
	return nil
}

// rebase returns namespace with segments taken from the enclosing go.mod module path
func (r *Resolver) rebase(ctx context.Context, namespace *qualifier.Namespace) (*qualifier.Namespace, error) {
	if namespace == nil || !r.options.module || namespace.ImportPath != "" {
		return namespace, nil
	}
	module, err := modpath.Find(ctx, r.options.fs, r.unit.URL)
	if err != nil {
		if errors.Is(err, modpath.ErrModuleNotFound) {
			return namespace, nil
		}
		return nil, err
	}
	rebased := *namespace
	rebased.Segments = strings.Split(module.ImportPath(), "/")
	return &rebased, nil
}

// New creates a resolver for supplied source unit
func New(ctx context.Context, unit *source.Unit, opts ...Option) (*Resolver, error) {
	return newResolver(ctx, unit, newOptions(opts))
}

// NewFromURL loads source unit with afs and creates a resolver
func NewFromURL(ctx context.Context, URL string, opts ...Option) (*Resolver, error) {
	options := newOptions(opts)
	unit, err := source.FromURL(ctx, options.fs, URL)
	if err != nil {
		return nil, err
	}
	return newResolver(ctx, unit, options)
}

func newResolver(ctx context.Context, unit *source.Unit, options *Options) (*Resolver, error) {
	ret := &Resolver{unit: unit, options: options}
	if err := ret.init(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}
