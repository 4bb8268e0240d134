package resolver

import (
	"context"
	_ "embed"

	"github.com/viant/resolver/instance"
	"github.com/viant/resolver/source"
)

//go:embed Version
var Version string

// Service resolves and instantiates source units by URL with shared options
type Service struct {
	options *Options
}

// Resolver loads and resolves source unit
func (s *Service) Resolver(ctx context.Context, URL string) (*Resolver, error) {
	unit, err := source.FromURL(ctx, s.options.fs, URL)
	if err != nil {
		return nil, err
	}
	return s.ResolverFor(ctx, unit)
}

// ResolverFor resolves already loaded source unit
func (s *Service) ResolverFor(ctx context.Context, unit *source.Unit) (*Resolver, error) {
	return newResolver(ctx, unit, s.options)
}

// Resolve returns fully qualified name of the type declared in URL
func (s *Service) Resolve(ctx context.Context, URL string) (string, error) {
	aResolver, err := s.Resolver(ctx, URL)
	if err != nil {
		return "", err
	}
	return aResolver.FullyQualifiedName(), nil
}

// InstantiateOrFail creates an instance of the type declared in URL
func (s *Service) InstantiateOrFail(ctx context.Context, URL string, args *instance.Args) (interface{}, error) {
	aResolver, err := s.Resolver(ctx, URL)
	if err != nil {
		return nil, err
	}
	return aResolver.InstantiateOrFail(args)
}

// Instantiate creates an instance of the type declared in URL or returns nil on any failure
func (s *Service) Instantiate(ctx context.Context, URL string, args *instance.Args) interface{} {
	ret, err := s.InstantiateOrFail(ctx, URL, args)
	if err != nil {
		return nil
	}
	return ret
}

// NewService creates a service
func NewService(opts ...Option) *Service {
	return &Service{options: newOptions(opts)}
}

// Resolve returns fully qualified name of the type declared in URL
func Resolve(ctx context.Context, URL string, opts ...Option) (string, error) {
	return NewService(opts...).Resolve(ctx, URL)
}

// InstantiateOrFail creates an instance of the type declared in URL
func InstantiateOrFail(ctx context.Context, URL string, args *instance.Args, opts ...Option) (interface{}, error) {
	return NewService(opts...).InstantiateOrFail(ctx, URL, args)
}

// Instantiate creates an instance of the type declared in URL or returns nil on any failure
func Instantiate(ctx context.Context, URL string, args *instance.Args, opts ...Option) interface{} {
	return NewService(opts...).Instantiate(ctx, URL, args)
}
