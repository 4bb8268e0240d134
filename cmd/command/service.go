package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/resolver"
	"github.com/viant/resolver/cmd/options"
	"github.com/viant/resolver/instance"
	"github.com/viant/resolver/internal/codegen"
	"github.com/viant/toolbox"
)

type Service struct {
	fs       afs.Service
	registry *instance.Registry
	out      io.Writer
}

func (s *Service) Exec(ctx context.Context, opts *options.Options) error {
	switch {
	case opts.Resolve != nil:
		return s.Resolve(ctx, opts.Resolve)
	case opts.Make != nil:
		return s.Make(ctx, opts.Make)
	case opts.Generate != nil:
		return s.Generate(ctx, opts.Generate)
	}
	return fmt.Errorf("unsupported command")
}

func (s *Service) resolver(ctx context.Context, source *options.Source) (*resolver.Resolver, error) {
	opts := append(source.ResolverOptions(), resolver.WithFs(s.fs), resolver.WithProvider(s.registry))
	return resolver.NewFromURL(ctx, source.URL, opts...)
}

func (s *Service) Resolve(ctx context.Context, resolve *options.Resolve) error {
	aResolver, err := s.resolver(ctx, &resolve.Source)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, aResolver.FullyQualifiedName())
	return err
}

func (s *Service) Make(ctx context.Context, aMake *options.Make) error {
	args := instance.NewArgs()
	if aMake.ArgsURL != "" {
		data, err := s.fs.DownloadWithURL(ctx, aMake.ArgsURL)
		if err != nil {
			return fmt.Errorf("failed to load args %v: %w", aMake.ArgsURL, err)
		}
		if args, err = DecodeArgs(data); err != nil {
			return err
		}
	}
	aResolver, err := s.resolver(ctx, &aMake.Source)
	if err != nil {
		return err
	}
	anInstance, err := aResolver.InstantiateOrFail(args)
	if err != nil {
		return err
	}
	text, err := toolbox.AsIndentJSONText(anInstance)
	if err != nil {
		return fmt.Errorf("failed to encode %v: %w", aResolver.FullyQualifiedName(), err)
	}
	_, err = fmt.Fprintln(s.out, text)
	return err
}

func (s *Service) Generate(ctx context.Context, generate *options.Generate) error {
	aResolver, err := s.resolver(ctx, &generate.Source)
	if err != nil {
		return err
	}
	typeNode := aResolver.TypeNode()
	if typeNode.TypeParams != nil && len(typeNode.TypeParams.List) > 0 {
		return fmt.Errorf("unable to register generic type %v", aResolver.FullyQualifiedName())
	}
	if !aResolver.Declaration().IsTopLevel(aResolver.NamespaceNode()) {
		position := aResolver.Position(typeNode)
		return fmt.Errorf("unable to register %v declared at %v:%v, type is not declared at file scope", aResolver.TypeName(), position.Filename, position.Line)
	}
	registration := &codegen.Registration{
		Name:        aResolver.FullyQualifiedName(),
		TypeName:    aResolver.TypeName(),
		Constructor: aResolver.Signature(),
	}
	dest := generate.Dest
	if dest == "" {
		parent, _ := url.Split(generate.URL, file.Scheme)
		dest = url.Join(parent, strings.ToLower(aResolver.TypeName())+"_register.go")
	}
	_, name := url.Split(dest, file.Scheme)
	code, err := codegen.GenerateRegistration(name, aResolver.NamespaceNode().Name.Name, registration)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, dest, file.DefaultFileOsMode, bytes.NewReader(code)); err != nil {
		return fmt.Errorf("failed to upload %v: %w", dest, err)
	}
	_, err = fmt.Fprintf(s.out, "generated %v\n", dest)
	return err
}

func New() *Service {
	return &Service{
		fs:       afs.New(),
		registry: instance.Default,
		out:      os.Stdout,
	}
}
