package options

import (
	"fmt"

	"github.com/viant/resolver"
)

type Source struct {
	URL           string `short:"s" long:"src" description:"source unit location"`
	Module        bool   `short:"m" long:"module" description:"derive namespace from enclosing go.mod"`
	PathSeparator string `short:"p" long:"psep" description:"namespace segments separator" default:"/"`
	Separator     string `short:"t" long:"sep" description:"namespace and type name separator" default:"."`
}

func (s *Source) Init() error {
	if s.URL == "" {
		return fmt.Errorf("source location was empty")
	}
	var err error
	if s.URL, err = absLocation(s.URL); err != nil {
		return err
	}
	if s.PathSeparator == "" {
		s.PathSeparator = resolver.DefaultPathSeparator
	}
	if s.Separator == "" {
		s.Separator = resolver.DefaultSeparator
	}
	return nil
}

// ResolverOptions returns resolver options
func (s *Source) ResolverOptions() []resolver.Option {
	result := []resolver.Option{resolver.WithModule(s.Module)}
	if s.PathSeparator != "" {
		result = append(result, resolver.WithPathSeparator(s.PathSeparator))
	}
	if s.Separator != "" {
		result = append(result, resolver.WithSeparator(s.Separator))
	}
	return result
}

type Resolve struct {
	Source
}

type Make struct {
	Source
	ArgsURL string `short:"a" long:"args" description:"YAML arguments location"`
}

func (m *Make) Init() error {
	if err := m.Source.Init(); err != nil {
		return err
	}
	if m.ArgsURL == "" {
		return nil
	}
	var err error
	m.ArgsURL, err = absLocation(m.ArgsURL)
	return err
}

type Generate struct {
	Source
	Dest string `short:"d" long:"dest" description:"generated registration file location, defaults to <type>_register.go next to source"`
}

func (g *Generate) Init() error {
	if err := g.Source.Init(); err != nil {
		return err
	}
	if g.Dest == "" {
		return nil
	}
	var err error
	g.Dest, err = absLocation(g.Dest)
	return err
}
