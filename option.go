package resolver

import (
	"github.com/viant/afs"
	"github.com/viant/gmetric"
	"github.com/viant/resolver/instance"
	"github.com/viant/resolver/logger"
	"github.com/viant/resolver/syntax"
)

const (
	// DefaultPathSeparator joins namespace segments
	DefaultPathSeparator = "/"
	// DefaultSeparator joins namespace and type name
	DefaultSeparator = "."

	metricPackage = "resolver"
)

type (
	// Options represents resolver options
	Options struct {
		fs            afs.Service
		provider      instance.Provider
		parser        syntax.Parser
		logger        *logger.Adapter
		metrics       *gmetric.Service
		pathSeparator string
		separator     string
		module        bool

		resolveCounter     *logger.CounterAdapter
		instantiateCounter *logger.CounterAdapter
	}

	// Option represents a resolver option
	Option func(o *Options)
)

func newOptions(opts []Option) *Options {
	result := &Options{pathSeparator: DefaultPathSeparator, separator: DefaultSeparator}
	for _, opt := range opts {
		opt(result)
	}
	if result.fs == nil {
		result.fs = afs.New()
	}
	if result.provider == nil {
		result.provider = instance.Default
	}
	if result.parser == nil {
		result.parser = syntax.New()
	}
	if result.logger == nil {
		result.logger = logger.Default()
	}
	result.resolveCounter = logger.NewOperationCounter(result.metrics, metricPackage, metricPackage+".resolve")
	result.instantiateCounter = logger.NewOperationCounter(result.metrics, metricPackage, metricPackage+".instantiate")
	return result
}

// WithFs sets file system service used to load source units and go.mod files
func WithFs(fs afs.Service) Option {
	return func(o *Options) {
		o.fs = fs
	}
}

// WithProvider sets constructor provider, instance.Default by default
func WithProvider(provider instance.Provider) Option {
	return func(o *Options) {
		o.provider = provider
	}
}

// WithParser sets syntax tree provider
func WithParser(parser syntax.Parser) Option {
	return func(o *Options) {
		o.parser = parser
	}
}

// WithLogger sets lifecycle logger
func WithLogger(aLogger logger.Logger) Option {
	return func(o *Options) {
		o.logger = logger.NewLogger(aLogger)
	}
}

// WithMetrics sets a metrics service
func WithMetrics(metrics *gmetric.Service) Option {
	return func(o *Options) {
		o.metrics = metrics
	}
}

// WithPathSeparator sets namespace segments separator
func WithPathSeparator(separator string) Option {
	return func(o *Options) {
		o.pathSeparator = separator
	}
}

// WithSeparator sets separator between namespace and type name
func WithSeparator(separator string) Option {
	return func(o *Options) {
		o.separator = separator
	}
}

// WithModule derives namespace from the enclosing go.mod when source has no import comment
func WithModule(module bool) Option {
	return func(o *Options) {
		o.module = module
	}
}
