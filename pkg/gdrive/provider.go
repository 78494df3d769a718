package gdrive

import (
	"context"

	"google.golang.org/api/option"
)

// ConfigProvider supplies module options at wiring time. It decouples the
// service constructor from how the host application sources its
// configuration: a literal value, or a factory resolved asynchronously
// against the host's own dependencies.
type ConfigProvider interface {
	ModuleOptions(ctx context.Context) (Options, error)
}

// Static is a ConfigProvider wrapping a literal Options value.
type Static Options

func (s Static) ModuleOptions(_ context.Context) (Options, error) {
	return Options(s), nil
}

// FactoryFunc is a ConfigProvider that produces options on demand, for
// hosts that resolve credentials from a secret store or remote config.
type FactoryFunc func(ctx context.Context) (Options, error)

func (f FactoryFunc) ModuleOptions(ctx context.Context) (Options, error) {
	return f(ctx)
}

// NewServiceFromProvider resolves options through the provider and
// constructs the service. A provider failure is a configuration error.
func NewServiceFromProvider(ctx context.Context, p ConfigProvider, apiOpts ...option.ClientOption) (*Service, error) {
	opts, err := p.ModuleOptions(ctx)
	if err != nil {
		return nil, &ConfigError{Message: "config provider failed", Err: err}
	}

	return NewService(ctx, opts, apiOpts...)
}
