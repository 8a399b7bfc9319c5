package generator

import (
	"fmt"
	"sort"

	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/logging"
)

type Registry struct {
	sources map[string]func(*config.Config) (Source, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		sources: make(map[string]func(*config.Config) (Source, error)),
	}

	r.sources["particles"] = newParticleSource
	r.sources["mandelbrot"] = newFractalSource
	r.sources["life"] = newLifeSource
	r.sources["raytrace"] = newRaySource

	return r
}

// Get builds the source named by cfg.Generator. The config is validated first.
func (r *Registry) Get(cfg *config.Config) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fn, ok := r.sources[cfg.Generator]
	if !ok {
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownGenerator, cfg.Generator)
	}
	src, err := fn(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Generator, err)
	}
	logging.Logger().Debug("source created",
		"generator", cfg.Generator,
		"width", cfg.Width,
		"height", cfg.Height)
	return src, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
