package parser

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Registry picks a Loader by the scheme of the requested location.
type Registry struct {
	loaders map[string]Loader
}

func NewRegistry(httpCfg HTTPConfig) *Registry {
	r := &Registry{loaders: make(map[string]Loader)}
	for _, l := range []Loader{&FileLoader{}, NewHTTPLoader(httpCfg)} {
		for _, s := range l.SupportedSchemes() {
			r.loaders[s] = l
		}
	}
	return r
}

func (r *Registry) Get(scheme string) (Loader, error) {
	l, ok := r.loaders[strings.ToLower(scheme)]
	if !ok {
		return nil, fmt.Errorf("no loader for scheme: %q", scheme)
	}
	return l, nil
}

func (r *Registry) Register(scheme string, l Loader) {
	r.loaders[strings.ToLower(scheme)] = l
}

// Load opens location with the loader registered for its scheme. Plain
// paths without a scheme are read from disk.
func (r *Registry) Load(ctx context.Context, location string) (io.ReadCloser, error) {
	l, err := r.Get(Scheme(location))
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, location)
}

// Scheme returns the URL scheme of location, or "" for a filesystem path.
// Windows drive letters ("C:\docs") are not schemes.
func Scheme(location string) string {
	u, err := url.Parse(location)
	if err != nil || len(u.Scheme) < 2 {
		return ""
	}
	return u.Scheme
}
