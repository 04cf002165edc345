// Package generator coordinates the pipeline from token source to rendered
// bytes: resolve tokens, validate, pick a renderer, render.
package generator

import (
	"context"
	"fmt"

	"github.com/spikeyrock/tokengen/pkg/registry"
	"github.com/spikeyrock/tokengen/pkg/render"
	"github.com/spikeyrock/tokengen/pkg/renderers/rustsrc"
	"github.com/spikeyrock/tokengen/pkg/renderers/snapshot"
	"github.com/spikeyrock/tokengen/pkg/unified"
)

const defaultRendererName = rustsrc.Name

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a renderer registry, replacing the built-in one.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithChainFilter replaces the supported-chain predicate applied when loading
// unified-registry sources.
func WithChainFilter(supported func(chain string) bool) Option {
	return func(g *Generator) {
		g.chainSupported = supported
	}
}

// Generator resolves a token set and renders it. Missing dependencies are
// initialised with built-in implementations so callers can start with a
// single constructor call.
type Generator struct {
	registry        *render.Registry
	defaultRenderer string
	chainSupported  func(chain string) bool
	initErr         error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
		chainSupported:  registry.ChainSupported,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.registry != nil {
		return
	}

	reg := render.NewRegistry()

	rust, err := rustsrc.New()
	if err != nil {
		g.initErr = fmt.Errorf("generator: initialise rust renderer: %w", err)
		return
	}
	if err := reg.Register(rust); err != nil {
		g.initErr = err
		return
	}
	if err := reg.Register(snapshot.New()); err != nil {
		g.initErr = err
		return
	}
	g.registry = reg
}

// Request describes the inputs for one generation run.
type Request struct {
	// Tokens supplies the set directly, bypassing source resolution. When nil
	// and Source is also nil, the static additional-tokens table is used.
	Tokens *registry.TokenSet

	// Source points at a unified-registry document to extract and filter.
	Source unified.Source

	// Renderer names the renderer to use; empty falls back to the default.
	Renderer string

	// Options carries per-request rendering overrides.
	Options render.Options
}

// Generate resolves the token set, validates every entry, and renders with
// the requested renderer. Any validation failure aborts the whole run before
// a single block is emitted.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if g.initErr != nil {
		return nil, g.initErr
	}

	set, err := g.resolveTokens(req)
	if err != nil {
		return nil, err
	}
	if err := registry.ValidateSet(set); err != nil {
		return nil, err
	}

	name := req.Renderer
	if name == "" {
		name = g.defaultRenderer
	}
	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, err
	}

	return renderer.Render(ctx, set, req.Options)
}

// Renderers lists the names of the registered renderers.
func (g *Generator) Renderers() []string {
	if g.registry == nil {
		return nil
	}
	return g.registry.List()
}

func (g *Generator) resolveTokens(req Request) (*registry.TokenSet, error) {
	if req.Tokens != nil {
		return req.Tokens, nil
	}
	if req.Source != nil {
		doc, err := unified.Load(req.Source)
		if err != nil {
			return nil, err
		}
		return doc.TokenSet(g.chainSupported)
	}
	return registry.AdditionalTokens(), nil
}
