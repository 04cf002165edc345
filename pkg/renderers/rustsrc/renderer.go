// Package rustsrc renders token sets as Rust UnifiedToken struct literals,
// ready to paste into the wallet's token registry initializers.
package rustsrc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spikeyrock/tokengen/pkg/registry"
	"github.com/spikeyrock/tokengen/pkg/render"
	rendertemplate "github.com/spikeyrock/tokengen/pkg/render/template"
	gotemplate "github.com/spikeyrock/tokengen/pkg/render/template/gotemplate"
)

// Name is the registry selector for this renderer.
const Name = "rust"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits one comment-plus-literal block per token, separated by blank
// lines, under a banner comment line.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Rust renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("rustsrc: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/x-rust"
}

// Render emits the banner followed by one block per token in set order. The
// output for a given set is deterministic down to the byte.
func (r *Renderer) Render(ctx context.Context, set *registry.TokenSet, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("rustsrc: token set is required")
	}

	var out strings.Builder

	header, err := r.templates.RenderTemplate("header", map[string]any{
		"title": options.HeaderOrDefault(),
	})
	if err != nil {
		return nil, fmt.Errorf("rustsrc: render header: %w", err)
	}
	out.WriteString(header)

	for _, token := range set.Tokens() {
		block, err := r.renderToken(token)
		if err != nil {
			return nil, fmt.Errorf("rustsrc: render token %q: %w", token.BaseSymbol, err)
		}
		out.WriteString(block)
		out.WriteString("\n")
	}

	return []byte(out.String()), nil
}

func (r *Renderer) renderToken(token registry.Token) (string, error) {
	var deployments strings.Builder
	for _, d := range token.Deployments {
		rendered, err := r.templates.RenderTemplate("deployment", deploymentContext(d))
		if err != nil {
			return "", err
		}
		deployments.WriteString(rendered)
	}

	return r.templates.RenderTemplate("token_block", map[string]any{
		"symbol":      token.BaseSymbol,
		"name":        token.Name,
		"logo":        token.LogoURL(),
		"cmc_id":      rustOptionInt(token.CMCID),
		"category":    token.Category,
		"deployments": deployments.String(),
	})
}

func deploymentContext(d registry.Deployment) map[string]any {
	return map[string]any{
		"chain":            d.Chain,
		"chain_type":       d.ChainType,
		"chain_id":         rustOptionInt(d.ChainID),
		"contract_address": rustOptionString(d.ContractAddress),
		"decimals":         d.Decimals,
		"symbol":           d.Symbol,
		"is_native":        rustBool(d.IsNative),
		"token_standard":   d.TokenStandard,
		"chain_logo":       rustOptionString(d.ChainLogo),
	}
}
