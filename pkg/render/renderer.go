// Package render defines the renderer contract shared by every output format
// the generator can emit, plus the registry that stores renderers by name for
// CLI selection.
package render

import (
	"context"

	"github.com/spikeyrock/tokengen/pkg/registry"
)

// Renderer turns an ordered token set into output bytes. Name is the CLI
// selector; ContentType describes the payload for callers that save or serve
// the result.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, set *registry.TokenSet, options Options) ([]byte, error)
}
