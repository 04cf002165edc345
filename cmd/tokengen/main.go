package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/spikeyrock/tokengen/pkg/generator"
	"github.com/spikeyrock/tokengen/pkg/registry"
	"github.com/spikeyrock/tokengen/pkg/unified"
)

const pasteInstruction = "Add this code to the initialize_defi_tokens() function in token_registry.rs"

func main() {
	rendererName := flag.String("renderer", "rust", "renderer to use (rust, json)")
	output := flag.String("output", "", "output file (stdout if empty)")
	source := flag.String("source", "", "unified registry document path or URL (static table if empty)")
	interactive := flag.Bool("interactive", false, "pick which tokens to emit")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))

	ctx := context.Background()
	gen := generator.New()

	req := generator.Request{Renderer: *rendererName}

	if *source != "" {
		req.Source = parseSource(*source)
		if req.Source == nil {
			logger.Error("invalid source", "source", *source)
			os.Exit(1)
		}
	}

	if *interactive {
		tokens, err := resolveTokens(req)
		if err != nil {
			logger.Error("load tokens", "err", err)
			os.Exit(1)
		}
		subset, err := selectTokens(tokens)
		if err != nil {
			logger.Error("select tokens", "err", err)
			os.Exit(1)
		}
		req.Tokens = subset
		req.Source = nil
	}

	out, err := gen.Generate(ctx, req)
	if err != nil {
		logger.Error("generate registry code", "err", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			logger.Error("write output", "path", *output, "err", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Wrote generated registry code (%d bytes) → %s\n", len(out), *output)
		return
	}

	fmt.Println("Generating additional tokens for Rust token registry...")
	os.Stdout.Write(out)
	fmt.Println("\n" + pasteInstruction)
}

// resolveTokens loads the same set the generator would, so the interactive
// picker offers the right symbols for both static and source-backed runs.
func resolveTokens(req generator.Request) (*registry.TokenSet, error) {
	if req.Source == nil {
		return registry.AdditionalTokens(), nil
	}
	doc, err := unified.Load(req.Source)
	if err != nil {
		return nil, err
	}
	return doc.TokenSet(registry.ChainSupported)
}

func parseSource(raw string) unified.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return unified.SourceFromURL(path)
	}
	return unified.SourceFromFile(path)
}
