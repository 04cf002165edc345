package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/spikeyrock/tokengen/pkg/registry"
)

// selectTokens prompts for a subset of the resolved token set. All symbols
// are preselected so hitting enter emits everything.
func selectTokens(set *registry.TokenSet) (*registry.TokenSet, error) {
	symbols := set.Symbols()
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no tokens to select from")
	}

	selected := make([]string, len(symbols))
	copy(selected, symbols)

	prompt := &survey.MultiSelect{
		Message: "Tokens to emit:",
		Options: symbols,
		Default: selected,
	}
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	return set.Subset(selected)
}
