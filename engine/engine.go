// Package engine turns a content category into a complete short-form video
// production package. Generation is pure: the output depends only on the
// category and the template bank, so an Engine is safe for concurrent use.
package engine

import (
	"fmt"

	"viralreel/templates"
	"viralreel/types"
)

// Engine generates packages from one template bank
type Engine struct {
	bank *templates.Bank
}

var defaultEngine = &Engine{bank: templates.Default()}

// New validates bank and returns an engine that reads from it.
// The bank must not be modified afterwards.
func New(bank *templates.Bank) (*Engine, error) {
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template bank: %w", err)
	}
	return &Engine{bank: bank}, nil
}

// Default returns the engine backed by the compiled-in bank
func Default() *Engine {
	return defaultEngine
}

// Generate builds a package with the compiled-in bank
func Generate(category string) types.Package {
	return defaultEngine.Generate(category)
}

// BankVersion identifies the template bank in use
func (e *Engine) BankVersion() string {
	return e.bank.Version
}

// Generate builds the package for category. It never fails: blank input
// falls back to the default category and timing is clamped into range.
func (e *Engine) Generate(category string) types.Package {
	v := newVocab(Normalize(category))

	p := types.Package{Category: v.category}
	e.buildInsights(&p, v)

	script, durations := e.buildScript(v)
	p.Script = script
	p.Narration = e.buildNarration(script, v)
	p.Scenes = e.buildScenes(script, v)
	p.EditingPlan = e.buildEditingPlan(script, durations, v)
	p.Subtitles = TimeWords(p.NarrationText(), seconds(durations.total()))

	e.buildDistribution(&p, v)
	return p
}
