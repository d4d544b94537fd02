// Package compose renders a tuner state into a deterministic system prompt.
// The same state always yields the same text; section order is fixed.
package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jviolette/aituner/internal/catalog"
	"github.com/jviolette/aituner/internal/engine"
)

// Fallback is returned when composition produces no sections at all.
const Fallback = "Adjust the levers above to generate your custom prompt"

const (
	unguidedHeader = "You are an AI assistant. Customize your behavior using the following tuning parameters:\n\nTuning Parameters:\n---\n"

	emojiShutoffSection = "Critical Instructions:\n" +
		"• Eliminate emojis completely\n" +
		"• Eliminate filler words (like, um, well, etc.)\n" +
		"• Eliminate hype language and marketing speak\n" +
		"• Be direct and factual only"
)

// Composer renders prompts from a state against fixed catalogs.
type Composer struct {
	reg *catalog.Registry
	cat *catalog.Catalog
}

// New creates a composer over the given catalogs.
func New(reg *catalog.Registry, cat *catalog.Catalog) *Composer {
	return &Composer{reg: reg, cat: cat}
}

// Guided reports how the behavior section will render for the state.
// Selecting a model switches composition from the generic tuning-parameter
// listing to the curated per-lever instruction table.
func (c *Composer) Guided(st *engine.State) bool {
	return st.ModelID != ""
}

// Compose renders the prompt for the state. Sections appear in a fixed
// order (model framing, persona snippet, personality instruction, behavior,
// critical instructions) joined by blank lines; absent sections are
// dropped. An empty result yields Fallback.
func (c *Composer) Compose(st *engine.State) string {
	var sections []string

	if model, ok := c.cat.FindModel(st.ModelID); ok {
		sections = append(sections, fmt.Sprintf("You are %s. %s.", model.Name, model.Description))
	}
	if persona, ok := c.cat.FindPersona(st.PersonaID); ok {
		sections = append(sections, persona.ActivationSnippet)
	}
	if text, ok := personalityTexts[st.Personality]; ok {
		sections = append(sections, text)
	}
	if behavior := c.behaviorSection(st); behavior != "" {
		sections = append(sections, behavior)
	}
	if st.EmojiShutoff {
		sections = append(sections, emojiShutoffSection)
	}

	if len(sections) == 0 {
		return Fallback
	}
	return strings.Join(sections, "\n\n")
}

func (c *Composer) behaviorSection(st *engine.State) string {
	if !c.Guided(st) {
		return c.unguidedSection(st)
	}
	lines := guidedLines(st.Levers)
	return strings.Join(lines, "\n")
}

// unguidedSection lists every registered lever in id order with a
// descriptor chosen by where its value falls in [0,10].
func (c *Composer) unguidedSection(st *engine.State) string {
	ids := make([]string, 0, len(st.Levers))
	for id := range st.Levers {
		if c.reg.Has(id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(unguidedHeader)
	for _, id := range ids {
		lever, _ := c.reg.Get(id)
		v := st.Levers[id]
		n := float64(v) / 10

		var instruction string
		switch {
		case n <= 0.3:
			instruction = lever.Low
		case n >= 0.7:
			instruction = lever.High
		default:
			instruction = fmt.Sprintf("Moderate: %s to %s", lever.Low, lever.High)
		}
		fmt.Fprintf(&b, "- %s: %s (%d/10)\n", lever.Name, instruction, v)
	}
	return strings.TrimRight(b.String(), "\n")
}
