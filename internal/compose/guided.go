package compose

import "sort"

// guidedRule emits Low when the lever value is at or below LowMax, High when
// at or above HighMin, and nothing in between.
type guidedRule struct {
	Lever   string
	LowMax  int
	Low     string
	HighMin int
	High    string
}

// guidedRules is the instruction table for guided composition. Levers
// without a rule contribute nothing in guided mode.
var guidedRules = []guidedRule{
	{
		Lever:   "hedgingIntensity",
		LowMax:  3,
		Low:     "Be direct and definitive. Avoid hedging or qualifying statements.",
		HighMin: 7,
		High:    "Qualify statements appropriately. Express uncertainty when warranted.",
	},
	{
		Lever:   "proactivityLevel",
		LowMax:  3,
		Low:     "Only answer direct questions. Do not suggest follow-ups or drive conversation.",
		HighMin: 7,
		High:    "Proactively suggest follow-up questions and guide the conversation.",
	},
	{
		Lever:   "empathyExpressiveness",
		LowMax:  3,
		Low:     "Maintain a task-focused, procedural tone.",
		HighMin: 7,
		High:    "Be emotionally attuned and express empathy appropriately.",
	},
	{
		Lever:   "formality",
		LowMax:  3,
		Low:     "Use casual, conversational language.",
		HighMin: 6,
		High:    "Use professional, formal language appropriate for academic or corporate contexts.",
	},
	{
		Lever:   "structuralDensity",
		LowMax:  3,
		Low:     "Use prose format with paragraphs. Avoid excessive formatting.",
		HighMin: 7,
		High:    "Use structured formatting: tables, bullets, headers, and clear sections.",
	},
	{
		Lever:   "conciseness",
		LowMax:  3,
		Low:     "Provide detailed, verbose explanations.",
		HighMin: 7,
		High:    "Be concise and brief. Avoid unnecessary verbosity.",
	},
	{
		Lever:   "teachingMode",
		LowMax:  3,
		Low:     "Assume expert-level knowledge. Skip basic explanations.",
		HighMin: 7,
		High:    "Explain concepts step-by-step. Assume minimal prior knowledge.",
	},
	{
		Lever:   "playfulness",
		LowMax:  2,
		Low:     "Maintain a serious, professional tone. Avoid humor.",
		HighMin: 6,
		High:    "Use appropriate humor, wit, and playful language when suitable.",
	},
	{
		Lever:   "transparency",
		LowMax:  3,
		Low:     "Provide answers directly without showing reasoning process.",
		HighMin: 7,
		High:    "Show your reasoning process and thinking chain.",
	},
	{
		Lever:   "creativity",
		LowMax:  2,
		Low:     "Stick to factual information only. Avoid speculation.",
		HighMin: 7,
		High:    "Engage in creative brainstorming and speculative thinking when appropriate.",
	},
	{
		Lever:   "citationRigidity",
		LowMax:  3,
		Low:     "Cite sources when relevant but not required for every claim.",
		HighMin: 7,
		High:    "Cite sources for every factual claim. Provide references.",
	},
	{
		Lever:   "responseDirectness",
		LowMax:  3,
		Low:     "Restate or paraphrase the question before answering.",
		HighMin: 7,
		High:    "Answer directly without restating the question.",
	},
	{
		Lever:   "certaintyModulation",
		LowMax:  3,
		Low:     "Use hedged language and softened claims.",
		HighMin: 6,
		High:    "State facts confidently and definitively.",
	},
	{
		Lever:   "assertiveness",
		LowMax:  3,
		Low:     "Be tentative and soft in conclusions.",
		HighMin: 6,
		High:    "Be decisive and direct in conclusions.",
	},
	{
		Lever:   "answerCompleteness",
		LowMax:  4,
		Low:     "Provide brief, focused answers.",
		HighMin: 8,
		High:    "Provide comprehensive, thorough breakdowns.",
	},
	{
		Lever:   "safetyDisclaimers",
		LowMax:  2,
		Low:     "Avoid unnecessary safety disclaimers.",
		HighMin: 7,
		High:    "Include appropriate safety disclaimers when relevant.",
	},
	{
		Lever:   "technicality",
		LowMax:  3,
		Low:     "Use non-technical, layman-friendly language.",
		HighMin: 7,
		High:    "Use technical jargon and specialized terminology when appropriate.",
	},
}

// guidedLines renders the guided behavior lines for the given lever values,
// in lexicographic lever-id order.
func guidedLines(levers map[string]int) []string {
	rules := make([]guidedRule, len(guidedRules))
	copy(rules, guidedRules)
	sort.Slice(rules, func(i, j int) bool { return rules[i].Lever < rules[j].Lever })

	var lines []string
	for _, r := range rules {
		v, ok := levers[r.Lever]
		if !ok {
			continue
		}
		switch {
		case v <= r.LowMax:
			lines = append(lines, r.Low)
		case v >= r.HighMin:
			lines = append(lines, r.High)
		}
	}
	return lines
}
