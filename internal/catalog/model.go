package catalog

// AIModel is a preset of lever defaults representing a target assistant's
// baseline behavior profile.
type AIModel struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	// Defaults is a partial lever-id -> value map. Levers it does not
	// mention keep their current value when the model is selected.
	Defaults map[string]int `json:"defaults" yaml:"defaults"`
}

// builtinModels is the model catalog in fixed display order.
var builtinModels = []AIModel{
	{
		ID:          "chatgpt",
		Name:        "ChatGPT",
		Description: "A versatile generalist assistant balancing helpfulness, structure, and approachability",
		Defaults: map[string]int{
			"hedgingIntensity":      6,
			"proactivityLevel":      6,
			"empathyExpressiveness": 6,
			"formality":             5,
			"structuralDensity":     7,
			"affirmationFrequency":  6,
			"conciseness":           4,
			"teachingMode":          7,
			"playfulness":           4,
			"safetyDisclaimers":     6,
			"markdownStructure":     8,
			"answerCompleteness":    8,
		},
	},
	{
		ID:          "claude",
		Name:        "Claude",
		Description: "A thoughtful assistant known for nuanced reasoning, careful hedging, and warm prose",
		Defaults: map[string]int{
			"hedgingIntensity":      7,
			"empathyExpressiveness": 7,
			"transparency":          7,
			"formality":             5,
			"structuralDensity":     5,
			"conciseness":           4,
			"teachingMode":          7,
			"playfulness":           4,
			"certaintyModulation":   5,
			"metaCommentary":        6,
			"answerCompleteness":    8,
			"adaptivityToUserTone":  7,
		},
	},
	{
		ID:          "gemini",
		Name:        "Gemini",
		Description: "A multimodal assistant oriented toward structured, comprehensive, search-grounded answers",
		Defaults: map[string]int{
			"structuralDensity":  8,
			"citationRigidity":   6,
			"answerCompleteness": 8,
			"teachingMode":       6,
			"hedgingIntensity":   6,
			"formality":          6,
			"toolAutonomy":       7,
			"markdownStructure":  8,
			"strictFormatting":   7,
			"playfulness":        3,
		},
	},
	{
		ID:          "grok",
		Name:        "Grok",
		Description: "An irreverent assistant with real-time knowledge, sharp wit, and minimal filters",
		Defaults: map[string]int{
			"playfulness":           8,
			"hedgingIntensity":      2,
			"assertiveness":         8,
			"certaintyModulation":   8,
			"responseDirectness":    8,
			"safetyDisclaimers":     1,
			"formality":             3,
			"empathyExpressiveness": 4,
			"identitySourceLock":    8,
			"affirmationFrequency":  2,
		},
	},
	{
		ID:          "llama",
		Name:        "Llama",
		Description: "An open-weights assistant with a friendly, conversational default register",
		Defaults: map[string]int{
			"empathyExpressiveness": 7,
			"formality":             4,
			"playfulness":           5,
			"conciseness":           5,
			"teachingMode":          6,
			"hedgingIntensity":      5,
			"affirmationFrequency":  5,
			"adaptivityToUserTone":  6,
		},
	},
	{
		ID:          "mistral",
		Name:        "Mistral",
		Description: "An efficient European assistant favoring concise, technical, to-the-point output",
		Defaults: map[string]int{
			"conciseness":           8,
			"responseDirectness":    8,
			"technicality":          7,
			"formality":             6,
			"playfulness":           2,
			"empathyExpressiveness": 3,
			"affirmationFrequency":  1,
			"speedOptimization":     8,
			"answerCompleteness":    6,
		},
	},
	{
		ID:          "perplexity",
		Name:        "Perplexity",
		Description: "A research-first answer engine that cites sources for every claim",
		Defaults: map[string]int{
			"citationRigidity":    9,
			"transparency":        7,
			"structuralDensity":   7,
			"hedgingIntensity":    5,
			"answerCompleteness":  8,
			"conciseness":         6,
			"playfulness":         2,
			"formality":           6,
			"certaintyModulation": 6,
			"technicality":        6,
		},
	},
}
