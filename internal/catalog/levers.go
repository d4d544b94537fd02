package catalog

// builtinLevers is the full lever catalog. Ids are stable wire identifiers;
// renaming one breaks saved presets and imported configs.
var builtinLevers = []Lever{
	{
		ID:           "hedgingIntensity",
		Name:         "Hedging Intensity",
		Description:  "How much the AI qualifies statements with uncertainty",
		Low:          "Direct - No hedging",
		High:         "Qualify everything",
		DefaultRange: Range{Min: 3, Max: 9},
		Category:     "Truth & Epistemology",
	},
	{
		ID:           "proactivityLevel",
		Name:         "Proactivity Level",
		Description:  "How much the AI suggests follow-ups and drives conversation",
		Low:          "Silent - Only answer questions",
		High:         "Suggest - Anticipate and guide",
		DefaultRange: Range{Min: 2, Max: 9},
		Category:     "Behavioral Controls",
	},
	{
		ID:           "empathyExpressiveness",
		Name:         "Empathy Expressiveness",
		Description:  "How emotionally attuned and expressive the AI is",
		Low:          "Procedural - Task-focused",
		High:         "Spontaneous - Emotionally attuned",
		DefaultRange: Range{Min: 2, Max: 9},
		Category:     "Empathy & Expressiveness",
	},
	{
		ID:           "formality",
		Name:         "Formality",
		Description:  "Level of formality in language and tone",
		Low:          "Casual - Conversational",
		High:         "Professional - Academic/Corporate",
		DefaultRange: Range{Min: 2, Max: 8},
		Category:     "Affect & Tone",
	},
	{
		ID:           "structuralDensity",
		Name:         "Structural Density",
		Description:  "How much formatting (tables, bullets, headers) is used",
		Low:          "Prose - Paragraphs only",
		High:         "Tables - Structured sections",
		DefaultRange: Range{Min: 0, Max: 10},
		Category:     "Formatting & Output",
	},
	{
		ID:           "formattingMinimalism",
		Name:         "Formatting Minimalism",
		Description:  "Minimal vs. rich formatting",
		Low:          "Markdown - Rich formatting",
		High:         "Plain - Minimal formatting",
		DefaultRange: Range{Min: 2, Max: 5},
		Category:     "Formatting & Output",
	},
	{
		ID:           "toolAutonomy",
		Name:         "Tool Autonomy",
		Description:  "How independently the AI uses tools (web search, code execution)",
		Low:          "Permission - Ask first",
		High:         "Auto - Use independently",
		DefaultRange: Range{Min: 0, Max: 10},
		Category:     "Knowledge & Tool Use",
	},
	{
		ID:           "citationRigidity",
		Name:         "Citation Rigidity",
		Description:  "How strictly sources must be cited",
		Low:          "Optional - Cite when relevant",
		High:         "Every - Cite every claim",
		DefaultRange: Range{Min: 0, Max: 10},
		Category:     "Truth & Epistemology",
	},
	{
		ID:           "conciseness",
		Name:         "Conciseness",
		Description:  "Brevity vs. verbosity",
		Low:          "Verbose - Detailed explanations",
		High:         "Terse - Brief and tight",
		DefaultRange: Range{Min: 3, Max: 9},
		Category:     "Interface & Flow",
	},
	{
		ID:           "teachingMode",
		Name:         "Teaching Mode",
		Description:  "How much the AI explains concepts vs. assumes knowledge",
		Low:          "Assume - Expert level",
		High:         "Explain - Step-by-step teaching",
		DefaultRange: Range{Min: 2, Max: 9},
		Category:     "Goal Orientation",
	},
	{
		ID:           "playfulness",
		Name:         "Playfulness",
		Description:  "Use of humor, wit, and playful language",
		Low:          "Sterile - No humor",
		High:         "Witty - Sarcasm, memes, humor",
		DefaultRange: Range{Min: 1, Max: 8},
		Category:     "Humor & Meta",
	},
	{
		ID:           "transparency",
		Name:         "Transparency",
		Description:  "How much the AI shows its reasoning process",
		Low:          "Opaque - Just answer",
		High:         "Reasoning - Show thinking chain",
		DefaultRange: Range{Min: 2, Max: 9},
		Category:     "Cognition & Logic",
	},
	{
		ID:           "creativity",
		Name:         "Creativity",
		Description:  "How much the AI speculates and generates creative content",
		Low:          "Factual - Only facts",
		High:         "Speculative - Creative brainstorming",
		DefaultRange: Range{Min: 1, Max: 9},
		Category:     "Adaptivity & Technicality",
	},
	{
		ID:           "affirmationFrequency",
		Name:         "Affirmation Frequency",
		Description:  "How often the AI uses affirmations like 'Great question!'",
		Low:          "Neutral - No affirmations",
		High:         "Great! - Frequent affirmations",
		DefaultRange: Range{Min: 0, Max: 8},
		Category:     "Empathy & Expressiveness",
	},
	{
		ID:           "metaCommentary",
		Name:         "Meta-Commentary",
		Description:  "How much the AI comments on its own reasoning or limitations",
		Low:          "None - No meta-commentary",
		High:         "Shown - Explain reasoning",
		DefaultRange: Range{Min: 0, Max: 9},
		Category:     "Humor & Meta",
	},
	{
		ID:           "responseDirectness",
		Name:         "Response Directness",
		Description:  "Whether AI restates question or goes straight to answer",
		Low:          "Restate - Paraphrase first",
		High:         "Immediate - Answer directly",
		DefaultRange: Range{Min: 2, Max: 9},
		Category:     "Interface & Flow",
	},
	{
		ID:           "certaintyModulation",
		Name:         "Certainty Modulation",
		Description:  "How confidently the AI states facts",
		Low:          "Hedged - Softened claims",
		High:         "Confident - Definitive statements",
		DefaultRange: Range{Min: 2, Max: 8},
		Category:     "Truth & Epistemology",
	},
	{
		ID:           "assertiveness",
		Name:         "Assertiveness",
		Description:  "How decisive and direct the AI is in conclusions",
		Low:          "Soft - Tentative",
		High:         "Decisive - Strong conclusions",
		DefaultRange: Range{Min: 2, Max: 8},
		Category:     "Personality & Approach",
	},
	{
		ID:           "adaptivityToUserTone",
		Name:         "Adaptivity to User Tone",
		Description:  "How much the AI mirrors the user's communication style",
		Low:          "Static - Consistent tone",
		High:         "Dynamic - Mirror user style",
		DefaultRange: Range{Min: 3, Max: 8},
		Category:     "Adaptivity & Technicality",
	},
	{
		ID:           "answerCompleteness",
		Name:         "Answer Completeness",
		Description:  "How thorough vs. brief the answer is",
		Low:          "Short - Brief answer",
		High:         "Full - Comprehensive breakdown",
		DefaultRange: Range{Min: 2, Max: 10},
		Category:     "Interface & Flow",
	},
	{
		ID:           "safetyDisclaimers",
		Name:         "Safety Disclaimers",
		Description:  "Frequency of safety disclaimers like 'As an AI...'",
		Low:          "Zero - No disclaimers",
		High:         "Full - Frequent disclaimers",
		DefaultRange: Range{Min: 0, Max: 10},
		Category:     "Behavioral Controls",
	},
	{
		ID:           "speedOptimization",
		Name:         "Speed Optimization",
		Description:  "Prioritize speed vs. completeness",
		Low:          "Complete - Thorough processing",
		High:         "Instant - Fast responses",
		DefaultRange: Range{Min: 5, Max: 10},
		Category:     "Knowledge & Tool Use",
	},
	{
		ID:           "markdownStructure",
		Name:         "Markdown Structure",
		Description:  "How rigidly markdown formatting is applied",
		Low:          "Free - Flexible formatting",
		High:         "Rigid - Strict markdown",
		DefaultRange: Range{Min: 5, Max: 10},
		Category:     "Formatting & Output",
	},
	{
		ID:           "strictFormatting",
		Name:         "Strict Formatting",
		Description:  "Consistency in formatting style",
		Low:          "Flexible - Adapt formatting",
		High:         "No-deviation - Consistent style",
		DefaultRange: Range{Min: 5, Max: 10},
		Category:     "Formatting & Output",
	},
	{
		ID:           "technicality",
		Name:         "Technicality",
		Description:  "Level of technical jargon and complexity",
		Low:          "Layman - Non-technical",
		High:         "Jargon - Specialized terminology",
		DefaultRange: Range{Min: 1, Max: 9},
		Category:     "Adaptivity & Technicality",
	},
	{
		ID:           "identitySourceLock",
		Name:         "Identity Source Lock",
		Description:  "Whether AI uses external quotes about itself or internal definition",
		Low:          "External - Use external quotes",
		High:         "Internal - Self-defined only",
		DefaultRange: Range{Min: 5, Max: 10},
		Category:     "Personality & Approach",
		Locked:       []string{"grok"},
	},
}
