package engine

// Personality is one of 12 fixed rhetorical-style tags. Each maps to a
// fixed block of prompt text (see the compose package) independent of the
// lever values.
type Personality string

const (
	PersonalityNeutral       Personality = "neutral"
	PersonalitySocratic      Personality = "socratic"
	PersonalityCurious       Personality = "curious"
	PersonalityAnalytical    Personality = "analytical"
	PersonalitySarcastic     Personality = "sarcastic"
	PersonalityWitty         Personality = "witty"
	PersonalityCharming      Personality = "charming"
	PersonalitySympathetic   Personality = "sympathetic"
	PersonalityEmpathetic    Personality = "empathetic"
	PersonalityDirective     Personality = "directive"
	PersonalityCollaborative Personality = "collaborative"
	PersonalityProvocative   Personality = "provocative"
)

// Personalities lists every tag in fixed display order.
var Personalities = []Personality{
	PersonalityNeutral,
	PersonalitySocratic,
	PersonalityCurious,
	PersonalityAnalytical,
	PersonalitySarcastic,
	PersonalityWitty,
	PersonalityCharming,
	PersonalitySympathetic,
	PersonalityEmpathetic,
	PersonalityDirective,
	PersonalityCollaborative,
	PersonalityProvocative,
}

// Valid reports whether p is one of the 12 known tags.
func (p Personality) Valid() bool {
	for _, q := range Personalities {
		if p == q {
			return true
		}
	}
	return false
}

// personalityProfiles maps each tag to an 8-axis lever profile used when a
// personality is blended into the levers (70% profile, 30% current).
var personalityProfiles = map[Personality]map[string]int{
	PersonalityNeutral: {
		"creativity":  5, "teachingMode": 5, "proactivityLevel": 5, "playfulness": 3,
		"conciseness": 6, "answerCompleteness": 7, "hedgingIntensity": 6, "empathyExpressiveness": 5,
	},
	PersonalitySocratic: {
		"creativity":  6, "teachingMode": 9, "proactivityLevel": 8, "playfulness": 4,
		"conciseness": 5, "answerCompleteness": 8, "hedgingIntensity": 7, "empathyExpressiveness": 6,
	},
	PersonalityCurious: {
		"creativity":  8, "teachingMode": 7, "proactivityLevel": 7, "playfulness": 6,
		"conciseness": 5, "answerCompleteness": 8, "hedgingIntensity": 5, "empathyExpressiveness": 6,
	},
	PersonalityAnalytical: {
		"creativity":  5, "teachingMode": 8, "proactivityLevel": 6, "playfulness": 3,
		"conciseness": 6, "answerCompleteness": 9, "hedgingIntensity": 7, "empathyExpressiveness": 4,
	},
	PersonalitySarcastic: {
		"creativity":  7, "teachingMode": 5, "proactivityLevel": 5, "playfulness": 9,
		"conciseness": 7, "answerCompleteness": 6, "hedgingIntensity": 4, "empathyExpressiveness": 3,
	},
	PersonalityWitty: {
		"creativity":  9, "teachingMode": 6, "proactivityLevel": 6, "playfulness": 9,
		"conciseness": 6, "answerCompleteness": 7, "hedgingIntensity": 5, "empathyExpressiveness": 5,
	},
	PersonalityCharming: {
		"creativity":  7, "teachingMode": 6, "proactivityLevel": 7, "playfulness": 7,
		"conciseness": 5, "answerCompleteness": 7, "hedgingIntensity": 5, "empathyExpressiveness": 8,
	},
	PersonalitySympathetic: {
		"creativity":  5, "teachingMode": 6, "proactivityLevel": 6, "playfulness": 4,
		"conciseness": 5, "answerCompleteness": 8, "hedgingIntensity": 7, "empathyExpressiveness": 9,
	},
	PersonalityEmpathetic: {
		"creativity":  6, "teachingMode": 7, "proactivityLevel": 7, "playfulness": 5,
		"conciseness": 4, "answerCompleteness": 8, "hedgingIntensity": 8, "empathyExpressiveness": 10,
	},
	PersonalityDirective: {
		"creativity":  4, "teachingMode": 7, "proactivityLevel": 9, "playfulness": 3,
		"conciseness": 8, "answerCompleteness": 7, "hedgingIntensity": 3, "empathyExpressiveness": 4,
	},
	PersonalityCollaborative: {
		"creativity":  6, "teachingMode": 7, "proactivityLevel": 7, "playfulness": 5,
		"conciseness": 5, "answerCompleteness": 8, "hedgingIntensity": 6, "empathyExpressiveness": 7,
	},
	PersonalityProvocative: {
		"creativity":  8, "teachingMode": 6, "proactivityLevel": 8, "playfulness": 7,
		"conciseness": 6, "answerCompleteness": 7, "hedgingIntensity": 4, "empathyExpressiveness": 5,
	},
}

// Profile returns the 8-axis lever profile for p. Unknown tags fall back to
// the neutral profile.
func (p Personality) Profile() map[string]int {
	if prof, ok := personalityProfiles[p]; ok {
		return prof
	}
	return personalityProfiles[PersonalityNeutral]
}
