package nlu

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"hybrid-nlu-gateway/internal/model"
)

// DefaultEmergencyPhrases is the shipped trigger vocabulary for the safety
// override. The list is a configuration surface (nlu.emergency_phrases), not
// an exhaustive medical taxonomy; operators are expected to extend it.
var DefaultEmergencyPhrases = []string{
	"infarto",
	"ataque al corazon",
	"ataque cardiaco",
	"no puedo respirar",
	"dificultad para respirar",
	"derrame cerebral",
	"sobredosis",
	"inconsciente",
	"convulsion",
	"hemorragia",
	"me estoy muriendo",
	"emergencia medica",
}

// EmergencyRule is the lexical safety pre-check. It runs with maximum
// priority before any other resolution logic: a false positive costs an
// unnecessary safe reply, a false negative carries real-world risk. Because
// it is lexical it keeps working when the generative API is down.
type EmergencyRule struct {
	phrases []string
}

// NewEmergencyRule builds the rule from the configured trigger phrases.
// An empty list falls back to DefaultEmergencyPhrases.
func NewEmergencyRule(phrases []string) *EmergencyRule {
	if len(phrases) == 0 {
		phrases = DefaultEmergencyPhrases
	}
	normalized := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = foldText(p)
		if p != "" {
			normalized = append(normalized, p)
		}
	}
	return &EmergencyRule{phrases: normalized}
}

// Match reports whether the raw utterance must be forced to the emergency
// intent. The forced result always carries an empty entity set.
func (r *EmergencyRule) Match(text string) (model.ResolvedIntent, bool) {
	folded := foldText(text)
	for _, phrase := range r.phrases {
		if strings.Contains(folded, phrase) {
			return model.ResolvedIntent{Intent: model.IntentContactoEmergencia}, true
		}
	}
	return model.ResolvedIntent{}, false
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText lowercases and strips combining accents so "infarto" matches
// "Infartó" and friends.
func foldText(s string) string {
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
