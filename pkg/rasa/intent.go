package rasa

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IntentSentinel prefixes a structured-intent injection message. Rasa's REST
// channel treats a message starting with this character as a pre-resolved
// intent instead of free text to classify.
const IntentSentinel = "/"

// EncodeIntentMessage serializes a resolved intent and its entities into
// Rasa's intent-injection syntax:
//
//	/<intent_name>{"<entity>":"<value>",...}
//
// The entity object (including the braces) is omitted entirely when there are
// no entities. Key order is deterministic (lexicographic, as produced by
// encoding/json for maps).
func EncodeIntentMessage(intent string, entities map[string]string) (string, error) {
	if intent == "" {
		return "", fmt.Errorf("intent name is empty")
	}
	if len(entities) == 0 {
		return IntentSentinel + intent, nil
	}
	obj, err := json.Marshal(entities)
	if err != nil {
		return "", fmt.Errorf("failed to marshal entities: %w", err)
	}
	return IntentSentinel + intent + string(obj), nil
}

// DecodeIntentMessage parses a structured-intent injection message back into
// its intent name and entity set. It is the inverse of EncodeIntentMessage and
// exists so the wire grammar can be verified by round-trip tests.
func DecodeIntentMessage(message string) (string, map[string]string, error) {
	if !strings.HasPrefix(message, IntentSentinel) {
		return "", nil, fmt.Errorf("message does not start with %q", IntentSentinel)
	}
	body := strings.TrimPrefix(message, IntentSentinel)

	brace := strings.Index(body, "{")
	if brace == -1 {
		if body == "" {
			return "", nil, fmt.Errorf("message has no intent name")
		}
		return body, nil, nil
	}

	intent := body[:brace]
	if intent == "" {
		return "", nil, fmt.Errorf("message has no intent name")
	}

	var entities map[string]string
	if err := json.Unmarshal([]byte(body[brace:]), &entities); err != nil {
		return "", nil, fmt.Errorf("failed to parse entity object: %w", err)
	}
	return intent, entities, nil
}
