package chat

import (
	"hybrid-nlu-gateway/internal/model"
	"hybrid-nlu-gateway/pkg/rasa"
)

// DispatchInput is one incoming utterance.
type DispatchInput struct {
	Text     string        // Raw user text
	SenderID string        // Conversation/session key; generated when empty
	Mode     model.NLUMode // Resolution strategy for this request
}

// DispatchOutput carries the ordered reply list back to the caller.
type DispatchOutput struct {
	Replies []rasa.Reply
	// UsedFallback is true when the generative path failed and the request
	// was re-routed through the deterministic one.
	UsedFallback bool
	// ForcedEmergency is true when the safety override classified the
	// utterance before any resolver ran.
	ForcedEmergency bool
}
