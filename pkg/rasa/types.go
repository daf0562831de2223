package rasa

// MessageRequest is the payload for the Rasa REST webhook.
type MessageRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Reply is one reply object returned by the dialogue engine. Rasa replies may
// carry images, buttons, or custom payloads besides text; extra fields are
// preserved so the gateway forwards them unmodified.
type Reply struct {
	RecipientID string         `json:"recipient_id,omitempty"`
	Text        string         `json:"text,omitempty"`
	Image       string         `json:"image,omitempty"`
	Buttons     []ReplyButton  `json:"buttons,omitempty"`
	Custom      map[string]any `json:"custom,omitempty"`
}

// ReplyButton is a quick-reply button attached to a Reply.
type ReplyButton struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}
