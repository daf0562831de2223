package nlu

import "time"

// Log prefixes
const (
	LogPrefixResolve = "internal.nlu.Resolve"
)

// Resolver configuration
const (
	// DefaultTemperature keeps the classification output deterministic.
	DefaultTemperature = 0.1

	// DefaultMaxOutputTokens bounds the structured object; the contract
	// forbids anything beyond it.
	DefaultMaxOutputTokens = 512

	// DefaultRetryDelay is the fixed pause between attempts. The failure
	// mode is transient API flakiness or a formatting slip, not load, so a
	// short fixed delay is enough.
	DefaultRetryDelay = 300 * time.Millisecond

	// DefaultCacheTTL expires cached resolutions.
	DefaultCacheTTL = 5 * time.Minute
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "gemini call failed"
	ErrMsgJSONParseFailed = "response is not the contracted JSON object"
	ErrMsgMissingFields   = "response is missing required fields"
	ErrMsgUnknownIntent   = "intent is outside the catalog"
)
