package nlu

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hybrid-nlu-gateway/internal/model"
	"hybrid-nlu-gateway/pkg/gemini"
	"hybrid-nlu-gateway/pkg/log"
)

// Resolver turns free text into a resolved intent.
type Resolver interface {
	Resolve(ctx context.Context, text string) (model.ResolvedIntent, error)
}

// LLM is the slice of the Gemini client the resolver needs.
type LLM interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// Config tunes the generative resolver.
type Config struct {
	// RetryAttempts is the number of retries after the first attempt
	// (total attempts = 1 + RetryAttempts). Zero means a single attempt.
	RetryAttempts int
	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration
	// Temperature for the classification call.
	Temperature float64
	// MaxOutputTokens bounds the structured object.
	MaxOutputTokens int
	// CacheSize caps the resolution cache; zero disables caching.
	CacheSize int
	// CacheTTL expires cached resolutions.
	CacheTTL time.Duration
}

// GenerativeResolver classifies utterances with a prompt-constrained Gemini
// call. It holds no per-request state and is safe for concurrent use.
type GenerativeResolver struct {
	llm   LLM
	l     log.Logger
	cfg   Config
	cache *expirable.LRU[string, model.ResolvedIntent]
}

var _ Resolver = (*GenerativeResolver)(nil)

// New creates a new GenerativeResolver.
func New(llm LLM, l log.Logger, cfg Config) *GenerativeResolver {
	if cfg.RetryAttempts < 0 {
		cfg.RetryAttempts = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}

	var cache *expirable.LRU[string, model.ResolvedIntent]
	if cfg.CacheSize > 0 {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		cache = expirable.NewLRU[string, model.ResolvedIntent](cfg.CacheSize, nil, ttl)
	}

	return &GenerativeResolver{
		llm:   llm,
		l:     l,
		cfg:   cfg,
		cache: cache,
	}
}
