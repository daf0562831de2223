package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hybrid-nlu-gateway/internal/model"
	"hybrid-nlu-gateway/pkg/gemini"
)

// generativeOutput is the wire shape the model is contracted to return.
// Entities are decoded loosely so a single malformed element can be dropped
// without failing the whole object.
type generativeOutput struct {
	Intent   string           `json:"intent"`
	Entities []map[string]any `json:"entities"`
}

// Resolve maps free text to a resolved intent under the strict output
// contract. Attempts are strictly sequential; the first structurally valid
// one wins. When every attempt fails the returned error wraps
// ErrResolutionFailed and carries no partial data.
func (r *GenerativeResolver) Resolve(ctx context.Context, text string) (model.ResolvedIntent, error) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(text); ok {
			r.l.Debugf(ctx, "%s: cache hit for utterance", LogPrefixResolve)
			return cached, nil
		}
	}

	prompt := buildPrompt(text)
	var lastErr error

	for attempt := 0; attempt <= r.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(r.cfg.RetryDelay):
			case <-ctx.Done():
				return model.ResolvedIntent{}, fmt.Errorf("%w: %v", ErrResolutionFailed, ctx.Err())
			}
		}

		resolved, err := r.resolveOnce(ctx, prompt)
		if err == nil {
			r.l.Infof(ctx, "%s: classified as %s with %d entities (attempt %d)",
				LogPrefixResolve, resolved.Intent, len(resolved.Entities), attempt+1)
			if r.cache != nil {
				r.cache.Add(text, resolved)
			}
			return resolved, nil
		}

		r.l.Warnf(ctx, "%s: attempt %d/%d failed: %v",
			LogPrefixResolve, attempt+1, r.cfg.RetryAttempts+1, err)
		lastErr = err
	}

	return model.ResolvedIntent{}, fmt.Errorf("%w: %v", ErrResolutionFailed, lastErr)
}

func buildPrompt(text string) string {
	intents := make([]string, 0, len(model.IntentCatalog()))
	for _, in := range model.IntentCatalog() {
		intents = append(intents, string(in))
	}
	entities := make([]string, 0, len(model.EntityCatalog()))
	for _, en := range model.EntityCatalog() {
		entities = append(entities, string(en))
	}
	return gemini.BuildIntentPrompt(intents, entities, text)
}

// resolveOnce performs a single call-parse-validate attempt.
func (r *GenerativeResolver) resolveOnce(ctx context.Context, prompt string) (model.ResolvedIntent, error) {
	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     r.cfg.Temperature,
			MaxOutputTokens: r.cfg.MaxOutputTokens,
		},
	})
	if err != nil {
		return model.ResolvedIntent{}, fmt.Errorf("%s: %w", ErrMsgLLMCallFailed, err)
	}

	raw, err := resp.Text()
	if err != nil {
		return model.ResolvedIntent{}, fmt.Errorf("%s: %w", ErrMsgLLMCallFailed, err)
	}

	cleaned := sanitizeJSONResponse(raw)

	var out generativeOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return model.ResolvedIntent{}, fmt.Errorf("%s: %w", ErrMsgJSONParseFailed, err)
	}

	if out.Intent == "" || out.Entities == nil {
		return model.ResolvedIntent{}, fmt.Errorf("%s", ErrMsgMissingFields)
	}

	intent := model.IntentName(out.Intent)
	if !model.ValidIntent(intent) {
		// An out-of-catalog intent cannot be routed; the whole result is
		// malformed output, not a new intent.
		return model.ResolvedIntent{}, fmt.Errorf("%s: %q", ErrMsgUnknownIntent, out.Intent)
	}

	return model.ResolvedIntent{
		Intent:   intent,
		Entities: collectEntities(out.Entities),
	}, nil
}

// collectEntities keeps catalog-valid, well-shaped entity elements and drops
// the rest silently. Duplicate names keep the last value.
func collectEntities(raw []map[string]any) []model.Entity {
	var ordered []model.Entity
	index := make(map[model.EntityName]int)

	for _, elem := range raw {
		name, okN := elem["entity"].(string)
		value, okV := elem["value"].(string)
		if !okN || !okV {
			continue
		}
		en := model.EntityName(name)
		if !model.ValidEntity(en) {
			continue
		}
		if i, seen := index[en]; seen {
			ordered[i].Value = value
			continue
		}
		index[en] = len(ordered)
		ordered = append(ordered, model.Entity{Name: en, Value: value})
	}
	return ordered
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
