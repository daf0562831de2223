package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hybrid-nlu-gateway/internal/chat"
	"hybrid-nlu-gateway/internal/model"
	"hybrid-nlu-gateway/pkg/rasa"
)

// Dispatch routes one utterance: safety override first, then the selected
// strategy, then the dialogue engine. Any engine failure degrades to a single
// apology reply; a generative-path failure falls back to the deterministic
// path with a prepended notice.
func (uc *implUseCase) Dispatch(ctx context.Context, input chat.DispatchInput) (chat.DispatchOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return chat.DispatchOutput{}, chat.ErrEmptyText
	}

	sender := input.SenderID
	if sender == "" {
		sender = uuid.NewString()
	}

	// Safety override runs before any strategy selection, on both paths.
	// It is lexical, so it keeps working when the generative API is down.
	if forced, ok := uc.safety.Match(input.Text); ok {
		uc.l.Warnf(ctx, "%s: emergency override triggered for sender %s", LogPrefixDispatch, sender)
		replies := uc.forwardResolved(ctx, sender, forced)
		return chat.DispatchOutput{Replies: replies, ForcedEmergency: true}, nil
	}

	if input.Mode == model.ModeGemini {
		return uc.dispatchGenerative(ctx, sender, input.Text)
	}
	return uc.dispatchDeterministic(ctx, sender, input.Text)
}

// dispatchGenerative runs the generative resolver and injects the resolved
// intent into the dialogue engine. On resolution failure it falls back to the
// deterministic path with a visible notice.
func (uc *implUseCase) dispatchGenerative(ctx context.Context, sender, text string) (chat.DispatchOutput, error) {
	resolved, err := uc.resolver.Resolve(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "%s: generative resolution failed, falling back to deterministic NLU: %v",
			LogPrefixDispatch, err)

		out, _ := uc.dispatchDeterministic(ctx, sender, text)
		out.UsedFallback = true
		out.Replies = append([]rasa.Reply{{RecipientID: sender, Text: MsgFallbackNotice}}, out.Replies...)
		return out, nil
	}

	replies := uc.forwardResolved(ctx, sender, resolved)
	return chat.DispatchOutput{Replies: replies}, nil
}

// dispatchDeterministic forwards the raw text verbatim; the dialogue engine
// performs its own classification.
func (uc *implUseCase) dispatchDeterministic(ctx context.Context, sender, text string) (chat.DispatchOutput, error) {
	replies, err := uc.engine.SendMessage(ctx, sender, text)
	if err != nil {
		uc.l.Errorf(ctx, "%s: dialogue engine unreachable: %v", LogPrefixDispatch, err)
		return chat.DispatchOutput{Replies: apologyReplies(sender)}, nil
	}
	return chat.DispatchOutput{Replies: nonEmpty(replies, sender)}, nil
}

// forwardResolved encodes a resolved intent as a structured-intent injection
// message and forwards it. The encoding is lossless over the validated
// entity set.
func (uc *implUseCase) forwardResolved(ctx context.Context, sender string, resolved model.ResolvedIntent) []rasa.Reply {
	entities := make(map[string]string, len(resolved.Entities))
	for _, e := range resolved.Entities {
		entities[string(e.Name)] = e.Value
	}

	message, err := rasa.EncodeIntentMessage(string(resolved.Intent), entities)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to encode intent message: %v", LogPrefixDispatch, err)
		return apologyReplies(sender)
	}

	replies, err := uc.engine.SendMessage(ctx, sender, message)
	if err != nil {
		uc.l.Errorf(ctx, "%s: dialogue engine unreachable: %v", LogPrefixDispatch, err)
		return apologyReplies(sender)
	}
	return nonEmpty(replies, sender)
}

func apologyReplies(sender string) []rasa.Reply {
	return []rasa.Reply{{RecipientID: sender, Text: MsgApology}}
}

// nonEmpty guarantees the caller always gets at least one reply, even when
// the engine answered 200 with an empty list.
func nonEmpty(replies []rasa.Reply, sender string) []rasa.Reply {
	if len(replies) == 0 {
		return apologyReplies(sender)
	}
	return replies
}
