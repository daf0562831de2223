package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Dispatch resolves the utterance through the selected NLU strategy and
	// forwards it to the dialogue engine. It always returns at least one
	// reply; the only rejected input is an empty utterance (ErrEmptyText).
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)
}
