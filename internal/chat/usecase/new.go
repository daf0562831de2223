package usecase

import (
	"context"

	"hybrid-nlu-gateway/internal/chat"
	"hybrid-nlu-gateway/internal/nlu"
	pkgLog "hybrid-nlu-gateway/pkg/log"
	"hybrid-nlu-gateway/pkg/rasa"
)

// DialogueEngine is the slice of the Rasa client the dispatcher needs.
type DialogueEngine interface {
	SendMessage(ctx context.Context, sender, message string) ([]rasa.Reply, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	engine   DialogueEngine
	resolver nlu.Resolver
	safety   *nlu.EmergencyRule
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, engine DialogueEngine, resolver nlu.Resolver, safety *nlu.EmergencyRule) *implUseCase {
	return &implUseCase{
		l:        l,
		engine:   engine,
		resolver: resolver,
		safety:   safety,
	}
}
