package rest

import (
	"github.com/gin-gonic/gin"

	"hybrid-nlu-gateway/internal/chat"
	pkgLog "hybrid-nlu-gateway/pkg/log"
)

// Handler is the interface for the chat webhook delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new chat webhook delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
