package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hybrid-nlu-gateway/internal/chat"
	"hybrid-nlu-gateway/internal/model"
	pkgResponse "hybrid-nlu-gateway/pkg/response"
)

// webhookRequest is the inbound payload from the web relay.
type webhookRequest struct {
	Text     string `json:"text"`
	SenderID string `json:"sender_id"`
	NLUMode  string `json:"nlu_mode"`
}

// HandleWebhook receives one user utterance and answers with the dialogue
// engine's reply list.
//
// The success body is the raw Rasa-style reply array, not the envelope from
// pkg/response, so the browser front end consumes it unchanged.
//
// @Summary     Dispatch a user message
// @Description Routes the message through the selected NLU strategy (rasa or gemini) and returns the dialogue engine's replies.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       request body webhookRequest true "User message"
// @Success     200 {array} rasa.Reply "Ordered reply list"
// @Failure     400 {object} response.Resp "Missing text"
// @Router      /webhook [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "chat handler: failed to parse request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := h.uc.Dispatch(ctx, chat.DispatchInput{
		Text:     req.Text,
		SenderID: req.SenderID,
		Mode:     model.ParseNLUMode(req.NLUMode),
	})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyText) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat handler: dispatch failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Replies)
}
