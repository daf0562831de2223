package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hybrid-nlu-gateway/internal/chat"
	"hybrid-nlu-gateway/internal/chat/delivery/rest"
	"hybrid-nlu-gateway/internal/model"
	"hybrid-nlu-gateway/pkg/rasa"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	lastInput chat.DispatchInput
	out       chat.DispatchOutput
	err       error
}

func (m *mockUseCase) Dispatch(ctx context.Context, input chat.DispatchInput) (chat.DispatchOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func setup(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := rest.New(&mockLogger{}, uc)
	r.POST("/webhook", h.HandleWebhook)
	return r
}

func TestHandleWebhook_Success(t *testing.T) {
	uc := &mockUseCase{out: chat.DispatchOutput{Replies: []rasa.Reply{
		{RecipientID: "user-1", Text: "¡Hola! ¿En qué puedo ayudarte?"},
	}}}
	r := setup(uc)

	body := `{"text": "hola", "sender_id": "user-1", "nlu_mode": "gemini"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var replies []rasa.Reply
	if err := json.Unmarshal(w.Body.Bytes(), &replies); err != nil {
		t.Fatalf("body is not a reply array: %v", err)
	}
	if len(replies) != 1 || replies[0].Text != "¡Hola! ¿En qué puedo ayudarte?" {
		t.Errorf("unexpected replies: %v", replies)
	}

	if uc.lastInput.Mode != model.ModeGemini {
		t.Errorf("mode = %q, want gemini", uc.lastInput.Mode)
	}
	if uc.lastInput.SenderID != "user-1" {
		t.Errorf("sender = %q, want user-1", uc.lastInput.SenderID)
	}
}

func TestHandleWebhook_ModeDefaultsToRasa(t *testing.T) {
	uc := &mockUseCase{out: chat.DispatchOutput{Replies: []rasa.Reply{{Text: "ok"}}}}
	r := setup(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"text": "hola"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if uc.lastInput.Mode != model.ModeRasa {
		t.Errorf("mode = %q, want rasa default", uc.lastInput.Mode)
	}
}

func TestHandleWebhook_UnknownModeTreatedAsRasa(t *testing.T) {
	uc := &mockUseCase{out: chat.DispatchOutput{Replies: []rasa.Reply{{Text: "ok"}}}}
	r := setup(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook",
		strings.NewReader(`{"text": "hola", "nlu_mode": "chatgpt"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (unknown mode must not fail closed)", w.Code)
	}
	if uc.lastInput.Mode != model.ModeRasa {
		t.Errorf("mode = %q, want rasa", uc.lastInput.Mode)
	}
}

func TestHandleWebhook_EmptyTextRejected(t *testing.T) {
	uc := &mockUseCase{err: chat.ErrEmptyText}
	r := setup(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"sender_id": "user-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleWebhook_MalformedBodyRejected(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
