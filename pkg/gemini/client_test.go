package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hybrid-nlu-gateway/pkg/gemini"
)

func TestBuildIntentPrompt(t *testing.T) {
	intents := []string{"greet", "verificar_stock", "nlu_fallback"}
	entities := []string{"producto", "cantidad"}
	text := "¿hay stock de la RTX 4080?"

	prompt := gemini.BuildIntentPrompt(intents, entities, text)

	if !strings.Contains(prompt, "clasificador de intenciones") {
		t.Errorf("prompt missing system context")
	}
	if !strings.Contains(prompt, "greet, verificar_stock, nlu_fallback") {
		t.Errorf("prompt missing intent catalog")
	}
	if !strings.Contains(prompt, "producto, cantidad") {
		t.Errorf("prompt missing entity catalog")
	}
	if !strings.Contains(prompt, text) {
		t.Errorf("prompt missing source user text")
	}
	if !strings.Contains(prompt, "contacto_emergencia") {
		t.Errorf("prompt missing the emergency priority rule")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key", "", 5*time.Second)
	client.SetAPIURL(ts.URL)

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hola"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, err := resp.Text()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "mocked response string" {
			t.Errorf("got %q", text)
		}
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Error("expected error on 500")
		}
	})

	t.Run("bad api key", func(t *testing.T) {
		c2 := gemini.NewClient("wrong-key", "", 5*time.Second)
		c2.SetAPIURL(ts.URL)
		_, err := c2.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hola"}}}},
		})
		if err == nil {
			t.Error("expected error on 401")
		}
	})
}

func TestGenerateResponse_Text_Empty(t *testing.T) {
	var resp gemini.GenerateResponse
	if _, err := resp.Text(); err == nil {
		t.Error("expected error for empty response")
	}
}

func TestClient_Model(t *testing.T) {
	c := gemini.NewClient("k", "", 0)
	if c.Model() != gemini.DefaultModel {
		t.Errorf("empty model should fall back to default, got %q", c.Model())
	}
	c2 := gemini.NewClient("k", "gemini-2.5-pro", 0)
	if c2.Model() != "gemini-2.5-pro" {
		t.Errorf("got %q", c2.Model())
	}
}
