package model_test

import (
	"testing"

	"hybrid-nlu-gateway/internal/model"
)

func TestParseNLUMode(t *testing.T) {
	cases := []struct {
		in   string
		want model.NLUMode
	}{
		{"rasa", model.ModeRasa},
		{"gemini", model.ModeGemini},
		{"", model.ModeRasa},
		{"chatgpt", model.ModeRasa},
		{"GEMINI", model.ModeGemini},
	}
	for _, tc := range cases {
		if got := model.ParseNLUMode(tc.in); got != tc.want {
			t.Errorf("ParseNLUMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCatalogMembership(t *testing.T) {
	if !model.ValidIntent("contacto_emergencia") {
		t.Error("contacto_emergencia must be a known intent")
	}
	if !model.ValidIntent("nlu_fallback") {
		t.Error("nlu_fallback must be a known intent")
	}
	if model.ValidIntent("comprar_bitcoin") {
		t.Error("unknown intent accepted")
	}

	if !model.ValidEntity("producto") {
		t.Error("producto must be a known entity")
	}
	if model.ValidEntity("color_favorito") {
		t.Error("unknown entity accepted")
	}
}

func TestCatalogsAreCopies(t *testing.T) {
	intents := model.IntentCatalog()
	intents[0] = "mutated"
	if model.IntentCatalog()[0] == "mutated" {
		t.Error("IntentCatalog must return a copy")
	}

	entities := model.EntityCatalog()
	entities[0] = "mutated"
	if model.EntityCatalog()[0] == "mutated" {
		t.Error("EntityCatalog must return a copy")
	}
}
