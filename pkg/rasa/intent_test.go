package rasa_test

import (
	"reflect"
	"testing"

	"hybrid-nlu-gateway/pkg/rasa"
)

func TestEncodeIntentMessage(t *testing.T) {
	t.Run("with entities", func(t *testing.T) {
		msg, err := rasa.EncodeIntentMessage("verificar_stock", map[string]string{"producto": "RTX 4080"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `/verificar_stock{"producto":"RTX 4080"}`
		if msg != want {
			t.Errorf("got %q, want %q", msg, want)
		}
	})

	t.Run("no entities omits braces", func(t *testing.T) {
		msg, err := rasa.EncodeIntentMessage("contacto_emergencia", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "/contacto_emergencia" {
			t.Errorf("got %q, want %q", msg, "/contacto_emergencia")
		}
	})

	t.Run("deterministic key order", func(t *testing.T) {
		entities := map[string]string{"cantidad": "500", "cuenta_destino": "123456"}
		first, err := rasa.EncodeIntentMessage("realizar_transferencia", entities)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `/realizar_transferencia{"cantidad":"500","cuenta_destino":"123456"}`
		if first != want {
			t.Errorf("got %q, want %q", first, want)
		}
	})

	t.Run("empty intent rejected", func(t *testing.T) {
		if _, err := rasa.EncodeIntentMessage("", nil); err == nil {
			t.Error("expected error for empty intent")
		}
	})
}

func TestDecodeIntentMessage(t *testing.T) {
	t.Run("round trip preserves the entity set", func(t *testing.T) {
		entities := map[string]string{
			"producto": "RTX 4080",
			"cantidad": "2",
		}
		msg, err := rasa.EncodeIntentMessage("verificar_stock", entities)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		intent, decoded, err := rasa.DecodeIntentMessage(msg)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if intent != "verificar_stock" {
			t.Errorf("intent = %q, want verificar_stock", intent)
		}
		if !reflect.DeepEqual(decoded, entities) {
			t.Errorf("entities = %v, want %v", decoded, entities)
		}
	})

	t.Run("round trip without entities", func(t *testing.T) {
		msg, _ := rasa.EncodeIntentMessage("greet", nil)
		intent, decoded, err := rasa.DecodeIntentMessage(msg)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if intent != "greet" || decoded != nil {
			t.Errorf("got (%q, %v), want (greet, nil)", intent, decoded)
		}
	})

	t.Run("missing sentinel rejected", func(t *testing.T) {
		if _, _, err := rasa.DecodeIntentMessage("greet"); err == nil {
			t.Error("expected error for missing sentinel")
		}
	})

	t.Run("empty intent name rejected", func(t *testing.T) {
		if _, _, err := rasa.DecodeIntentMessage(`/{"a":"b"}`); err == nil {
			t.Error("expected error for missing intent name")
		}
	})

	t.Run("bad entity object rejected", func(t *testing.T) {
		if _, _, err := rasa.DecodeIntentMessage(`/greet{not json`); err == nil {
			t.Error("expected error for malformed entity object")
		}
	})
}
