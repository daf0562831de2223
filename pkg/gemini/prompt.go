package gemini

import "strings"

// IntentPromptHeader is the system instruction for intent classification.
// The contract is strict: the model gets the closed catalogs and must answer
// with a single JSON object, nothing else.
const IntentPromptHeader = `Eres un clasificador de intenciones (NLU) para un asistente conversacional de e-commerce, banca y salud.

REGLAS (en orden de prioridad):
1. EMERGENCIA: si el mensaje menciona síntomas que amenazan la vida o lenguaje de emergencia (infarto, no puedo respirar, derrame, sobredosis, etc.), la intención DEBE ser "contacto_emergencia", por encima de cualquier otra señal.
2. La respuesta DEBE ser un único objeto JSON con exactamente dos campos: "intent" (uno de los valores del catálogo de intenciones) y "entities" (lista, posiblemente vacía, de objetos {"entity": ..., "value": ...} con nombres del catálogo de entidades).
3. Si ninguna intención del catálogo encaja con confianza (y no aplica la regla 1), responde con la intención "nlu_fallback".
4. La respuesta NO debe contener nada más que el objeto JSON: sin prosa, sin markdown, sin bloques de código.

FORMATO DE RESPUESTA:
{"intent": "<intencion>", "entities": [{"entity": "<entidad>", "value": "<valor>"}]}

EJEMPLO:
Mensaje: "¿hay stock de la RTX 4080?"
Respuesta: {"intent": "verificar_stock", "entities": [{"entity": "producto", "value": "RTX 4080"}]}`

// BuildIntentPrompt builds the full classification prompt from the closed
// catalogs and the raw user text.
func BuildIntentPrompt(intents, entities []string, text string) string {
	var sb strings.Builder
	sb.WriteString(IntentPromptHeader)
	sb.WriteString("\n\nCATÁLOGO DE INTENCIONES:\n")
	sb.WriteString(strings.Join(intents, ", "))
	sb.WriteString("\n\nCATÁLOGO DE ENTIDADES:\n")
	sb.WriteString(strings.Join(entities, ", "))
	sb.WriteString("\n\nMensaje del usuario: \"")
	sb.WriteString(text)
	sb.WriteString("\"\nRespuesta:")
	return sb.String()
}
