package model

import "strings"

// IntentName is a classified utterance purpose, drawn from the closed catalog below.
type IntentName string

// The intent catalog. The assistant covers three domains (e-commerce, banking,
// health) plus general conversation. Any intent outside this set is invalid
// output from a resolver, never a new intent.
const (
	IntentGreet     IntentName = "greet"
	IntentDespedida IntentName = "despedida"
	IntentAyuda     IntentName = "ayuda"

	// E-commerce
	IntentVerificarStock        IntentName = "verificar_stock"
	IntentConsultarEstadoPedido IntentName = "consultar_estado_pedido"
	IntentRecomendarProducto    IntentName = "recomendar_producto"
	IntentFinalizarCompra       IntentName = "finalizar_compra"
	IntentPagarPedido           IntentName = "pagar_pedido"

	// Banking
	IntentConsultarSaldo            IntentName = "consultar_saldo"
	IntentRealizarTransferencia     IntentName = "realizar_transferencia"
	IntentBloquearTarjeta           IntentName = "bloquear_tarjeta"
	IntentContactarAsesorFinanciero IntentName = "contactar_asesor_financiero"

	// Health
	IntentAgendarCita             IntentName = "agendar_cita"
	IntentConsultarSintoma        IntentName = "consultar_sintoma"
	IntentInformacionMedicamento  IntentName = "informacion_medicamento"
	IntentContactoEmergencia      IntentName = "contacto_emergencia"

	IntentPreguntaGeneral IntentName = "pregunta_general"
	IntentNLUFallback     IntentName = "nlu_fallback"
)

// EntityName is an extracted-information slot name, drawn from the closed catalog below.
type EntityName string

const (
	EntityProducto      EntityName = "producto"
	EntityNumeroPedido  EntityName = "numero_pedido"
	EntityCategoria     EntityName = "categoria"
	EntityInteres       EntityName = "interes"
	EntityTipoCuenta    EntityName = "tipo_cuenta"
	EntityCantidad      EntityName = "cantidad"
	EntityCuentaDestino EntityName = "cuenta_destino"
	EntityTipoTarjeta   EntityName = "tipo_tarjeta"
	EntityEspecialidad  EntityName = "especialidad"
	EntityFechaHora     EntityName = "fecha_hora"
	EntitySintoma       EntityName = "sintoma"
	EntityMedicamento   EntityName = "medicamento"
)

var intentCatalog = []IntentName{
	IntentGreet, IntentDespedida, IntentAyuda,
	IntentVerificarStock, IntentConsultarEstadoPedido, IntentRecomendarProducto,
	IntentFinalizarCompra, IntentPagarPedido,
	IntentConsultarSaldo, IntentRealizarTransferencia, IntentBloquearTarjeta,
	IntentContactarAsesorFinanciero,
	IntentAgendarCita, IntentConsultarSintoma, IntentInformacionMedicamento,
	IntentContactoEmergencia,
	IntentPreguntaGeneral, IntentNLUFallback,
}

var entityCatalog = []EntityName{
	EntityProducto, EntityNumeroPedido, EntityCategoria, EntityInteres,
	EntityTipoCuenta, EntityCantidad, EntityCuentaDestino, EntityTipoTarjeta,
	EntityEspecialidad, EntityFechaHora, EntitySintoma, EntityMedicamento,
}

var intentSet = func() map[IntentName]struct{} {
	m := make(map[IntentName]struct{}, len(intentCatalog))
	for _, in := range intentCatalog {
		m[in] = struct{}{}
	}
	return m
}()

var entitySet = func() map[EntityName]struct{} {
	m := make(map[EntityName]struct{}, len(entityCatalog))
	for _, en := range entityCatalog {
		m[en] = struct{}{}
	}
	return m
}()

// IntentCatalog returns the closed set of valid intent names, in declaration order.
// Callers get a copy so the catalog itself stays immutable.
func IntentCatalog() []IntentName {
	out := make([]IntentName, len(intentCatalog))
	copy(out, intentCatalog)
	return out
}

// EntityCatalog returns the closed set of valid entity names, in declaration order.
func EntityCatalog() []EntityName {
	out := make([]EntityName, len(entityCatalog))
	copy(out, entityCatalog)
	return out
}

// ValidIntent reports whether name belongs to the closed intent catalog.
func ValidIntent(name IntentName) bool {
	_, ok := intentSet[name]
	return ok
}

// ValidEntity reports whether name belongs to the closed entity catalog.
func ValidEntity(name EntityName) bool {
	_, ok := entitySet[name]
	return ok
}

// Entity is one extracted (name, value) pair.
type Entity struct {
	Name  EntityName
	Value string
}

// ResolvedIntent is the output of NLU resolution: one catalog intent plus
// zero or more catalog entities. Built fresh per utterance, never persisted.
type ResolvedIntent struct {
	Intent   IntentName
	Entities []Entity
}

// NLUMode selects the resolution strategy for a single request.
type NLUMode string

const (
	// ModeRasa delegates classification to the dialogue engine's own NLU.
	ModeRasa NLUMode = "rasa"
	// ModeGemini classifies through the generative model.
	ModeGemini NLUMode = "gemini"
)

// ParseNLUMode maps a caller-supplied mode string to an NLUMode.
// Unknown or empty values default to ModeRasa: denying service on an
// unrecognized flag is worse than taking the deterministic path.
func ParseNLUMode(s string) NLUMode {
	if NLUMode(strings.ToLower(s)) == ModeGemini {
		return ModeGemini
	}
	return ModeRasa
}
