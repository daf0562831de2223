package usecase

// Log prefixes
const (
	LogPrefixDispatch = "internal.chat.Dispatch"
)

// User-facing messages. The gateway never returns an empty reply list:
// total failure degrades to the apology, a generative-path failure is
// announced with the fallback notice.
const (
	MsgApology = "Lo siento, no puedo conectarme con el asistente en este momento. Por favor, inténtalo más tarde."

	MsgFallbackNotice = "Aviso: el clasificador generativo no está disponible en este momento; tu mensaje fue procesado por el clasificador estándar."
)
