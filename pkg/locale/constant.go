package locale

const (
	// EN is English.
	EN = "en"
	// FR is French.
	FR = "fr"
	// DE is German.
	DE = "de"
	// ES is Spanish.
	ES = "es"
)

// LangList contains all supported language codes.
var LangList = []string{EN, FR, DE, ES}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN

// Locale is the context key type for the request locale.
type Locale struct{}
