package locale

// Supported site languages
const (
	EN = "en" // English
	ZH = "zh" // Chinese
	ES = "es" // Spanish
	AR = "ar" // Arabic
)

// DefaultLang is the default language used when no valid locale is provided.
const DefaultLang = EN
