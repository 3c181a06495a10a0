// Package i18n holds the label bundles the dashboard API serves to the
// UI. The catalog is an explicit injected object with a configured
// default language, not process-wide mutable state.
package i18n

import "github.com/mgdov/eco-place/internal/model"

// Language is a supported UI language.
type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
	LangAZ Language = "az"
	LangKK Language = "kk"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LangRU, LangEN, LangAZ, LangKK}

// Label is a display name plus its UI icon.
type Label struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// Bundle is everything the UI needs to render one language.
type Bundle struct {
	Language       Language                      `json:"language"`
	PollutionTypes map[model.PollutionType]Label `json:"pollutionTypes"`
	Sources        map[model.ReportSource]Label  `json:"sources"`
	Statuses       map[model.ReportStatus]string `json:"statuses"`
	UI             map[string]string             `json:"ui"`
}

// Catalog resolves languages to bundles.
type Catalog struct {
	def Language
}

// NewCatalog creates a catalog with the given default language. An
// unsupported default falls back to Russian, the original deployment's
// primary language.
func NewCatalog(def Language) *Catalog {
	if _, ok := bundles[def]; !ok {
		def = LangRU
	}
	return &Catalog{def: def}
}

// Default returns the configured default language.
func (c *Catalog) Default() Language {
	return c.def
}

// For returns the bundle for lang, falling back to the default when the
// language is unknown or empty.
func (c *Catalog) For(lang string) Bundle {
	if b, ok := bundles[Language(lang)]; ok {
		return b
	}
	return bundles[c.def]
}

// Icons are shared across languages.
var pollutionIcons = map[model.PollutionType]string{
	model.PollutionBioWaste:   "🦭",
	model.PollutionPlastic:    "🥤",
	model.PollutionGlass:      "🍾",
	model.PollutionOil:        "🛢️",
	model.PollutionHumanTrash: "🗑️",
	model.PollutionSeaweed:    "🌊",
	model.PollutionOther:      "❓",
}

var sourceIcons = map[model.ReportSource]string{
	model.SourceMobileApp:   "📱",
	model.SourceTelegramBot: "✈️",
}

func typeLabels(texts map[model.PollutionType]string) map[model.PollutionType]Label {
	out := make(map[model.PollutionType]Label, len(texts))
	for k, v := range texts {
		out[k] = Label{Text: v, Icon: pollutionIcons[k]}
	}
	return out
}

func sourceLabels(texts map[model.ReportSource]string) map[model.ReportSource]Label {
	out := make(map[model.ReportSource]Label, len(texts))
	for k, v := range texts {
		out[k] = Label{Text: v, Icon: sourceIcons[k]}
	}
	return out
}
