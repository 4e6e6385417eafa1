package translator

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads one <lang>.toml catalog per supported language into the
// global bundle. English is the fallback language.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range cfg.SupportedLanguages {
		file := filepath.Join(cfg.TranslationFolder, lang+".toml")
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation catalog", zap.String("file", file), zap.Error(err))
		}
	}
}
