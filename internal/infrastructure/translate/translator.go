package translate

import (
	"context"
	"fmt"
)

// Translator renders speech text into a target language. The portal treats
// translation as an external collaborator; only its contract lives here.
type Translator interface {
	Translate(ctx context.Context, title, targetLanguage string) (string, error)
}

// StaticTranslator is the placeholder channel: it returns a formatted
// notice instead of calling a real translation service.
type StaticTranslator struct{}

func NewStaticTranslator() *StaticTranslator { return &StaticTranslator{} }

func (t *StaticTranslator) Translate(_ context.Context, title, targetLanguage string) (string, error) {
	return fmt.Sprintf("Translated content of speech %q in %s", title, targetLanguage), nil
}
