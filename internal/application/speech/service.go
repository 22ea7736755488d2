// Package speech serves parliamentary speech records and on-demand
// translations of them.
package speech

import (
	"context"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/translate"
)

type speechStore interface {
	Get(ctx context.Context, speechID string) (*domain.Speech, error)
	List(ctx context.Context, f domain.SpeechFilter) ([]domain.Speech, error)
}

type Service struct {
	speeches   speechStore
	translator translate.Translator
}

func NewService(speeches speechStore, translator translate.Translator) *Service {
	return &Service{speeches: speeches, translator: translator}
}

func (s *Service) Get(ctx context.Context, speechID string) (*domain.Speech, error) {
	return s.speeches.Get(ctx, speechID)
}

func (s *Service) List(ctx context.Context, f domain.SpeechFilter) ([]domain.Speech, error) {
	return s.speeches.List(ctx, f)
}

// Translation is a speech rendered into a requested language.
type Translation struct {
	SpeechID string `json:"speech_id"`
	Language string `json:"language"`
	Content  string `json:"content"`
}

// Translate renders a stored speech into the target language.
func (s *Service) Translate(ctx context.Context, speechID, targetLanguage string) (*Translation, error) {
	sp, err := s.speeches.Get(ctx, speechID)
	if err != nil {
		return nil, err
	}
	content, err := s.translator.Translate(ctx, sp.Title, targetLanguage)
	if err != nil {
		return nil, err
	}
	return &Translation{SpeechID: sp.SpeechID, Language: targetLanguage, Content: content}, nil
}
