package domain

import "time"

const (
	HouseLokSabha   = "Lok Sabha"
	HouseRajyaSabha = "Rajya Sabha"
)

// Speech is a parliamentary speech record, translatable on demand.
type Speech struct {
	SpeechID         string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	OriginalLanguage string    `json:"original_language"`
	SpeakerID        string    `json:"speaker_id"`
	Date             time.Time `json:"date"`
	House            string    `json:"house"` // Lok Sabha | Rajya Sabha
}

type SpeechFilter struct {
	House     string
	SpeakerID string
	Language  string
}

func (f SpeechFilter) Matches(s *Speech) bool {
	if f.House != "" && s.House != f.House {
		return false
	}
	if f.SpeakerID != "" && s.SpeakerID != f.SpeakerID {
		return false
	}
	if f.Language != "" && s.OriginalLanguage != f.Language {
		return false
	}
	return true
}
