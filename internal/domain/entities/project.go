package entities

import "time"

// Project representa um projeto submetido por um talento
type Project struct {
	ID               string
	Title            string
	Description      string
	UserID           string // autor
	VideoURL         *string
	ExternalLink     *string
	Category         *string
	SubmissionStatus *string // ex: "Pendente", "Em Avaliação", "Avaliado"
	SubmittedAt      *time.Time
	ThumbnailURL     *string
}
