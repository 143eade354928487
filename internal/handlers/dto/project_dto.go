package dto

import (
	"time"

	"github.com/simplyinvite/showcase-backend/internal/services"
)

// ProjectResponse representa um projeto na API, com os campos
// derivados das avaliações já calculados
type ProjectResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	UserID           string     `json:"userId"`
	AuthorName       *string    `json:"authorName,omitempty"`
	AuthorAvatarURL  *string    `json:"authorAvatarUrl,omitempty"`
	VideoURL         *string    `json:"videoUrl,omitempty"`
	ExternalLink     *string    `json:"externalLink,omitempty"`
	Category         *string    `json:"category,omitempty"`
	SubmissionStatus *string    `json:"submissionStatus,omitempty"`
	SubmittedAt      *time.Time `json:"submittedAt,omitempty"`
	ThumbnailURL     *string    `json:"thumbnailUrl,omitempty"`
	MedalType        string     `json:"medalType"`
	FeedbackCount    int        `json:"feedbackCount"`
	HasFeedback      bool       `json:"hasFeedback"`
}

// ToProjectResponse converte a projeção de projeto para o formato da API
func ToProjectResponse(v *services.ProjectView) ProjectResponse {
	return ProjectResponse{
		ID:               v.Project.ID,
		Title:            v.Project.Title,
		Description:      v.Project.Description,
		UserID:           v.Project.UserID,
		AuthorName:       v.AuthorName,
		AuthorAvatarURL:  v.AuthorAvatarURL,
		VideoURL:         v.Project.VideoURL,
		ExternalLink:     v.Project.ExternalLink,
		Category:         v.Project.Category,
		SubmissionStatus: v.Project.SubmissionStatus,
		SubmittedAt:      v.Project.SubmittedAt,
		ThumbnailURL:     v.Project.ThumbnailURL,
		MedalType:        string(v.Medal),
		FeedbackCount:    v.FeedbackCount,
		HasFeedback:      v.HasFeedback,
	}
}

// ToProjectResponses converte uma lista de projeções
func ToProjectResponses(views []*services.ProjectView) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, ToProjectResponse(v))
	}
	return responses
}
