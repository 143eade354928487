package dto

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/services"
)

// EvaluationResponse representa uma avaliação na API
type EvaluationResponse struct {
	ID                 string     `json:"id"`
	ProjectID          string     `json:"projectId"`
	ProjectTitle       string     `json:"projectTitle"`
	Comment            string     `json:"comment"`
	Score              int        `json:"score"`
	MedalType          string     `json:"medalType"`
	EvaluatedAt        *time.Time `json:"evaluatedAt,omitempty"`
	EvaluatorName      *string    `json:"evaluatorName,omitempty"`
	EvaluatorAvatarURL *string    `json:"evaluatorAvatarUrl,omitempty"`
	EvaluatorTitle     string     `json:"evaluatorTitle"`
}

// ToEvaluationResponse converte a projeção de avaliação para o formato
// da API. Quando o avaliador não tem cargo nem empresa, o rótulo recebe
// o texto genérico localizado.
func ToEvaluationResponse(c *gin.Context, v *services.EvaluationView) EvaluationResponse {
	title := v.EvaluatorTitle
	if title == "" {
		title = T(c, "evaluation.reviewer_fallback")
	}

	return EvaluationResponse{
		ID:                 v.Evaluation.ID,
		ProjectID:          v.Evaluation.ProjectID,
		ProjectTitle:       v.ProjectTitle,
		Comment:            v.Evaluation.Comment,
		Score:              v.Evaluation.Score,
		MedalType:          string(v.Medal),
		EvaluatedAt:        v.Evaluation.EvaluatedAt,
		EvaluatorName:      v.EvaluatorName,
		EvaluatorAvatarURL: v.EvaluatorAvatarURL,
		EvaluatorTitle:     title,
	}
}

// ToEvaluationResponses converte uma lista de projeções
func ToEvaluationResponses(c *gin.Context, views []*services.EvaluationView) []EvaluationResponse {
	responses := make([]EvaluationResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, ToEvaluationResponse(c, v))
	}
	return responses
}
