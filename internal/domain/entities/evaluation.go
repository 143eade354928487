package entities

import "time"

// Evaluation representa a avaliação de um projeto por um profissional.
// EvaluatorID é apenas uma referência por id, sem relação de chave estrangeira.
type Evaluation struct {
	ID          string
	ProjectID   string
	EvaluatorID string
	Comment     string
	Score       int // esperado entre 0 e 10
	EvaluatedAt *time.Time
}

// Medal retorna a medalha derivada da nota desta avaliação
func (e *Evaluation) Medal() Medal {
	return MedalForScore(e.Score)
}
