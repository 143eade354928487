package services

import (
	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
)

// TalentProfile é a projeção de perfil para usuários com role talent
type TalentProfile struct {
	ID            string
	FullName      string
	Email         string
	AvatarURL     *string
	City          *string
	State         *string
	Bio           *string
	LinkedinURL   *string
	GithubURL     *string
	Age           *int // derivado da data de nascimento
	InterestAreas []string
	MainSkills    []string
}

// StaffProfile é a projeção de perfil para usuários de RH e Gestão
type StaffProfile struct {
	ID        string
	FullName  string
	Email     string
	AvatarURL *string
	JobTitle  *string
	Company   *entities.Company // nil quando o usuário não tem vínculo
}

// ProfileProjection é o resultado polimórfico da projeção de perfil:
// exatamente um dos campos Talent/Staff é preenchido, conforme o Role
type ProfileProjection struct {
	Role   entities.Role
	Talent *TalentProfile
	Staff  *StaffProfile
}

// ProjectView é a projeção de um projeto com os campos derivados
// das avaliações e os dados denormalizados do autor
type ProjectView struct {
	Project         *entities.Project
	AuthorName      *string // ausente quando o autor não foi encontrado
	AuthorAvatarURL *string
	FeedbackCount   int
	HasFeedback     bool
	Medal           entities.Medal // da maior nota entre as avaliações
}

// EvaluationView é a projeção de uma avaliação individual
type EvaluationView struct {
	Evaluation         *entities.Evaluation
	ProjectTitle       string
	EvaluatorName      *string
	EvaluatorAvatarURL *string
	// EvaluatorTitle compõe cargo e empresa ("<cargo> @ <empresa>").
	// Vazio quando o avaliador não tem cargo nem empresa; a camada HTTP
	// substitui pelo rótulo genérico localizado.
	EvaluatorTitle string
	Medal          entities.Medal
}

// InvitationView é a projeção de um convite com remetente, destinatário
// e projeto denormalizados
type InvitationView struct {
	Invitation          *entities.Invitation
	SenderName          *string
	SenderAvatarURL     *string
	SenderJobTitle      *string
	SenderCompanyName   *string
	RecipientName       *string
	RecipientAvatarURL  *string
	ProjectTitle        *string
	ProjectThumbnailURL *string
}
