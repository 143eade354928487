package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/simplyinvite/showcase-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema (talento, contato de RH ou gestor)
type User struct {
	ID           string
	Email        valueobjects.Email
	PasswordHash string
	FullName     string
	Role         Role
	AvatarURL    *string
	Phone        *string
	City         *string
	State        *string
	Bio          *string
	LinkedinURL  *string
	GithubURL    *string

	// Campos específicos de talento
	BirthDate     *time.Time
	InterestAreas string // texto delimitado por vírgula, ex: "Web,IA,Mobile"
	MainSkills    string // texto delimitado por vírgula, ex: "React,Go,Python"

	// Campos específicos de RH/Gestor
	JobTitle  *string
	CompanyID *string

	OnboardingComplete bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Age calcula a idade em anos completos na data de referência
func (u *User) Age(now time.Time) *int {
	if u.BirthDate == nil {
		return nil
	}
	b := *u.BirthDate
	years := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		years--
	}
	return &years
}

// InterestAreaList retorna as áreas de interesse como lista.
// Campo vazio vira lista vazia, nunca nil com um item em branco.
func (u *User) InterestAreaList() []string {
	return splitDelimited(u.InterestAreas)
}

// MainSkillList retorna as habilidades principais como lista
func (u *User) MainSkillList() []string {
	return splitDelimited(u.MainSkills)
}

// splitDelimited divide texto separado por vírgula em lista, aparando espaços
func splitDelimited(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.FullName == "" {
		return errors.New("full name is required")
	}

	if len(u.FullName) < 2 {
		return errors.New("full name must be at least 2 characters")
	}

	if !u.Role.IsKnown() {
		return errors.New("invalid role")
	}

	return nil
}
