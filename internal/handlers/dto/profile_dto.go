package dto

import (
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// TalentProfileResponse é o perfil de um talento.
// Nunca inclui campos de empresa.
type TalentProfileResponse struct {
	ID            string   `json:"id"`
	FullName      string   `json:"fullName"`
	Email         string   `json:"email"`
	AvatarURL     *string  `json:"avatarUrl,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
	Bio           *string  `json:"bio,omitempty"`
	LinkedinURL   *string  `json:"linkedinUrl,omitempty"`
	GithubURL     *string  `json:"githubUrl,omitempty"`
	Age           *int     `json:"age,omitempty"`
	InterestAreas []string `json:"interestAreas"`
	MainSkills    []string `json:"mainSkills"`
}

// StaffProfileResponse é o perfil de um contato de RH ou gestor.
// Nunca inclui idade nem listas de habilidades.
type StaffProfileResponse struct {
	ID                 string  `json:"id"`
	FullName           string  `json:"fullName"`
	Email              string  `json:"email"`
	AvatarURL          *string `json:"avatarUrl,omitempty"`
	JobTitle           *string `json:"jobTitle,omitempty"`
	CompanyID          *string `json:"companyId,omitempty"`
	CompanyName        *string `json:"companyName,omitempty"`
	CompanyTaxID       *string `json:"companyTaxId,omitempty"`
	CompanySector      *string `json:"companySector,omitempty"`
	CompanyLocation    *string `json:"companyLocation,omitempty"`
	CompanyDescription *string `json:"companyDescription,omitempty"`
}

// ProfileResponse envolve o formato específico do role com um discriminador
type ProfileResponse struct {
	Role    string `json:"role"`
	Profile any    `json:"profile"`
}

// ToProfileResponse converte a projeção de perfil para o formato da API
func ToProfileResponse(p *services.ProfileProjection) ProfileResponse {
	if p.Talent != nil {
		return ProfileResponse{
			Role: string(p.Role),
			Profile: TalentProfileResponse{
				ID:            p.Talent.ID,
				FullName:      p.Talent.FullName,
				Email:         p.Talent.Email,
				AvatarURL:     p.Talent.AvatarURL,
				City:          p.Talent.City,
				State:         p.Talent.State,
				Bio:           p.Talent.Bio,
				LinkedinURL:   p.Talent.LinkedinURL,
				GithubURL:     p.Talent.GithubURL,
				Age:           p.Talent.Age,
				InterestAreas: p.Talent.InterestAreas,
				MainSkills:    p.Talent.MainSkills,
			},
		}
	}

	staff := StaffProfileResponse{
		ID:        p.Staff.ID,
		FullName:  p.Staff.FullName,
		Email:     p.Staff.Email,
		AvatarURL: p.Staff.AvatarURL,
		JobTitle:  p.Staff.JobTitle,
	}
	if company := p.Staff.Company; company != nil {
		staff.CompanyID = &company.ID
		staff.CompanyName = &company.Name
		staff.CompanyTaxID = &company.TaxID
		staff.CompanySector = company.Sector
		staff.CompanyLocation = company.Location
		staff.CompanyDescription = company.Description
	}
	return ProfileResponse{Role: string(p.Role), Profile: staff}
}
