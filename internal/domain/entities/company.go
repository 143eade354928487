package entities

import "errors"

// Company representa uma empresa referenciada por usuários de RH/Gestão
type Company struct {
	ID          string
	Name        string
	TaxID       string // CNPJ
	Sector      *string
	Location    *string
	Description *string
}

// Validate valida regras de negócio da entidade Company
func (c *Company) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.TaxID == "" {
		return errors.New("tax id is required")
	}
	return nil
}
