package entities

import "strings"

// Role representa o tipo de perfil de um usuário no sistema
type Role string

const (
	RoleTalent  Role = "talent"
	RoleHR      Role = "hr"
	RoleManager Role = "manager"
)

// Is compara roles ignorando maiúsculas/minúsculas.
// O frontend histórico envia variações como "HR" e "Talent".
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// IsKnown verifica se o role é um dos três perfis mapeados
func (r Role) IsKnown() bool {
	return r.Is(RoleTalent) || r.Is(RoleHR) || r.Is(RoleManager)
}

// CanSendInvitations verifica se o perfil pode criar convites (RH ou Gestor)
func (r Role) CanSendInvitations() bool {
	return r.Is(RoleHR) || r.Is(RoleManager)
}
