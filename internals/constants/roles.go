package constants

import "fmt"

// Papéis reconhecidos pelo portal
const (
	RoleSuperAdmin  = "super_admin"
	RoleAdmin       = "admin"
	RoleGestor      = "gestor"
	RoleParecerista = "parecerista"
	RoleProponente  = "proponente"
)

// Template de mensagens de erro por papel
const (
	ErrOnlyGestaoCanAccess      = "❌ Apenas admin, gestor ou super_admin podem acessar %s."
	ErrOnlyPareceristaCanAccess = "❌ Apenas pareceristas podem acessar %s."
	ErrOnlyProponenteCanAccess  = "❌ Apenas proponentes podem acessar %s."
)

func RoleErrorGestao(feature string) string {
	return fmt.Sprintf(ErrOnlyGestaoCanAccess, feature)
}

func RoleErrorParecerista(feature string) string {
	return fmt.Sprintf(ErrOnlyPareceristaCanAccess, feature)
}

func RoleErrorProponente(feature string) string {
	return fmt.Sprintf(ErrOnlyProponenteCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleGestor,
		RoleParecerista,
		RoleProponente,
	}

	// Único ponto que define quem pode mutar o estado de fase de um edital.
	GestaoEditais = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleGestor,
	}

	PareceristaOnly = []string{
		RoleParecerista,
	}

	ProponenteOnly = []string{
		RoleProponente,
	}
)
