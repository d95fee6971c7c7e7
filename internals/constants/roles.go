package constants

// Types d'utilisateur (deux espaces disjoints)
const (
	UserTypeDemandeur = "DEMANDEUR"
	UserTypePersonnel = "PERSONNEL"
)

// Rôles du personnel (un demandeur n'a pas de rôle)
const (
	RoleAdmin       = "ADMIN"
	RoleAgent       = "AGENT"
	RoleChefService = "CHEF_SERVICE"
	RoleConsul      = "CONSUL"
)

// Statuts de compte
const (
	UserStatusActif    = "ACTIF"
	UserStatusInactif  = "INACTIF"
	UserStatusSupprime = "SUPPRIME"
)

// ==========================
// ✅ Groupes de rôles
// ==========================
var (
	AllStaffRoles = []string{RoleAdmin, RoleAgent, RoleChefService, RoleConsul}

	// Rôles autorisés à consulter les rapports financiers
	FinanceRoles = []string{RoleAdmin, RoleConsul}

	// Rôles autorisés à changer le statut d'une demande
	StatusUpdateRoles = []string{RoleAdmin, RoleAgent, RoleChefService, RoleConsul}
)

func IsStaffRole(role string) bool {
	for _, r := range AllStaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
