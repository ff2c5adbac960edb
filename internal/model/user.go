package model

// Role identifies what kind of community member a user is
type Role string

const (
	RoleAmateurPlayer      Role = "jogadora_amadora"
	RoleProfessionalPlayer Role = "jogadora_profissional"
	RoleScout              Role = "olheiro"
	RoleFan                Role = "torcedor"
)

// Roles lists every role accepted at registration, in display order
var Roles = []Role{RoleAmateurPlayer, RoleProfessionalPlayer, RoleScout, RoleFan}

// Label returns the human readable name of the role
func (r Role) Label() string {
	switch r {
	case RoleAmateurPlayer:
		return "Jogadora Amadora"
	case RoleProfessionalPlayer:
		return "Jogadora Profissional"
	case RoleScout:
		return "Olheiro / Scout"
	case RoleFan:
		return "Torcedor / Fã"
	default:
		return string(r)
	}
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// IsPlayer reports whether the role belongs to a player (amateur or professional)
func (r Role) IsPlayer() bool {
	return r == RoleAmateurPlayer || r == RoleProfessionalPlayer
}

// User is the profile kept alongside the session token
type User struct {
	Email string `json:"email"`
	Name  string `json:"nome"`
	Role  Role   `json:"role"`
}

// DisplayName returns the user's name, or a neutral default when unset
func (u User) DisplayName() string {
	if u.Name == "" {
		return "Usuária"
	}
	return u.Name
}
