package access

import (
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated identity a request acts as. The role tag is
// explicit: a profile-less user is RoleUnassigned and is denied everywhere
// a relationship is required. Profile tables are keyed by the user id, so
// the actor's user id doubles as its patient or doctor reference.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// ActorFor builds an Actor from a loaded user.
func ActorFor(user *entity.User) Actor {
	return Actor{UserID: user.ID, Role: user.Role}
}

// IsPatient reports whether the actor carries a patient profile.
func (a Actor) IsPatient() bool {
	return a.Role == entity.RolePatient
}

// IsDoctor reports whether the actor carries a doctor profile.
func (a Actor) IsDoctor() bool {
	return a.Role == entity.RoleDoctor
}
