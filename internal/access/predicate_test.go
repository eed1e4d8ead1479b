package access

import (
	"testing"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func patientActor(id uuid.UUID) Actor {
	return Actor{UserID: id, Role: entity.RolePatient}
}

func doctorActor(id uuid.UUID) Actor {
	return Actor{UserID: id, Role: entity.RoleDoctor}
}

func unassignedActor(id uuid.UUID) Actor {
	return Actor{UserID: id, Role: entity.RoleUnassigned}
}

func TestOwnerOrReadOnly(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.True(t, OwnerOrReadOnly(patientActor(stranger), owner, false), "reads are open")
	assert.True(t, OwnerOrReadOnly(patientActor(owner), owner, true))
	assert.False(t, OwnerOrReadOnly(patientActor(stranger), owner, true))
	assert.False(t, OwnerOrReadOnly(unassignedActor(stranger), owner, true))
}

func TestOwner(t *testing.T) {
	owner := uuid.New()

	assert.True(t, Owner(patientActor(owner), owner))
	assert.False(t, Owner(patientActor(uuid.New()), owner))
}

func TestDoctorOrReadOnly(t *testing.T) {
	id := uuid.New()

	assert.True(t, DoctorOrReadOnly(patientActor(id), false), "reads are open")
	assert.True(t, DoctorOrReadOnly(doctorActor(id), true))
	assert.False(t, DoctorOrReadOnly(patientActor(id), true))
	assert.False(t, DoctorOrReadOnly(unassignedActor(id), true))
}

func TestRelatedPatientOrDoctor(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	tests := []struct {
		name     string
		actor    Actor
		doctorID *uuid.UUID
		want     bool
	}{
		{"related patient", patientActor(patientID), &doctorID, true},
		{"authoring doctor", doctorActor(doctorID), &doctorID, true},
		{"unrelated patient", patientActor(uuid.New()), &doctorID, false},
		{"unrelated doctor", doctorActor(uuid.New()), &doctorID, false},
		{"doctor on record without author", doctorActor(doctorID), nil, false},
		{"unassigned user with matching id", unassignedActor(patientID), &doctorID, false},
		{"doctor whose id matches the patient", doctorActor(patientID), &doctorID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelatedPatientOrDoctor(tt.actor, patientID, tt.doctorID))
		})
	}
}

func TestParticipant(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()

	assert.True(t, Participant(patientActor(sender), sender, receiver))
	assert.True(t, Participant(doctorActor(receiver), sender, receiver))
	assert.False(t, Participant(patientActor(uuid.New()), sender, receiver))
}

func TestActorFor(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}

	actor := ActorFor(user)
	assert.Equal(t, user.ID, actor.UserID)
	assert.True(t, actor.IsDoctor())
	assert.False(t, actor.IsPatient())
}
