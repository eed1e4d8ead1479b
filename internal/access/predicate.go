package access

import "github.com/google/uuid"

// Per-record permission predicates. All of them are pure and deny by
// default: an unmatched case is a refusal, never a grant.

// OwnerOrReadOnly allows reads for anyone and writes only for the owner of
// a profile-like record (patients, doctors).
func OwnerOrReadOnly(actor Actor, ownerID uuid.UUID, write bool) bool {
	if !write {
		return true
	}
	return actor.UserID == ownerID
}

// Owner allows access only to the owner of the record, reads included.
func Owner(actor Actor, ownerID uuid.UUID) bool {
	return actor.UserID == ownerID
}

// DoctorOrReadOnly allows reads for anyone and writes only for actors
// carrying a doctor profile.
func DoctorOrReadOnly(actor Actor, write bool) bool {
	if !write {
		return true
	}
	return actor.IsDoctor()
}

// RelatedPatientOrDoctor allows access when the actor is the patient the
// record belongs to, or the doctor referenced by it. Records without a
// doctor reference pass a nil doctorID and deny every doctor.
func RelatedPatientOrDoctor(actor Actor, patientID uuid.UUID, doctorID *uuid.UUID) bool {
	switch {
	case actor.IsPatient() && actor.UserID == patientID:
		return true
	case actor.IsDoctor() && doctorID != nil && actor.UserID == *doctorID:
		return true
	default:
		return false
	}
}

// Participant allows access when the actor is either end of a two-party
// record such as a message.
func Participant(actor Actor, senderID, receiverID uuid.UUID) bool {
	return actor.UserID == senderID || actor.UserID == receiverID
}
