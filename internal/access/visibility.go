package access

import (
	"go-healthcare-records/internal/domain/entity"

	"gorm.io/gorm"
)

// Record visibility filters, expressed as gorm scopes so repositories can
// apply them before any listing query runs. Each scope restricts a
// collection to the rows the actor has a relationship to; the fallback for
// a profile-less actor is the empty set.

// denyAll is the default arm of every visibility switch.
func denyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// PatientsVisibleTo restricts the patient collection to the actor's own
// profile.
func PatientsVisibleTo(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.IsPatient() {
			return db.Where("user_id = ?", actor.UserID)
		}
		return denyAll(db)
	}
}

// DoctorsVisibleTo returns the whole doctor collection: the directory is
// globally discoverable by any authenticated user.
func DoctorsVisibleTo(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db
	}
}

// AppointmentsVisibleTo branches on the actor's role: patients see their
// own appointments, doctors the ones addressed to them.
func AppointmentsVisibleTo(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case entity.RolePatient:
			return db.Where("appointments.patient_id = ?", actor.UserID)
		case entity.RoleDoctor:
			return db.Where("appointments.doctor_id = ?", actor.UserID)
		default:
			return denyAll(db)
		}
	}
}

// EMRsVisibleTo mirrors AppointmentsVisibleTo for medical records.
func EMRsVisibleTo(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch actor.Role {
		case entity.RolePatient:
			return db.Where("emrs.patient_id = ?", actor.UserID)
		case entity.RoleDoctor:
			return db.Where("emrs.doctor_id = ?", actor.UserID)
		default:
			return denyAll(db)
		}
	}
}

// EMRChildrenVisibleTo scopes records hanging off an EMR (prescriptions,
// lab results) through the owning record's patient or doctor.
func EMRChildrenVisibleTo(actor Actor, table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		joined := db.Joins("JOIN emrs ON emrs.id = " + table + ".emr_id")
		switch actor.Role {
		case entity.RolePatient:
			return joined.Where("emrs.patient_id = ?", actor.UserID)
		case entity.RoleDoctor:
			return joined.Where("emrs.doctor_id = ?", actor.UserID)
		default:
			return denyAll(db)
		}
	}
}

// MessagesVisibleTo restricts messages to the ones the actor sent or
// received.
func MessagesVisibleTo(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("sender_id = ? OR receiver_id = ?", actor.UserID, actor.UserID)
	}
}

// HealthMetricsVisibleTo restricts metrics to the owning patient. Metrics
// carry no doctor reference, so doctors see none.
func HealthMetricsVisibleTo(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if actor.IsPatient() {
			return db.Where("patient_id = ?", actor.UserID)
		}
		return denyAll(db)
	}
}

// AuditLogsVisibleTo restricts the audit trail to the actor's own entries.
func AuditLogsVisibleTo(actor Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", actor.UserID)
	}
}
