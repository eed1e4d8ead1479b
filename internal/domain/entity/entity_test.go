package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentCancel(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusRequested}

	assert.False(t, a.IsCancelled())
	a.Cancel()
	assert.True(t, a.IsCancelled())
	assert.Equal(t, AppointmentStatusCancelled, a.Status)
}

func TestEMRAuthoredBy(t *testing.T) {
	doctorID := uuid.New()

	withAuthor := &EMR{DoctorID: &doctorID}
	assert.True(t, withAuthor.AuthoredBy(doctorID))
	assert.False(t, withAuthor.AuthoredBy(uuid.New()))

	orphaned := &EMR{}
	assert.False(t, orphaned.AuthoredBy(doctorID))
}

func TestUserHasProfile(t *testing.T) {
	assert.False(t, (&User{Role: RoleUnassigned}).HasProfile())
	assert.True(t, (&User{Role: RolePatient}).HasProfile())
	assert.True(t, (&User{Role: RoleDoctor}).HasProfile())
}

func TestJSONValueScanRoundTrip(t *testing.T) {
	in := JSON{"entity": "emr", "entity_id": uuid.New().String()}

	value, err := in.Value()
	require.NoError(t, err)

	var out JSON
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in["entity"], out["entity"])
	assert.Equal(t, in["entity_id"], out["entity_id"])
}

func TestJSONValueEmpty(t *testing.T) {
	value, err := JSON(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestJSONScanNil(t *testing.T) {
	var out JSON
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}

func TestJSONScanUnsupportedType(t *testing.T) {
	var out JSON
	assert.Error(t, out.Scan(42))
}
