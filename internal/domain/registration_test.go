package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationType_Valid(t *testing.T) {
	assert.True(t, TypeWorker.Valid())
	assert.True(t, TypeEmployer.Valid())
	assert.True(t, TypeBoth.Valid())
	assert.False(t, RegistrationType("").Valid())
	assert.False(t, RegistrationType("intern").Valid())
}

func TestRegistrationStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to RegistrationStatus
		ok       bool
	}{
		{StatusPending, StatusPending, true},
		{StatusPending, StatusNotified, true},
		{StatusPending, StatusActive, true},
		{StatusNotified, StatusNotified, true},
		{StatusNotified, StatusActive, true},
		{StatusNotified, StatusPending, false},
		{StatusActive, StatusNotified, false},
		{StatusActive, StatusPending, false},
		{StatusActive, StatusActive, true},
		{StatusPending, RegistrationStatus("archived"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestRegistration_Normalize(t *testing.T) {
	reg := &Registration{
		Name:         "  Awa  ",
		Phone:        " 70123456\t",
		Email:        " Awa@Example.COM ",
		Neighborhood: " Gounghin ",
	}
	reg.Normalize()

	assert.Equal(t, "Awa", reg.Name)
	assert.Equal(t, "70123456", reg.Phone)
	assert.Equal(t, "awa@example.com", reg.Email)
	assert.Equal(t, "Gounghin", reg.Neighborhood)
}

func TestRegistration_NeighborhoodOrDefault(t *testing.T) {
	reg := &Registration{}
	assert.Equal(t, DefaultNeighborhood, reg.NeighborhoodOrDefault())

	reg.Neighborhood = "Tampouy"
	assert.Equal(t, "Tampouy", reg.NeighborhoodOrDefault())
}

func TestDuplicateError_Unwrap(t *testing.T) {
	err := &DuplicateError{Name: "Moussa"}
	assert.ErrorIs(t, err, ErrDuplicatePhone)
}
