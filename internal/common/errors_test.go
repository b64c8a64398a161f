package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	assert.ErrorIs(t, ErrEmployeeNotFound, ErrorNotFound)
	assert.ErrorIs(t, ErrLocationNotFound, ErrorNotFound)
	assert.ErrorIs(t, ErrStorageTimeout, ErrInfrastructure)
	assert.ErrorIs(t, ErrConcurrentModification, ErrInfrastructure)
	assert.ErrorIs(t, ErrLocationUnavailable, ErrInfrastructure)
	assert.NotErrorIs(t, ErrDescriptorShape, ErrInfrastructure)
	assert.ErrorIs(t, Validationf("bad %s", "x"), ErrValidation)
}

func TestRejectError_Is(t *testing.T) {
	err := fmt.Errorf("clock in: %w", NewReject(ReasonAlreadyClockedIn, "morning session"))

	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, &RejectError{Reason: ReasonAlreadyClockedIn})
	assert.NotErrorIs(t, err, &RejectError{Reason: ReasonNotYetClockedIn})
	assert.False(t, errors.Is(ErrValidation, ErrRejected))

	r, ok := AsReject(err)
	assert.True(t, ok)
	assert.Equal(t, ReasonAlreadyClockedIn, r.Reason)
	assert.Equal(t, "AlreadyClockedIn: morning session", r.Error())
}

func TestRejectError_NoMessage(t *testing.T) {
	assert.Equal(t, "NotYetClockedIn", (&RejectError{Reason: ReasonNotYetClockedIn}).Error())

	_, ok := AsReject(errors.New("plain"))
	assert.False(t, ok)
}
