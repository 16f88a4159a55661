package pgerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestInvalidViolationsKeepsSentinel(t *testing.T) {
	e := NewInvalidViolations([]string{"ageMin"})

	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.NotNil(t, e.Extras)
	assert.Nil(t, ErrInvalidReq.Extras, "sentinel must not be mutated")
	assert.Equal(t, "INVALID_REQUEST: invalid request: some or all request parameters are invalid", e.Error())
}
