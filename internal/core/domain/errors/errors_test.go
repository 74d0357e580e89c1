package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilArgumentError(t *testing.T) {
	err := NewNilArgumentError("reminders")

	assert.EqualError(t, err, "argument 'reminders' must not be nil")
}
