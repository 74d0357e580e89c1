package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
	assert.Equal("bar", optionalString.ValueOr("bar"))
	assert.Nil(optionalString.Pointer())
}

func TestOptionalString(t *testing.T) {
	cases := []struct {
		raw      string
		expected Optional[string]
	}{
		{raw: "", expected: Optional[string]{}},
		{raw: "   ", expected: Optional[string]{}},
		{raw: "Main Beach", expected: NewOptional("Main Beach", true)},
		{raw: " Main Beach ", expected: NewOptional("Main Beach", true)},
	}

	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			require.Equal(t, testcase.expected, OptionalString(testcase.raw))
		})
	}
}

func TestOptionalFromPointer(t *testing.T) {
	assert := require.New(t)

	value := "Jane"
	assert.Equal(NewOptional("Jane", true), OptionalFromPointer(&value))
	assert.False(OptionalFromPointer[string](nil).IsPresent)
}

func TestNewEmail(t *testing.T) {
	require.Equal(t, Email("jane@example.com"), NewEmail(" Jane@Example.COM "))
}
