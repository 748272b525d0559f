package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordSetAndCompare(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		pepper   string
		compare  string
		expected bool
	}{
		{
			name:     "matching password",
			password: "TestPassword123!",
			pepper:   "pepper",
			compare:  "TestPassword123!",
			expected: true,
		},
		{
			name:     "wrong password",
			password: "TestPassword123!",
			pepper:   "pepper",
			compare:  "WrongPassword123!",
			expected: false,
		},
		{
			name:     "empty compare",
			password: "TestPassword123!",
			pepper:   "pepper",
			compare:  "",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Password

			err := p.set(tc.password, tc.pepper, bcrypt.MinCost)
			assert.NoError(t, err)
			assert.NotEmpty(t, p.hash)

			ok, err := p.compare(tc.compare, tc.pepper)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestPasswordPepperChangesHashInput(t *testing.T) {
	var p Password

	err := p.set("TestPassword123!", "pepper-one", bcrypt.MinCost)
	assert.NoError(t, err)

	// the same plain text with a different pepper must not verify
	ok, err := p.compare("TestPassword123!", "pepper-two")
	assert.NoError(t, err)
	assert.False(t, ok)
}
