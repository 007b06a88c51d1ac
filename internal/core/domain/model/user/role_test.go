package user_test

import (
	"testing"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input    string
		expected user.Role
	}{
		{"customer", user.Customer},
		{"Worker", user.Worker},
		{" ADMIN ", user.Admin},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := user.ParseRole(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "superuser"} {
			role, err := user.ParseRole(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
			assert.Equal(t, user.UnknownRole, role)
		}
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "customer", user.Customer.String())
	assert.Equal(t, "worker", user.Worker.String())
	assert.Equal(t, "admin", user.Admin.String())
	assert.Equal(t, "unknown", user.Role(42).String())
}

func TestRole_HasProfile(t *testing.T) {
	assert.True(t, user.Customer.HasProfile())
	assert.True(t, user.Worker.HasProfile())
	assert.False(t, user.Admin.HasProfile())
}
