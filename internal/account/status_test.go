package account_test

import (
	"testing"

	"github.com/mfarouk/teller/internal/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  account.Status
		ok    bool
	}{
		{"Verified", account.StatusVerified, true},
		{"verified", account.StatusVerified, true},
		{"SUSPENDED", account.StatusSuspended, true},
		{" Closed ", account.StatusClosed, true},
		{"", "", false},
		{"Frozen", "", false},
		{"Verify", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			status, err := account.ParseStatus(tc.input)
			if !tc.ok {
				assert.ErrorIs(t, err, account.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}
}

func TestStatusValid(t *testing.T) {
	t.Parallel()

	for _, status := range account.Statuses() {
		assert.True(t, status.Valid(), status)
	}
	assert.False(t, account.Status("Frozen").Valid())
	assert.False(t, account.Status("").Valid())
}
