//go:build unix

package inventory

import (
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformOwners_CurrentUser(t *testing.T) {
	current, err := user.Current()
	if err != nil {
		t.Skipf("current user unavailable: %v", err)
	}

	owner, err := platformOwners{}.ResolveOwner(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, current.Username, owner)
}
