package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBiddable(t *testing.T) {
	assert.True(t, IsBiddable(Open))
	assert.True(t, IsBiddable(Pending))
	assert.False(t, IsBiddable(InProgress))
	assert.False(t, IsBiddable(Completed))
	assert.False(t, IsBiddable("DRAFT"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleBuyer))
	assert.True(t, IsValidRole(RoleSeller))
	assert.False(t, IsValidRole("ADMIN"))
	assert.False(t, IsValidRole("buyer"))
}
