package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	require.True(t, RolePassenger.Valid())
	require.True(t, RoleDriver.Valid())
	require.False(t, Role("passenger").Valid())
	require.False(t, Role("ADMIN").Valid())
	require.False(t, Role("").Valid())
}
