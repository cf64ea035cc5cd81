package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatClaim(t *testing.T) {
	tbl := New("abcd")

	require.NoError(t, tbl.Claim("p1", "Ada"))
	assert.True(t, tbl.IsSeated("p1"))

	err := tbl.Claim("p2", "Bob")
	assert.Error(t, err, "seat is single occupancy")

	// Reclaiming your own seat is a reconnect.
	assert.NoError(t, tbl.Claim("p1", "Ada"))

	tbl.Release("p2")
	assert.True(t, tbl.IsSeated("p1"), "release by a non-holder is a no-op")

	tbl.Release("p1")
	assert.False(t, tbl.IsSeated("p1"))
	assert.NoError(t, tbl.Claim("p2", "Bob"))
}

func TestManager(t *testing.T) {
	m := NewManager()
	id := m.Create()
	require.NotEmpty(t, id)
	assert.NotNil(t, m.Get(id))
	assert.Nil(t, m.Get("missing"))
	assert.NotEqual(t, id, m.Create())
}
