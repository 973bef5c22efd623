package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VeloStudio-SeatingService/internal/config"
)

func TestMapping_ForStand(t *testing.T) {
	mapping := NewMapping([]config.AccountConfig{
		{StandID: 1, Identifier: "studio-01", Email: "a@example.com", Password: "pw", BaseURL: "https://velo.example.com", DisplayName: "Stand 01"},
		{StandID: 2, Identifier: "studio-02", Email: "b@example.com", Password: "pw", BaseURL: "https://velo.example.com"},
	})

	require.Equal(t, 2, mapping.Size())

	acc, ok := mapping.ForStand(1)
	require.True(t, ok)
	assert.Equal(t, "studio-01", acc.Identifier)
	assert.Equal(t, "a@example.com", acc.Email)
	assert.Equal(t, "Stand 01", acc.DisplayName)

	_, ok = mapping.ForStand(99)
	assert.False(t, ok)
}

func TestMapping_Empty(t *testing.T) {
	mapping := NewMapping(nil)
	assert.Zero(t, mapping.Size())

	_, ok := mapping.ForStand(1)
	assert.False(t, ok)
}
