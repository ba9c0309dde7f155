package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickCapsAtConfiguredCount(t *testing.T) {
	env := newTestEnv(t, inkRecords(10)...)
	svc := NewFeaturedService(env.catalogService, 6)

	picked, err := svc.Pick()
	require.NoError(t, err)
	assert.Len(t, picked, 6)

	seen := make(map[string]bool)
	for _, record := range picked {
		assert.False(t, seen[record.ID], "duplicate pick %s", record.ID)
		seen[record.ID] = true
	}
}

func TestPickWithSmallCatalog(t *testing.T) {
	env := newTestEnv(t, inkRecords(3)...)
	svc := NewFeaturedService(env.catalogService, 6)

	picked, err := svc.Pick()
	require.NoError(t, err)
	assert.Len(t, picked, 3)
}

func TestPickDoesNotReorderCatalog(t *testing.T) {
	env := newTestEnv(t, inkRecords(8)...)
	svc := NewFeaturedService(env.catalogService, 4)

	for i := 0; i < 10; i++ {
		_, err := svc.Pick()
		require.NoError(t, err)
	}

	c, err := env.catalogService.GetCatalog()
	require.NoError(t, err)
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, inkRecords(8)[i].ID, c.At(i).ID)
	}
}
