package services

import (
	"testing"

	"go-westeros/internal/registry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogContents(t *testing.T) {
	s := NewService()

	assert.Len(t, s.ListHouses(), 10)
	assert.Len(t, s.ListCultures(), 4)

	stark, ok := s.GetHouse("stark")
	require.True(t, ok)
	assert.Equal(t, "Stark", stark.Name)
	assert.Equal(t, "Winter is Coming", stark.Motto)
	assert.Equal(t, "Winterfell", stark.Seat)

	nw, ok := s.GetHouse("nightwatch")
	require.True(t, ok)
	assert.Equal(t, "Castle Black", nw.Seat)

	north, ok := s.GetCulture("north")
	require.True(t, ok)
	assert.Equal(t, "First Men", north.Name)
}

func TestGetHouseUnknown(t *testing.T) {
	s := NewService()

	_, ok := s.GetHouse("tully")
	assert.False(t, ok)

	_, ok = s.GetCulture("dothraki")
	assert.False(t, ok)
}

func TestHouseNameFallback(t *testing.T) {
	s := NewService()

	assert.Equal(t, "Lannister", s.HouseName("lannister"))
	assert.Equal(t, "Unknown House", s.HouseName("whitewalker"))
	assert.Equal(t, "Unknown House", s.HouseName(""))
}

func TestFactionForHouse(t *testing.T) {
	tests := []struct {
		name    string
		houseID string
		want    models.Faction
	}{
		{"noble house", "stark", models.FactionNoble},
		{"night's watch", "nightwatch", models.FactionNightwatch},
		{"white walker roster", "whitewalker", models.FactionWhitewalker},
		{"unknown defaults to noble", "tully", models.FactionNoble},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FactionForHouse(tt.houseID))
		})
	}
}
