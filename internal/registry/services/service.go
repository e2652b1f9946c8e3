package services

import (
	"go-westeros/internal/registry/models"
)

// Service exposes the static house/culture catalog. Pure lookup, no state.
type Service struct {
	houses   []models.House
	cultures []models.Culture
	houseIdx map[string]int
	cultIdx  map[string]int
}

// NewService builds the catalog indexes once at startup.
func NewService() *Service {
	s := &Service{
		houses:   houseCatalog,
		cultures: cultureCatalog,
		houseIdx: make(map[string]int, len(houseCatalog)),
		cultIdx:  make(map[string]int, len(cultureCatalog)),
	}
	for i, h := range s.houses {
		s.houseIdx[h.ID] = i
	}
	for i, c := range s.cultures {
		s.cultIdx[c.ID] = i
	}
	return s
}

// GetHouse returns the house for an id. Missing ids yield absence, never
// an error; callers supply their own fallback.
func (s *Service) GetHouse(id string) (models.House, bool) {
	i, ok := s.houseIdx[id]
	if !ok {
		return models.House{}, false
	}
	return s.houses[i], true
}

// GetCulture returns the culture for an id.
func (s *Service) GetCulture(id string) (models.Culture, bool) {
	i, ok := s.cultIdx[id]
	if !ok {
		return models.Culture{}, false
	}
	return s.cultures[i], true
}

// ListHouses returns the full playable house catalog.
func (s *Service) ListHouses() []models.House {
	return s.houses
}

// ListCultures returns the culture catalog.
func (s *Service) ListCultures() []models.Culture {
	return s.cultures
}

// HouseName resolves a house id to its display name, falling back to
// "Unknown House" for ids outside the catalog (e.g. the whitewalker
// roster house).
func (s *Service) HouseName(id string) string {
	if h, ok := s.GetHouse(id); ok {
		return h.Name
	}
	return "Unknown House"
}

// FactionForHouse derives a profile's faction from its house.
func FactionForHouse(houseID string) models.Faction {
	switch houseID {
	case "nightwatch":
		return models.FactionNightwatch
	case "whitewalker":
		return models.FactionWhitewalker
	default:
		return models.FactionNoble
	}
}
