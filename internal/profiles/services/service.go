package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"go-westeros/internal/profiles/models"
	registryServices "go-westeros/internal/registry/services"
	"go-westeros/pkg/events"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Coordinates assigned at oath time fall in [100, 700).
const (
	coordMin  = 100
	coordSpan = 600
)

// Service implements profile onboarding and lookups
type Service struct {
	repository *Repository
	registry   *registryServices.Service
	events     *events.Publisher
}

// NewService creates a new profile service
func NewService(repository *Repository, registry *registryServices.Service, publisher *events.Publisher) *Service {
	return &Service{
		repository: repository,
		registry:   registry,
		events:     publisher,
	}
}

// Repository exposes the profile repository to sibling modules. The
// action resolver and monarchy rules mutate profiles through it so every
// write shares the same conditional/transactional primitives.
func (s *Service) Repository() *Repository {
	return s.repository
}

// TakeOath creates a profile for a new lord: validates the chosen house
// and culture against the registry, derives the faction, grants starting
// resources and places the lord at random coordinates.
func (s *Service) TakeOath(ctx context.Context, pseudo, house, culture, realmKey string) (*models.Profile, error) {
	pseudo = strings.TrimSpace(pseudo)
	if len(pseudo) < 3 {
		return nil, fmt.Errorf("pseudo must be at least 3 characters")
	}
	if _, ok := s.registry.GetHouse(house); !ok {
		return nil, fmt.Errorf("unknown house %q", house)
	}
	if _, ok := s.registry.GetCulture(culture); !ok {
		return nil, fmt.Errorf("unknown culture %q", culture)
	}
	if realmKey == "" {
		realmKey = models.DefaultRealm
	}

	profile := &models.Profile{
		ID:       uuid.New().String(),
		Pseudo:   pseudo,
		House:    house,
		Culture:  culture,
		RealmKey: realmKey,
		X:        coordMin + rand.Intn(coordSpan),
		Y:        coordMin + rand.Intn(coordSpan),
		Gold:     models.StartingGold,
		Soldiers: models.StartingSoldiers,
		Faction:  string(registryServices.FactionForHouse(house)),
	}

	if err := s.repository.Insert(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("pseudo %q is already taken in this realm", pseudo)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "Oath taken", "pseudo", profile.Pseudo, "house", profile.House, "realm", profile.RealmKey)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindProfileCreated,
		RealmKey:  profile.RealmKey,
		SubjectID: profile.ID,
	})

	return profile, nil
}

// GetProfile retrieves a profile by ID
func (s *Service) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	return s.repository.GetByID(ctx, profileID)
}

// ListRealm returns every lord in the realm.
func (s *Service) ListRealm(ctx context.Context, realmKey string) ([]models.Profile, error) {
	return s.repository.ListByRealm(ctx, realmKey)
}
