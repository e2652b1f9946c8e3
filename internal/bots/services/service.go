package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"go-westeros/internal/bots/models"
	profileModels "go-westeros/internal/profiles/models"
	profileServices "go-westeros/internal/profiles/services"
	"go-westeros/pkg/events"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
)

// botNames is the pool lobby-filler pseudos are drawn from.
var botNames = []string{
	"Walder Bot", "Ramsay Machine", "Joffrey AI", "Littlefinger Bot",
	"Varys Logic", "Tywin Compute", "The Mountain.exe", "Hound Proxy",
}

// botHouses are the houses generated bots can fly banners for.
var botHouses = []string{
	"stark", "lannister", "baratheon", "targaryen",
	"greyjoy", "martell", "tyrell", "bolton",
}

// Service implements bot generation and the fixed roster seed
type Service struct {
	profiles *profileServices.Repository
	events   *events.Publisher
}

// NewService creates a new bot service
func NewService(profiles *profileServices.Repository, publisher *events.Publisher) *Service {
	return &Service{
		profiles: profiles,
		events:   publisher,
	}
}

// GenerateBots produces synthetic opponents for lobby filling. Behavior
// is weighted roughly 40% aggressive, 30% diplomatic, 30% balanced;
// power is uniform in [5000, 25000). Nothing is persisted.
func (s *Service) GenerateBots(count int) []models.Bot {
	if count < 0 {
		count = 0
	}

	return lo.Times(count, func(_ int) models.Bot {
		return models.Bot{
			ID:       uuid.New().String(),
			Pseudo:   fmt.Sprintf("%s #%d", botNames[rand.Intn(len(botNames))], rand.Intn(999)),
			House:    botHouses[rand.Intn(len(botHouses))],
			Behavior: rollBehavior(),
			Power:    models.PowerMin + rand.Intn(models.PowerSpan),
			Status:   "online",
		}
	})
}

func rollBehavior() string {
	if rand.Float64() > 0.6 {
		return models.BehaviorAggressive
	}
	if rand.Float64() > 0.5 {
		return models.BehaviorDiplomatic
	}
	return models.BehaviorBalanced
}

// SeedRoster inserts the fixed lore lords into a realm. Idempotent: a
// realm that already has bots is left untouched, and the unique
// (realm_key, pseudo) index makes a concurrent double-seed benign.
func (s *Service) SeedRoster(ctx context.Context, realmKey string) (int, error) {
	populated, err := s.profiles.HasBots(ctx, realmKey)
	if err != nil {
		return 0, err
	}
	if populated {
		return 0, nil
	}

	roster := lo.Map(loreRoster, func(entry rosterEntry, _ int) profileModels.Profile {
		return entry.toProfile(realmKey, uuid.New().String())
	})

	if err := s.profiles.InsertMany(ctx, roster); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against another seeder; the realm is populated.
			slog.InfoContext(ctx, "Realm already populated, seed skipped", "realm", realmKey)
			return 0, nil
		}
		return 0, err
	}

	slog.InfoContext(ctx, "Lore roster seeded", "realm", realmKey, "lords", len(roster))
	s.events.Publish(ctx, events.Event{
		Kind:     events.KindProfileCreated,
		RealmKey: realmKey,
		Detail:   "roster-seed",
	})

	return len(roster), nil
}
