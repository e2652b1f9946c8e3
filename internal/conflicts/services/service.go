package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go-westeros/internal/conflicts/models"
	profileModels "go-westeros/internal/profiles/models"
	profileServices "go-westeros/internal/profiles/services"
	"go-westeros/pkg/events"

	"github.com/google/uuid"
)

// MarchSpeed is the distance an army covers per minute of marching.
const MarchSpeed = 50.0

// Service implements the conflict lifecycle
type Service struct {
	repository *Repository
	profiles   *profileServices.Repository
	events     *events.Publisher
}

// NewService creates a new conflict service
func NewService(repository *Repository, profiles *profileServices.Repository, publisher *events.Publisher) *Service {
	return &Service{
		repository: repository,
		profiles:   profiles,
		events:     publisher,
	}
}

// MarchDuration computes how long an army takes to cover the straight
// line between two coordinates, rounded up to whole minutes.
func MarchDuration(fromX, fromY, toX, toY int) time.Duration {
	dx := float64(toX - fromX)
	dy := float64(toY - fromY)
	distance := math.Sqrt(dx*dx + dy*dy)
	minutes := math.Ceil(distance / MarchSpeed)
	return time.Duration(minutes) * time.Minute
}

// CreateSiege starts a conflict between two lords. The army's arrival is
// scheduled from the straight-line distance between their seats.
func (s *Service) CreateSiege(ctx context.Context, attacker, defender *profileModels.Profile) (*models.Conflict, error) {
	conflict := &models.Conflict{
		ID:         uuid.New().String(),
		RealmKey:   attacker.RealmKey,
		AttackerID: attacker.ID,
		DefenderID: defender.ID,
		Title:      fmt.Sprintf("Siege of %s by %s", defender.Pseudo, attacker.Pseudo),
		Status:     models.StatusMarching,
		ETAArrival: time.Now().UTC().Add(MarchDuration(attacker.X, attacker.Y, defender.X, defender.Y)),
	}

	if err := s.repository.Insert(ctx, conflict); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Siege created",
		"conflict_id", conflict.ID, "attacker", attacker.Pseudo, "defender", defender.Pseudo, "eta", conflict.ETAArrival)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindConflictUpdate,
		RealmKey:  conflict.RealmKey,
		SubjectID: conflict.ID,
		Detail:    conflict.Status,
	})

	return conflict, nil
}

// ListForProfile returns the realm conflicts a profile is a side of.
func (s *Service) ListForProfile(ctx context.Context, realmKey, profileID string) ([]models.Conflict, error) {
	return s.repository.ListByParticipant(ctx, realmKey, profileID)
}

// ListReports returns the battle reports a profile has not seen yet.
func (s *Service) ListReports(ctx context.Context, realmKey, profileID string) ([]models.Conflict, error) {
	return s.repository.ListUnackedReports(ctx, realmKey, profileID)
}

// AcknowledgeReport records that a profile has seen a battle report.
func (s *Service) AcknowledgeReport(ctx context.Context, conflictID, profileID string) error {
	return s.repository.Acknowledge(ctx, conflictID, profileID)
}

// ResolveDue resolves every marching conflict whose army has arrived:
// the attacker wins when it brings strictly more soldiers than the
// defender holds at arrival time. Returns how many conflicts this
// instance resolved; conflicts claimed by a sibling instance are skipped.
func (s *Service) ResolveDue(ctx context.Context) (int, error) {
	due, err := s.repository.ListDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, conflict := range due {
		status, err := s.decideOutcome(ctx, &conflict)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to decide conflict outcome", "error", err, "conflict_id", conflict.ID)
			continue
		}

		won, err := s.repository.Resolve(ctx, conflict.ID, status)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to resolve conflict", "error", err, "conflict_id", conflict.ID)
			continue
		}
		if !won {
			continue
		}

		resolved++
		slog.InfoContext(ctx, "Conflict resolved", "conflict_id", conflict.ID, "status", status)
		s.events.Publish(ctx, events.Event{
			Kind:      events.KindConflictUpdate,
			RealmKey:  conflict.RealmKey,
			SubjectID: conflict.ID,
			Detail:    status,
		})
	}

	return resolved, nil
}

// decideOutcome compares the two armies at arrival time. A missing side
// (profile deleted) forfeits the battle.
func (s *Service) decideOutcome(ctx context.Context, conflict *models.Conflict) (string, error) {
	attacker, err := s.profiles.GetByID(ctx, conflict.AttackerID)
	if err != nil {
		if err == profileServices.ErrProfileNotFound {
			return models.StatusDefeat, nil
		}
		return "", err
	}

	defender, err := s.profiles.GetByID(ctx, conflict.DefenderID)
	if err != nil {
		if err == profileServices.ErrProfileNotFound {
			return models.StatusVictory, nil
		}
		return "", err
	}

	if attacker.Soldiers > defender.Soldiers {
		return models.StatusVictory, nil
	}
	return models.StatusDefeat, nil
}
