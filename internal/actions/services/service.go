package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"go-westeros/internal/actions/models"
	conflictModels "go-westeros/internal/conflicts/models"
	messageModels "go-westeros/internal/messages/models"
	profileModels "go-westeros/internal/profiles/models"
	profileServices "go-westeros/internal/profiles/services"
	registryModels "go-westeros/internal/registry/models"
	registryServices "go-westeros/internal/registry/services"
	"go-westeros/pkg/events"
)

// Numeric action rules. Bribe takes a fifth of the target's soldiers,
// infiltration loot is uniform in [100, 300).
const (
	BribeCost             = 500
	BribeDesertionShare   = 5
	InfiltrateLootMin     = 100
	InfiltrateLootSpan    = 200
	CollectNobleGold      = 500
	CollectNightwatchGold = 300
	RecruitCost           = 100
	RecruitSoldiers       = 10
	NightwatchRecruits    = 20
)

// RebelEpithet is appended to a rebelling lord's pseudo.
const RebelEpithet = "(King-Beyond-the-Wall)"

// ProfileStore is the slice of the profile repository the resolver
// mutates through. Every method is either a conditional single round
// trip or a session transaction; partial application of a multi-step
// action is the store's problem, not the resolver's.
type ProfileStore interface {
	GetByID(ctx context.Context, profileID string) (*profileModels.Profile, error)
	CreditGold(ctx context.Context, profileID string, amount int64) error
	AddSoldiers(ctx context.Context, profileID string, count int64) error
	HireSoldiers(ctx context.Context, profileID string, cost, count int64) error
	BribeSoldiers(ctx context.Context, briberID, targetID string, cost, share int64) (int64, error)
	TransferGold(ctx context.Context, fromID, toID string, amount int64) error
	SetRebel(ctx context.Context, profileID, epithet string) (bool, error)
}

// SiegeStarter opens marching conflicts.
type SiegeStarter interface {
	CreateSiege(ctx context.Context, attacker, defender *profileModels.Profile) (*conflictModels.Conflict, error)
}

// Broadcaster posts public realm announcements.
type Broadcaster interface {
	Broadcast(ctx context.Context, realmKey, senderID, senderName, content string) (*messageModels.Message, error)
}

// Service resolves actions against profile pairs. Every mutation goes
// through the profile store's conditional or transactional writes, so
// concurrent actions on the same target cannot lose updates or push
// resources negative.
type Service struct {
	profiles  ProfileStore
	registry  *registryServices.Service
	conflicts SiegeStarter
	messages  Broadcaster
	events    *events.Publisher
	roll      func(n int) int
}

// NewService creates a new action resolver
func NewService(profiles ProfileStore, registry *registryServices.Service, conflicts SiegeStarter, messages Broadcaster, publisher *events.Publisher) *Service {
	return &Service{
		profiles:  profiles,
		registry:  registry,
		conflicts: conflicts,
		messages:  messages,
		events:    publisher,
		roll:      rand.Intn,
	}
}

// Resolve validates and applies one action. Rule violations come back as
// a failed Result with a user-facing message and no state change; only
// dependency failures surface as errors.
func (s *Service) Resolve(ctx context.Context, actorID string, kind models.Kind, targetID string) (*models.Result, error) {
	actor, err := s.profiles.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var target *profileModels.Profile
	if kind.RequiresTarget() {
		if targetID == "" {
			return fail(kind, "This action needs a target."), nil
		}
		if targetID == actorID {
			return fail(kind, "You cannot act against yourself."), nil
		}
		target, err = s.profiles.GetByID(ctx, targetID)
		if err != nil {
			if err == profileServices.ErrProfileNotFound {
				return fail(kind, "No such lord in the realm."), nil
			}
			return nil, err
		}
		if target.RealmKey != actor.RealmKey {
			return fail(kind, "That lord rules in another realm."), nil
		}
	}

	var result *models.Result
	switch kind {
	case models.KindSiege:
		result, err = s.resolveSiege(ctx, actor, target)
	case models.KindBribe:
		result, err = s.resolveBribe(ctx, actor, target)
	case models.KindInfiltrate:
		result, err = s.resolveInfiltrate(ctx, actor, target)
	case models.KindMarriage:
		result, err = s.resolveMarriage(ctx, actor, target)
	case models.KindCollect:
		result, err = s.resolveCollect(ctx, actor)
	case models.KindRecruit:
		result, err = s.resolveRecruit(ctx, actor)
	case models.KindRebel:
		result, err = s.resolveRebel(ctx, actor)
	default:
		return fail(kind, "Unknown action."), nil
	}
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Action resolved",
		"kind", kind, "actor", actor.Pseudo, "success", result.Success)
	s.events.Publish(ctx, events.Event{
		Kind:      events.KindProfileUpdated,
		RealmKey:  actor.RealmKey,
		SubjectID: actor.ID,
		Detail:    string(kind),
	})

	return result, nil
}

// resolveSiege starts a conflict. Sworn brothers of the Night's Watch
// cannot march on noble houses unless they have broken their vows.
func (s *Service) resolveSiege(ctx context.Context, actor, target *profileModels.Profile) (*models.Result, error) {
	if actor.Faction == string(registryModels.FactionNightwatch) && !actor.IsRebel &&
		target.Faction == string(registryModels.FactionNoble) {
		return fail(models.KindSiege, "The Night's Watch takes no part in the wars of the realm."), nil
	}

	conflict, err := s.conflicts.CreateSiege(ctx, actor, target)
	if err != nil {
		return nil, err
	}

	result := success(models.KindSiege,
		fmt.Sprintf("Your army marches on %s. Arrival at %s.", target.Pseudo, conflict.ETAArrival.Format("15:04")))
	result.ConflictID = conflict.ID
	return result, nil
}

// resolveBribe debits the actor and shaves a fifth off the target's
// garrison in one transaction. The store computes the desertion count
// from the garrison at write time, so concurrent bribes each take a
// fifth of what they actually find.
func (s *Service) resolveBribe(ctx context.Context, actor, target *profileModels.Profile) (*models.Result, error) {
	deserted, err := s.profiles.BribeSoldiers(ctx, actor.ID, target.ID, BribeCost, BribeDesertionShare)
	if err != nil {
		if err == profileServices.ErrInsufficientGold {
			return fail(models.KindBribe, fmt.Sprintf("A bribe costs %d gold and your coffers are short.", BribeCost)), nil
		}
		return nil, err
	}

	return success(models.KindBribe,
		fmt.Sprintf("Gold changed hands in the night. %d of %s's soldiers deserted.", deserted, target.Pseudo)), nil
}

// resolveInfiltrate sends spies: an even coin toss, independent per
// call. On the favorable branch the loot is capped by the target's
// coffers and moved in one transaction, so gold is conserved across the
// pair.
func (s *Service) resolveInfiltrate(ctx context.Context, actor, target *profileModels.Profile) (*models.Result, error) {
	if s.roll(2) == 0 {
		return fail(models.KindInfiltrate, "Your spies were captured at the gates."), nil
	}

	loot := int64(InfiltrateLootMin + s.roll(InfiltrateLootSpan))
	if target.Gold < loot {
		loot = target.Gold
	}
	if loot <= 0 {
		return success(models.KindInfiltrate,
			fmt.Sprintf("Your spies slipped into %s's keep, but the coffers were bare.", target.Pseudo)), nil
	}

	if err := s.profiles.TransferGold(ctx, target.ID, actor.ID, loot); err != nil {
		if err == profileServices.ErrInsufficientGold {
			// Coffers drained between the read and the transfer.
			return success(models.KindInfiltrate,
				fmt.Sprintf("Your spies slipped into %s's keep, but the coffers were bare.", target.Pseudo)), nil
		}
		return nil, err
	}

	return success(models.KindInfiltrate,
		fmt.Sprintf("Your spies stole %d gold from %s.", loot, target.Pseudo)), nil
}

// resolveMarriage posts a public diplomacy broadcast naming both houses.
func (s *Service) resolveMarriage(ctx context.Context, actor, target *profileModels.Profile) (*models.Result, error) {
	content := fmt.Sprintf("House %s proposes a marriage alliance to House %s!",
		s.registry.HouseName(actor.House), s.registry.HouseName(target.House))

	if _, err := s.messages.Broadcast(ctx, actor.RealmKey, actor.ID, actor.Pseudo, content); err != nil {
		return nil, err
	}

	return success(models.KindMarriage,
		fmt.Sprintf("A raven carries your proposal to %s. The realm watches.", target.Pseudo)), nil
}

// resolveCollect grants tax or patrol income by faction.
func (s *Service) resolveCollect(ctx context.Context, actor *profileModels.Profile) (*models.Result, error) {
	amount := int64(CollectNobleGold)
	narrative := "Your stewards collected %d gold in taxes."
	if actor.Faction == string(registryModels.FactionNightwatch) {
		amount = CollectNightwatchGold
		narrative = "Your patrol along the Wall earned %d gold."
	}

	if err := s.profiles.CreditGold(ctx, actor.ID, amount); err != nil {
		return nil, err
	}

	return success(models.KindCollect, fmt.Sprintf(narrative, amount)), nil
}

// resolveRecruit levies soldiers. The Watch recruits from the realm's
// condemned for free; everyone else pays.
func (s *Service) resolveRecruit(ctx context.Context, actor *profileModels.Profile) (*models.Result, error) {
	if actor.Faction == string(registryModels.FactionNightwatch) {
		if err := s.profiles.AddSoldiers(ctx, actor.ID, NightwatchRecruits); err != nil {
			return nil, err
		}
		return success(models.KindRecruit,
			fmt.Sprintf("%d condemned men took the black.", NightwatchRecruits)), nil
	}

	if err := s.profiles.HireSoldiers(ctx, actor.ID, RecruitCost, RecruitSoldiers); err != nil {
		if err == profileServices.ErrInsufficientGold {
			return fail(models.KindRecruit, fmt.Sprintf("Levies cost %d gold and your coffers are short.", RecruitCost)), nil
		}
		return nil, err
	}

	return success(models.KindRecruit,
		fmt.Sprintf("%d levies joined your banners for %d gold.", RecruitSoldiers, RecruitCost)), nil
}

// resolveRebel breaks a brother's vows: only the Night's Watch can
// rebel, and only once.
func (s *Service) resolveRebel(ctx context.Context, actor *profileModels.Profile) (*models.Result, error) {
	if actor.Faction != string(registryModels.FactionNightwatch) {
		return fail(models.KindRebel, "Only sworn brothers of the Night's Watch can break their vows."), nil
	}
	if actor.IsRebel {
		return fail(models.KindRebel, "You have already broken your vows."), nil
	}

	flipped, err := s.profiles.SetRebel(ctx, actor.ID, RebelEpithet)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return fail(models.KindRebel, "You have already broken your vows."), nil
	}

	return success(models.KindRebel,
		"You cast off the black. The realm will know you as the King-Beyond-the-Wall."), nil
}

func success(kind models.Kind, message string) *models.Result {
	return &models.Result{Kind: kind, Success: true, Message: message}
}

func fail(kind models.Kind, message string) *models.Result {
	return &models.Result{Kind: kind, Success: false, Message: message}
}
