package services

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"go-westeros/internal/actions/models"
	conflictModels "go-westeros/internal/conflicts/models"
	messageModels "go-westeros/internal/messages/models"
	profileModels "go-westeros/internal/profiles/models"
	profileServices "go-westeros/internal/profiles/services"
	registryServices "go-westeros/internal/registry/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfileStore mirrors the repository's write semantics in memory:
// conditional debits, all-or-nothing pairs, floored desertion.
type fakeProfileStore struct {
	profiles map[string]*profileModels.Profile
}

func newFakeStore(profiles ...*profileModels.Profile) *fakeProfileStore {
	store := &fakeProfileStore{profiles: make(map[string]*profileModels.Profile)}
	for _, p := range profiles {
		store.profiles[p.ID] = p
	}
	return store
}

func (f *fakeProfileStore) GetByID(ctx context.Context, profileID string) (*profileModels.Profile, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, profileServices.ErrProfileNotFound
	}
	snapshot := *p
	return &snapshot, nil
}

func (f *fakeProfileStore) debit(profileID string, amount int64) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return profileServices.ErrProfileNotFound
	}
	if p.Gold < amount {
		return profileServices.ErrInsufficientGold
	}
	p.Gold -= amount
	return nil
}

func (f *fakeProfileStore) CreditGold(ctx context.Context, profileID string, amount int64) error {
	f.profiles[profileID].Gold += amount
	return nil
}

func (f *fakeProfileStore) AddSoldiers(ctx context.Context, profileID string, count int64) error {
	f.profiles[profileID].Soldiers += count
	return nil
}

func (f *fakeProfileStore) HireSoldiers(ctx context.Context, profileID string, cost, count int64) error {
	if err := f.debit(profileID, cost); err != nil {
		return err
	}
	f.profiles[profileID].Soldiers += count
	return nil
}

func (f *fakeProfileStore) BribeSoldiers(ctx context.Context, briberID, targetID string, cost, share int64) (int64, error) {
	if err := f.debit(briberID, cost); err != nil {
		return 0, err
	}
	target := f.profiles[targetID]
	deserted := target.Soldiers / share
	target.Soldiers -= deserted
	return deserted, nil
}

func (f *fakeProfileStore) TransferGold(ctx context.Context, fromID, toID string, amount int64) error {
	if err := f.debit(fromID, amount); err != nil {
		return err
	}
	f.profiles[toID].Gold += amount
	return nil
}

func (f *fakeProfileStore) SetRebel(ctx context.Context, profileID, epithet string) (bool, error) {
	p := f.profiles[profileID]
	if p.IsRebel {
		return false, nil
	}
	p.IsRebel = true
	p.Pseudo = p.Pseudo + " " + epithet
	return true, nil
}

type fakeSieges struct {
	created []*conflictModels.Conflict
}

func (f *fakeSieges) CreateSiege(ctx context.Context, attacker, defender *profileModels.Profile) (*conflictModels.Conflict, error) {
	conflict := &conflictModels.Conflict{
		ID:         "conflict-" + strconv.Itoa(len(f.created)+1),
		RealmKey:   attacker.RealmKey,
		AttackerID: attacker.ID,
		DefenderID: defender.ID,
		Status:     conflictModels.StatusMarching,
	}
	f.created = append(f.created, conflict)
	return conflict, nil
}

type fakeRavens struct {
	broadcasts []string
}

func (f *fakeRavens) Broadcast(ctx context.Context, realmKey, senderID, senderName, content string) (*messageModels.Message, error) {
	f.broadcasts = append(f.broadcasts, content)
	return &messageModels.Message{RealmKey: realmKey, Content: content}, nil
}

func newTestResolver(store *fakeProfileStore, sieges *fakeSieges, ravens *fakeRavens) *Service {
	return NewService(store, registryServices.NewService(), sieges, ravens, nil)
}

func noble(id string, gold, soldiers int64) *profileModels.Profile {
	return &profileModels.Profile{
		ID: id, Pseudo: id, House: "stark", Faction: "noble",
		RealmKey: "public", Gold: gold, Soldiers: soldiers,
	}
}

func watchman(id string, gold, soldiers int64) *profileModels.Profile {
	return &profileModels.Profile{
		ID: id, Pseudo: id, House: "nightwatch", Faction: "nightwatch",
		RealmKey: "public", Gold: gold, Soldiers: soldiers,
	}
}

func TestResolveBribe(t *testing.T) {
	tests := []struct {
		name         string
		actorGold    int64
		targetTroops int64
		wantSuccess  bool
		wantGold     int64
		wantTroops   int64
	}{
		{"a fifth of the garrison deserts", 1000, 100, true, 500, 80},
		{"small garrison loses nothing", 1000, 4, true, 500, 4},
		{"empty garrison stays at zero", 1000, 0, true, 500, 0},
		{"short coffers change nothing", 499, 100, false, 499, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(noble("actor", tt.actorGold, 50), noble("target", 200, tt.targetTroops))
			svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

			result, err := svc.Resolve(context.Background(), "actor", models.KindBribe, "target")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.NotEmpty(t, result.Message)
			assert.Equal(t, tt.wantGold, store.profiles["actor"].Gold)
			assert.Equal(t, tt.wantTroops, store.profiles["target"].Soldiers)
		})
	}
}

func TestResolveInfiltrate(t *testing.T) {
	t.Run("loot stays in range and the pair conserves gold", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			store := newFakeStore(noble("actor", 1000, 100), noble("target", 5000, 100))
			svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})
			svc.roll = rand.New(rand.NewSource(seed)).Intn

			result, err := svc.Resolve(context.Background(), "actor", models.KindInfiltrate, "target")
			require.NoError(t, err)

			stolen := store.profiles["actor"].Gold - 1000
			if result.Success {
				assert.GreaterOrEqual(t, stolen, int64(InfiltrateLootMin))
				assert.Less(t, stolen, int64(InfiltrateLootMin+InfiltrateLootSpan))
			} else {
				assert.Zero(t, stolen)
			}
			assert.Equal(t, int64(6000), store.profiles["actor"].Gold+store.profiles["target"].Gold)
		}
	})

	t.Run("captured spies move no gold", func(t *testing.T) {
		store := newFakeStore(noble("actor", 1000, 100), noble("target", 5000, 100))
		svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})
		svc.roll = func(n int) int { return 0 }

		result, err := svc.Resolve(context.Background(), "actor", models.KindInfiltrate, "target")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, int64(1000), store.profiles["actor"].Gold)
		assert.Equal(t, int64(5000), store.profiles["target"].Gold)
	})

	t.Run("loot is capped by the target's coffers", func(t *testing.T) {
		store := newFakeStore(noble("actor", 1000, 100), noble("target", 50, 100))
		svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})
		rolls := []int{1, 150}
		svc.roll = func(n int) int {
			r := rolls[0]
			rolls = rolls[1:]
			return r
		}

		result, err := svc.Resolve(context.Background(), "actor", models.KindInfiltrate, "target")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(1050), store.profiles["actor"].Gold)
		assert.Zero(t, store.profiles["target"].Gold)
	})
}

func TestResolveRecruit(t *testing.T) {
	t.Run("a noble house pays for its levies", func(t *testing.T) {
		store := newFakeStore(noble("actor", 1000, 100))
		svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

		result, err := svc.Resolve(context.Background(), "actor", models.KindRecruit, "")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(900), store.profiles["actor"].Gold)
		assert.Equal(t, int64(110), store.profiles["actor"].Soldiers)
	})

	t.Run("the watch recruits for free", func(t *testing.T) {
		store := newFakeStore(watchman("actor", 0, 800))
		svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

		result, err := svc.Resolve(context.Background(), "actor", models.KindRecruit, "")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Zero(t, store.profiles["actor"].Gold)
		assert.Equal(t, int64(820), store.profiles["actor"].Soldiers)
	})

	t.Run("short coffers levy nothing", func(t *testing.T) {
		store := newFakeStore(noble("actor", 99, 100))
		svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

		result, err := svc.Resolve(context.Background(), "actor", models.KindRecruit, "")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, int64(99), store.profiles["actor"].Gold)
		assert.Equal(t, int64(100), store.profiles["actor"].Soldiers)
	})
}

func TestResolveSiege(t *testing.T) {
	t.Run("a sworn brother cannot march on a noble house", func(t *testing.T) {
		store := newFakeStore(watchman("actor", 0, 800), noble("target", 100, 100))
		sieges := &fakeSieges{}
		svc := newTestResolver(store, sieges, &fakeRavens{})

		result, err := svc.Resolve(context.Background(), "actor", models.KindSiege, "target")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, sieges.created)
	})

	t.Run("a rebel brother marches freely", func(t *testing.T) {
		rebel := watchman("actor", 0, 800)
		rebel.IsRebel = true
		store := newFakeStore(rebel, noble("target", 100, 100))
		sieges := &fakeSieges{}
		svc := newTestResolver(store, sieges, &fakeRavens{})

		result, err := svc.Resolve(context.Background(), "actor", models.KindSiege, "target")
		require.NoError(t, err)
		assert.True(t, result.Success)
		require.Len(t, sieges.created, 1)
		assert.Equal(t, sieges.created[0].ID, result.ConflictID)
	})

	t.Run("noble houses war at will", func(t *testing.T) {
		store := newFakeStore(noble("actor", 1000, 100), noble("target", 100, 100))
		sieges := &fakeSieges{}
		svc := newTestResolver(store, sieges, &fakeRavens{})

		result, err := svc.Resolve(context.Background(), "actor", models.KindSiege, "target")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.ConflictID)
	})
}

func TestResolveMarriage(t *testing.T) {
	store := newFakeStore(noble("actor", 1000, 100), noble("target", 100, 100))
	ravens := &fakeRavens{}
	svc := newTestResolver(store, &fakeSieges{}, ravens)

	result, err := svc.Resolve(context.Background(), "actor", models.KindMarriage, "target")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, ravens.broadcasts, 1)
	assert.Contains(t, ravens.broadcasts[0], "House Stark")
	assert.Equal(t, int64(1000), store.profiles["actor"].Gold)
}

func TestResolveCollect(t *testing.T) {
	tests := []struct {
		name     string
		actor    *profileModels.Profile
		wantGold int64
	}{
		{"noble taxes", noble("actor", 1000, 100), 1500},
		{"watch patrol", watchman("actor", 1000, 100), 1300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(tt.actor)
			svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

			result, err := svc.Resolve(context.Background(), "actor", models.KindCollect, "")
			require.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, tt.wantGold, store.profiles["actor"].Gold)
		})
	}
}

func TestResolveRebel(t *testing.T) {
	t.Run("only the watch can break its vows", func(t *testing.T) {
		store := newFakeStore(noble("actor", 1000, 100))
		svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

		result, err := svc.Resolve(context.Background(), "actor", models.KindRebel, "")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.False(t, store.profiles["actor"].IsRebel)
	})

	t.Run("a brother breaks his vows exactly once", func(t *testing.T) {
		store := newFakeStore(watchman("actor", 0, 800))
		svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

		first, err := svc.Resolve(context.Background(), "actor", models.KindRebel, "")
		require.NoError(t, err)
		assert.True(t, first.Success)
		assert.Equal(t, "actor "+RebelEpithet, store.profiles["actor"].Pseudo)

		second, err := svc.Resolve(context.Background(), "actor", models.KindRebel, "")
		require.NoError(t, err)
		assert.False(t, second.Success)
		assert.Equal(t, "actor "+RebelEpithet, store.profiles["actor"].Pseudo)
	})
}

func TestResolveTargetChecks(t *testing.T) {
	stranger := noble("stranger", 1000, 100)
	stranger.RealmKey = "essos"

	tests := []struct {
		name     string
		targetID string
	}{
		{"missing target", ""},
		{"self target", "actor"},
		{"unknown lord", "ghost"},
		{"lord of another realm", "stranger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(noble("actor", 1000, 100), stranger)
			svc := newTestResolver(store, &fakeSieges{}, &fakeRavens{})

			result, err := svc.Resolve(context.Background(), "actor", models.KindBribe, tt.targetID)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, int64(1000), store.profiles["actor"].Gold)
		})
	}
}
