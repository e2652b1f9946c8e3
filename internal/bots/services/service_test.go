package services

import (
	"strings"
	"testing"

	"go-westeros/internal/bots/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBots(t *testing.T) {
	s := NewService(nil, nil)

	bots := s.GenerateBots(50)
	require.Len(t, bots, 50)

	for _, bot := range bots {
		assert.NotEmpty(t, bot.ID)
		assert.GreaterOrEqual(t, bot.Power, models.PowerMin)
		assert.Less(t, bot.Power, models.PowerMin+models.PowerSpan)
		assert.Contains(t, []string{
			models.BehaviorAggressive,
			models.BehaviorDiplomatic,
			models.BehaviorBalanced,
		}, bot.Behavior)
		assert.Contains(t, botHouses, bot.House)
		assert.Equal(t, "online", bot.Status)

		name, _, found := strings.Cut(bot.Pseudo, " #")
		require.True(t, found, "pseudo %q should carry a numeric tag", bot.Pseudo)
		assert.Contains(t, botNames, name)
	}
}

func TestGenerateBotsEmpty(t *testing.T) {
	s := NewService(nil, nil)

	assert.Empty(t, s.GenerateBots(0))
	assert.Empty(t, s.GenerateBots(-5))
}

func TestLoreRoster(t *testing.T) {
	require.Len(t, loreRoster, 11)

	seen := map[string]bool{}
	for _, entry := range loreRoster {
		assert.False(t, seen[entry.Pseudo], "duplicate roster pseudo %q", entry.Pseudo)
		seen[entry.Pseudo] = true
	}

	// The Night King anchors the whitewalker faction with an empty purse.
	nightKing := loreRoster[5]
	assert.Equal(t, "Night King", nightKing.Pseudo)
	assert.Equal(t, "whitewalker", nightKing.Faction)
	assert.Equal(t, int64(0), nightKing.Gold)
	assert.Equal(t, int64(10000), nightKing.Soldiers)

	profile := nightKing.toProfile("public", "test-id")
	assert.True(t, profile.IsBot)
	assert.Equal(t, "public", profile.RealmKey)
	assert.Equal(t, "test-id", profile.ID)
}
