package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Kind
		wantOK bool
	}{
		{"siege", "siege", KindSiege, true},
		{"bribe", "bribe", KindBribe, true},
		{"infiltrate", "infiltrate", KindInfiltrate, true},
		{"marriage proposal", "propose-alliance", KindMarriage, true},
		{"collect", "collect-resource", KindCollect, true},
		{"recruit", "recruit", KindRecruit, true},
		{"rebel", "rebel", KindRebel, true},
		{"unknown kind", "pillage", "", false},
		{"empty string", "", "", false},
		{"case sensitive", "Siege", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKind(tt.input)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiresTarget(t *testing.T) {
	assert.True(t, KindSiege.RequiresTarget())
	assert.True(t, KindBribe.RequiresTarget())
	assert.True(t, KindInfiltrate.RequiresTarget())
	assert.True(t, KindMarriage.RequiresTarget())
	assert.False(t, KindCollect.RequiresTarget())
	assert.False(t, KindRecruit.RequiresTarget())
	assert.False(t, KindRebel.RequiresTarget())
}
