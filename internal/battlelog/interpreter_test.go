package battlelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellum/internal/api"
)

func battleResult(winner *int64) *api.BattleResult {
	return &api.BattleResult{
		BattleID:     42,
		WinnerUserID: winner,
		Participants: []api.Participant{
			{UserID: 1, ShipNumber: 10, Nickname: "Aezakimi", ShipName: "Swift"},
			{UserID: 2, ShipNumber: 20, Nickname: "NPC_Astro", ShipName: "Falcon"},
		},
	}
}

func int64p(v int64) *int64 { return &v }

func TestInterpretEndToEnd(t *testing.T) {
	result := battleResult(int64p(1))
	result.BattleLog = []string{
		"[1] Battle #42 started: Aezakimi vs Astro",
		"--- Round 1 ---",
		"Swift (Aezakimi) hits Falcon (Astro) for 12.7 damage! HP: 987.3",
		"Falcon (Astro) evaded attack from Swift (Aezakimi)!",
		"Player wins the battle!",
	}

	interp := NewInterpreter(result, 1)
	entries := interp.InterpretAll(result.BattleLog)

	require.Len(t, entries, 5)
	assert.Equal(t, EntryHeader, entries[0].Type)
	assert.Equal(t, EntryRound, entries[1].Type)
	assert.Equal(t, EntryAttack, entries[2].Type)
	assert.Equal(t, EntryAttack, entries[3].Type)
	assert.Equal(t, EntryResult, entries[4].Type)

	assert.Equal(t, 12.7, entries[2].Damage)
	assert.Equal(t, "Swift", entries[2].Attacker)
	assert.Equal(t, "Falcon", entries[2].Target)
	assert.True(t, entries[3].Evaded)
}

func TestInterpretHitShapes(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		attacker string
		target   string
		damage   float64
	}{
		{
			name:     "parenthesized affiliation",
			line:     "Swift (Aezakimi) hits Falcon (Astro) for 12.7 damage! HP: 987.3",
			attacker: "Swift",
			target:   "Falcon",
			damage:   12.7,
		},
		{
			name:     "plain",
			line:     "Swift hits Falcon for 3 damage!",
			attacker: "Swift",
			target:   "Falcon",
			damage:   3,
		},
		{
			name:     "integer damage with trailing text",
			line:     "[7] Hammer hits Anvil for 150 damage and the hull buckles",
			attacker: "Hammer",
			target:   "Anvil",
			damage:   150,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			interp := NewInterpreter(battleResult(nil), 1)
			entry, ok := interp.Interpret(tc.line)
			require.True(t, ok)
			assert.Equal(t, EntryAttack, entry.Type)
			assert.Equal(t, tc.attacker, entry.Attacker)
			assert.Equal(t, tc.target, entry.Target)
			assert.Equal(t, tc.damage, entry.Damage)
			assert.False(t, entry.Evaded)
		})
	}
}

func TestInterpretClassification(t *testing.T) {
	tests := []struct {
		line string
		typ  EntryType
	}{
		{"Battle #7 started: A vs B", EntryHeader},
		{"NPC_Astro formation: DEFENSIVE", EntryInfo},
		{"--- Round 3 ---", EntryRound},
		{"Falcon destroyed!", EntryResult},
		{"Aezakimi wins the battle!", EntryResult},
		{"Aezakimi awarded 120.5 credits", EntryReward},
		{"Aezakimi gains 40 XP", EntryReward},
		{"Falcon restored to full hull", EntryInfo},
		{"Falcon reactivated", EntryInfo},
		{"something unrecognized happened", EntryInfo},
	}

	for _, tc := range tests {
		interp := NewInterpreter(battleResult(nil), 1)
		entry, ok := interp.Interpret(tc.line)
		require.True(t, ok, "line %q should produce an entry", tc.line)
		assert.Equal(t, tc.typ, entry.Type, "line %q", tc.line)
	}
}

func TestInterpretDroppedLines(t *testing.T) {
	interp := NewInterpreter(battleResult(nil), 1)

	for _, line := range []string{
		"",
		"   ",
		"[3] 4 ships active on each side",
		// Hit-shaped line that matches neither accepted form and is not
		// an evasion.
		"hits and damage were exchanged",
	} {
		_, ok := interp.Interpret(line)
		assert.False(t, ok, "line %q should be dropped", line)
	}
}

func TestInterpretFormationCapturesPlayer(t *testing.T) {
	interp := NewInterpreter(battleResult(nil), 1)

	entry, ok := interp.Interpret("NPC_Astro formation: DEFENSIVE")
	require.True(t, ok)
	assert.Equal(t, EntryInfo, entry.Type)
	assert.Equal(t, "Astro", entry.Player, "NPC_ prefix is stripped for display")
}

func TestInterpretRoundNumbering(t *testing.T) {
	interp := NewInterpreter(battleResult(nil), 1)

	first, ok := interp.Interpret("--- Round 1 ---")
	require.True(t, ok)
	assert.Equal(t, 1, first.Round)

	// No parseable number: the internal counter takes over.
	second, ok := interp.Interpret("--- Round ? ---")
	require.True(t, ok)
	assert.Equal(t, 2, second.Round)

	third, ok := interp.Interpret("--- Round 5 ---")
	require.True(t, ok)
	assert.Equal(t, 5, third.Round)

	fourth, ok := interp.Interpret("--- Round --- ")
	require.True(t, ok)
	assert.Equal(t, 6, fourth.Round)

	// A fresh interpreter starts its counter over.
	fresh := NewInterpreter(battleResult(nil), 1)
	entry, ok := fresh.Interpret("--- Round ---")
	require.True(t, ok)
	assert.Equal(t, 1, entry.Round)
}

func TestInterpretAttribution(t *testing.T) {
	interp := NewInterpreter(battleResult(nil), 1)

	entry, ok := interp.Interpret("Swift hits Falcon for 10 damage!")
	require.True(t, ok)
	assert.True(t, entry.AttackerIsViewer, "Swift belongs to viewer 1")
	assert.False(t, entry.TargetIsViewer)

	evasion, ok := interp.Interpret("Swift evaded attack from Falcon!")
	require.True(t, ok)
	assert.Equal(t, "Falcon", evasion.Attacker)
	assert.Equal(t, "Swift", evasion.Target)
	assert.True(t, evasion.TargetIsViewer)
	assert.False(t, evasion.AttackerIsViewer)
}

func TestInterpretUnparseableHitFallsBackToEvasion(t *testing.T) {
	interp := NewInterpreter(battleResult(nil), 1)

	// Contains hits+damage but matches neither hit shape; it does match
	// the evasion rule and is kept as an evaded attack.
	entry, ok := interp.Interpret("after hits and damage, Swift evaded attack from Falcon!")
	require.True(t, ok)
	assert.Equal(t, EntryAttack, entry.Type)
	assert.True(t, entry.Evaded)
}

func TestDecideOutcome(t *testing.T) {
	assert.Equal(t, OutcomeDraw, DecideOutcome(battleResult(nil), 1))
	assert.Equal(t, OutcomeVictory, DecideOutcome(battleResult(int64p(1)), 1))
	assert.Equal(t, OutcomeDefeat, DecideOutcome(battleResult(int64p(2)), 1))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Astro", DisplayName("NPC_Astro"))
	assert.Equal(t, "Aezakimi", DisplayName("Aezakimi"))
}
