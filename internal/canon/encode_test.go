package canon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosnap/firered/internal/model"
)

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integral number", Int(3000), "3000"},
		{"negative number", Int(-2), "-2"},
		{"zero", Uint(0), "0"},
		{"fractional number", Number(1.5), "1.5"},
		{"plain string", String("Charizard"), `"Charizard"`},
		{"escaped string", String("a\"b\\c\nd\re\tf"), `"a\"b\\c\nd\re\tf"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, string(Encode(tc.v)))
		})
	}
}

func TestEncodeStructures(t *testing.T) {
	// Empty sequence and empty map have distinct canonical forms; the
	// choice is made by the builder, not inferred from contents.
	assert.Equal(t, "[]", string(Encode(Sequence())))
	assert.Equal(t, "{}", string(Encode(Map())))

	one := Sequence(Int(7))
	assert.Equal(t, "[7]", string(Encode(one)))

	nested := Map(
		Field("a", Sequence(Int(1), Int(2))),
		Field("b", Map(Field("c", Null()))),
	)
	assert.Equal(t, `{"a": [1, 2], "b": {"c": null}}`, string(Encode(nested)))
}

func TestEncodeMemberOrderIsStable(t *testing.T) {
	v := Map(Field("z", Int(1)), Field("a", Int(2)), Field("m", Int(3)))
	first := string(Encode(v))
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, string(Encode(v)))
	}
	assert.Equal(t, `{"z": 1, "a": 2, "m": 3}`, first)
}

func TestDocumentContractKeys(t *testing.T) {
	snap := model.GameSnapshot{
		Player: model.PlayerState{X: 12, Y: -2, MapID: 3, Money: 3000, Badges: 0x07, BadgeCount: 3},
		Battle: model.BattleState{Phase: model.PhaseTrainer, Outcome: model.OutcomeOngoing},
		Roster: []model.RosterRecord{{
			Species: 6, Experience: 125000, Abilities: [4]uint16{53, 19, 0, 0},
			Level: 36, HP: 101, MaxHP: 120, Status: 0,
		}},
		Dex: model.DexState{Seen: 42, Caught: 17},
	}

	raw := EncodeSnapshot(snap, false)

	// The canonical form is parseable by a generic JSON consumer; that is
	// how the external reader ingests it.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, float64(12), doc["player_x"])
	assert.Equal(t, float64(-2), doc["player_y"])
	assert.Equal(t, float64(3), doc["map_id"])
	assert.Equal(t, float64(3000), doc["money"])
	assert.Equal(t, float64(7), doc["badges"])
	assert.Equal(t, float64(3), doc["badge_count"])
	assert.Equal(t, float64(2), doc["in_battle"])
	assert.Equal(t, float64(0), doc["battle_outcome"])
	assert.Equal(t, float64(42), doc["pokedex_seen"])
	assert.Equal(t, float64(17), doc["pokedex_caught"])
	assert.NotContains(t, doc, "seen_ids")

	party, ok := doc["party"].([]any)
	require.True(t, ok, "party must serialize as a sequence")
	require.Len(t, party, 1)
	mon := party[0].(map[string]any)
	assert.Equal(t, float64(6), mon["species"])
	assert.Equal(t, float64(125000), mon["xp"])
	assert.Equal(t, []any{float64(53), float64(19), float64(0), float64(0)}, mon["moves"])
	assert.Equal(t, float64(101), mon["hp_current"])
	assert.Equal(t, float64(120), mon["hp_max"])
}

func TestDocumentEmptyRoster(t *testing.T) {
	raw := EncodeSnapshot(model.GameSnapshot{}, false)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	// An empty roster is the empty-sequence form, never a map.
	party, ok := doc["party"].([]any)
	require.True(t, ok)
	assert.Empty(t, party)
	assert.Contains(t, string(raw), `"party": []`)
}

func TestDocumentDexIDs(t *testing.T) {
	snap := model.GameSnapshot{
		Dex: model.DexState{Seen: 2, Caught: 1, SeenIDs: []uint16{1, 11}, CaughtIDs: []uint16{386}},
	}
	raw := EncodeSnapshot(snap, true)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, []any{float64(1), float64(11)}, doc["seen_ids"])
	assert.Equal(t, []any{float64(386)}, doc["caught_ids"])
}
