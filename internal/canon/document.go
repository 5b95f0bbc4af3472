package canon

import "github.com/retrosnap/firered/internal/model"

// Document builds the published value tree for one snapshot. The key set
// and member order are the consumer contract: unavailable regions appear as
// explicit zero/empty defaults, never as missing keys. The optional dex id
// sequences are appended only when withDexIDs is set, matching whether id
// tracking was enabled for the decode.
func Document(s model.GameSnapshot, withDexIDs bool) Value {
	members := []Member{
		Field("player_x", Int(int64(s.Player.X))),
		Field("player_y", Int(int64(s.Player.Y))),
		Field("map_id", Uint(uint64(s.Player.MapID))),
		Field("money", Uint(uint64(s.Player.Money))),
		Field("badges", Uint(uint64(s.Player.Badges))),
		Field("badge_count", Int(int64(s.Player.BadgeCount))),
		Field("in_battle", Uint(uint64(s.Battle.Phase))),
		Field("battle_outcome", Uint(uint64(s.Battle.Outcome))),
		Field("party", rosterValue(s.Roster)),
		Field("pokedex_seen", Int(int64(s.Dex.Seen))),
		Field("pokedex_caught", Int(int64(s.Dex.Caught))),
	}
	if withDexIDs {
		members = append(members,
			Field("seen_ids", idSequence(s.Dex.SeenIDs)),
			Field("caught_ids", idSequence(s.Dex.CaughtIDs)),
		)
	}
	return Map(members...)
}

// EncodeSnapshot is the one-call form used by the publish path.
func EncodeSnapshot(s model.GameSnapshot, withDexIDs bool) []byte {
	return Encode(Document(s, withDexIDs))
}

func rosterValue(roster []model.RosterRecord) Value {
	items := make([]Value, 0, len(roster))
	for _, rec := range roster {
		moves := make([]Value, 0, len(rec.Abilities))
		for _, id := range rec.Abilities {
			moves = append(moves, Uint(uint64(id)))
		}
		items = append(items, Map(
			Field("species", Uint(uint64(rec.Species))),
			Field("xp", Uint(uint64(rec.Experience))),
			Field("moves", Sequence(moves...)),
			Field("level", Uint(uint64(rec.Level))),
			Field("hp_current", Uint(uint64(rec.HP))),
			Field("hp_max", Uint(uint64(rec.MaxHP))),
			Field("status", Uint(uint64(rec.Status))),
		))
	}
	return Sequence(items...)
}

func idSequence(ids []uint16) Value {
	items := make([]Value, 0, len(ids))
	for _, id := range ids {
		items = append(items, Uint(uint64(id)))
	}
	return Sequence(items...)
}
