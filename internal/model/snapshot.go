// Package model defines the decoded game state types shared by the decoder
// and every publish sink.
package model

import (
	"fmt"
	"strings"

	"github.com/retrosnap/firered/internal/names"
)

// BattlePhase classifies the current battle, if any.
type BattlePhase uint8

const (
	PhaseNone BattlePhase = iota
	PhaseWild
	PhaseTrainer
)

func (p BattlePhase) String() string {
	switch p {
	case PhaseWild:
		return "wild"
	case PhaseTrainer:
		return "trainer"
	default:
		return "none"
	}
}

// Battle outcome codes, passed through from the game unmodified.
const (
	OutcomeOngoing  uint8 = 0
	OutcomeWon      uint8 = 1
	OutcomeLost     uint8 = 2
	OutcomeFled     uint8 = 4
	OutcomeCaptured uint8 = 7
)

// PlayerState holds the unencrypted overworld fields.
type PlayerState struct {
	X          int16
	Y          int16
	MapID      uint8
	Money      uint32
	Badges     uint8
	BadgeCount int
}

// RosterRecord is one decoded and validated party member. The PID/OTID pair
// used to decrypt it is deliberately not retained here.
type RosterRecord struct {
	Species    uint16
	Experience uint32
	Abilities  [4]uint16 // 0 = empty slot
	Level      uint8
	HP         uint16
	MaxHP      uint16
	Status     uint32
}

// BattleState is the classified phase plus the raw outcome code.
type BattleState struct {
	Phase   BattlePhase
	Outcome uint8
}

// InBattle reports whether a battle is actually in progress.
func (b BattleState) InBattle() bool {
	return b.Phase != PhaseNone
}

// DexState holds the seen/caught population counts and, when id tracking is
// enabled, the explicit species id sets.
type DexState struct {
	Seen      int
	Caught    int
	SeenIDs   []uint16
	CaughtIDs []uint16
}

// GameSnapshot is one immutable decoded state, produced once per sampling
// tick and superseded wholesale by the next one.
type GameSnapshot struct {
	Player PlayerState
	Roster []RosterRecord
	Battle BattleState
	Dex    DexState
}

// Summary renders a short human-readable digest of the snapshot, one party
// member per line, suitable for logs and the dashboard.
func (s GameSnapshot) Summary() string {
	var lines []string
	if len(s.Roster) == 0 {
		lines = append(lines, "Party (0 Pokemon):")
	} else {
		lines = append(lines, fmt.Sprintf("Party (%d Pokemon):", len(s.Roster)))
		for i, mon := range s.Roster {
			var moves []string
			for _, id := range mon.Abilities {
				if id > 0 {
					moves = append(moves, names.Move(id))
				}
			}
			status := names.StatusLabel(mon.Status)
			statusStr := ""
			if status != "OK" {
				statusStr = " (" + status + ")"
			}
			lines = append(lines, fmt.Sprintf("  %d. %s Lv.%d HP:%d/%d [%s]%s",
				i+1, names.Species(mon.Species), mon.Level, mon.HP, mon.MaxHP,
				strings.Join(moves, ", "), statusStr))
		}
	}

	lines = append(lines, fmt.Sprintf("Location: Map %d | Badges: %d | Money: %d | Pokedex: %d seen, %d caught",
		s.Player.MapID, s.Player.BadgeCount, s.Player.Money, s.Dex.Seen, s.Dex.Caught))

	if s.Battle.InBattle() {
		lines = append(lines, fmt.Sprintf("IN BATTLE (%s)", s.Battle.Phase))
	}
	return strings.Join(lines, "\n")
}
