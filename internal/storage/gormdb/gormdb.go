// Package gormdb persists published snapshots to SQL: a single-row live
// feed the dashboard polls, a per-run sessions table with play counters,
// and an append-only snapshots history. Postgres is preferred, with a
// SQLite fallback when it is unreachable.
package gormdb

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retrosnap/firered/internal/model"
)

// LiveFeed is the single row (id = 1) holding the latest canonical
// snapshot document.
type LiveFeed struct {
	ID        uint   `gorm:"primaryKey"`
	Data      string `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (LiveFeed) TableName() string { return "live_feed" }

// Session is one run of the sampler, with cumulative play counters.
type Session struct {
	ID            uint `gorm:"primaryKey"`
	StartedAt     time.Time
	EndedAt       *time.Time
	Ticks         uint64
	Badges        int
	PokemonCaught int
	Whiteouts     int
	DurationSecs  int
}

// SnapshotRow is one history row per published snapshot.
type SnapshotRow struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`
	Tick      uint64
	MapID     uint8
	Money     uint32
	Badges    int
	PartySize int
	DexSeen   int
	DexCaught int
	InBattle  uint8
	Dropped   int
	CreatedAt time.Time
}

func (SnapshotRow) TableName() string { return "snapshots" }

// Backend is the SQL snapshot sink.
type Backend struct {
	Logger     zerolog.Logger
	SqlitePath string

	db      *gorm.DB
	local   bool
	session Session

	// whiteout edge detection on the outcome code
	lastOutcome uint8
	whiteouts   int
}

// New creates a SQL sink. SqlitePath selects the fallback database file;
// empty means in-memory.
func New(log zerolog.Logger) *Backend {
	return &Backend{Logger: log}
}

// Init connects, migrates the schema, seeds the live feed row and opens a
// new session.
func (b *Backend) Init() error {
	if b.db == nil {
		if err := b.connect(); err != nil {
			return err
		}
	}

	if err := b.db.AutoMigrate(&LiveFeed{}, &Session{}, &SnapshotRow{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	// Seed the single live feed row if missing.
	seed := LiveFeed{ID: 1, Data: "{}"}
	if err := b.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return fmt.Errorf("seeding live feed: %w", err)
	}

	b.session = Session{StartedAt: time.Now()}
	if err := b.db.Create(&b.session).Error; err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	b.Logger.Info().Uint("session", b.session.ID).Bool("local", b.local).
		Msg("SQL sink initialized")

	return nil
}

// WriteSnapshot upserts the live feed, appends a history row and refreshes
// the session counters.
func (b *Backend) WriteSnapshot(rec *model.SnapshotRecord) error {
	if b.db == nil {
		return fmt.Errorf("sql sink not initialized")
	}

	feed := LiveFeed{ID: 1, Data: string(rec.Canonical), UpdatedAt: rec.Time}
	if err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&feed).Error; err != nil {
		return fmt.Errorf("upserting live feed: %w", err)
	}

	row := SnapshotRow{
		SessionID: b.session.ID,
		Tick:      rec.Tick,
		MapID:     rec.Snapshot.Player.MapID,
		Money:     rec.Snapshot.Player.Money,
		Badges:    rec.Snapshot.Player.BadgeCount,
		PartySize: len(rec.Snapshot.Roster),
		DexSeen:   rec.Snapshot.Dex.Seen,
		DexCaught: rec.Snapshot.Dex.Caught,
		InBattle:  uint8(rec.Snapshot.Battle.Phase),
		Dropped:   rec.Dropped,
		CreatedAt: rec.Time,
	}
	if err := b.db.Create(&row).Error; err != nil {
		return fmt.Errorf("appending snapshot row: %w", err)
	}

	// A whiteout is the LOST outcome edge, not every tick it stays set.
	if rec.Snapshot.Battle.Outcome == model.OutcomeLost && b.lastOutcome != model.OutcomeLost {
		b.whiteouts++
	}
	b.lastOutcome = rec.Snapshot.Battle.Outcome

	updates := map[string]any{
		"ticks":          rec.Tick,
		"badges":         rec.Snapshot.Player.BadgeCount,
		"pokemon_caught": rec.Snapshot.Dex.Caught,
		"whiteouts":      b.whiteouts,
		"duration_secs":  int(time.Since(b.session.StartedAt).Seconds()),
	}
	if err := b.db.Model(&Session{}).Where("id = ?", b.session.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("updating session: %w", err)
	}

	return nil
}

// Close stamps the session end and releases the connection.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}

	now := time.Now()
	updates := map[string]any{
		"ended_at":      &now,
		"duration_secs": int(now.Sub(b.session.StartedAt).Seconds()),
	}
	if err := b.db.Model(&Session{}).Where("id = ?", b.session.ID).Updates(updates).Error; err != nil {
		b.Logger.Warn().Err(err).Msg("Failed to end session")
	}
	b.Logger.Info().Uint("session", b.session.ID).Msg("Session ended")

	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
