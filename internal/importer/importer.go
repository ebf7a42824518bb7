// Package importer loads the player catalog from the source CSV. It runs
// once against an empty catalog; populated catalogs are left untouched.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"team-builder-service/internal/model"
)

// PlayerCatalog is the subset of the player repository the importer needs.
type PlayerCatalog interface {
	Count(ctx context.Context) (int64, error)
	InsertPlayers(ctx context.Context, players []model.Player) error
}

// TransactionManager runs a function inside a storage transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Importer parses the source CSV and loads it in one transaction.
type Importer struct {
	catalog   PlayerCatalog
	txManager TransactionManager
	log       *slog.Logger
}

// New creates an importer.
func New(catalog PlayerCatalog, txManager TransactionManager, log *slog.Logger) *Importer {
	return &Importer{catalog: catalog, txManager: txManager, log: log}
}

// PositionForHeight derives the position label from a player's height in
// centimeters. The thresholds are fixed; the label is assigned once at import
// and never recomputed.
func PositionForHeight(height float64) string {
	switch {
	case height <= 180.0:
		return "Base"
	case height <= 190.0:
		return "Escolta"
	case height <= 200.9:
		return "Alero"
	case height <= 210.0:
		return "Ala-pívot"
	default:
		return "Pívot"
	}
}

// Run parses the CSV and inserts every row as a single atomic write. It
// returns the number of imported players; zero when the catalog was already
// populated and the import was skipped.
func (i *Importer) Run(ctx context.Context, r io.Reader) (int, error) {
	n, err := i.catalog.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	if n > 0 {
		i.log.Info("catalog already populated, skipping import", slog.Int64("players", n))
		return 0, nil
	}

	players, err := ParseCSV(r)
	if err != nil {
		return 0, err
	}

	err = i.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return i.catalog.InsertPlayers(ctx, players)
	})
	if err != nil {
		return 0, fmt.Errorf("import players: %w", err)
	}

	i.log.Info("catalog imported", slog.Int("players", len(players)))
	return len(players), nil
}

// Source CSV columns. Numeric values may use a decimal comma.
var requiredColumns = []string{
	"player_name", "team_abbreviation", "age", "player_height",
	"college", "country", "gp", "pts", "reb", "ast", "net_rating",
	"oreb_pct", "dreb_pct", "usg_pct", "ts_pct", "ast_pct", "season",
}

// ParseCSV reads the source catalog and returns one Player per record with
// the position derived from height.
func ParseCSV(r io.Reader) ([]model.Player, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("csv is missing column %q", col)
		}
	}

	players := make([]model.Player, 0)
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		line++

		p, err := playerFromRecord(record, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		players = append(players, p)
	}

	return players, nil
}

func playerFromRecord(record []string, idx map[string]int) (model.Player, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[idx[name]])
	}

	var p model.Player
	var err error

	p.Name = field("player_name")
	p.Team = field("team_abbreviation")
	p.College = field("college")
	p.Country = field("country")
	p.Season = field("season")

	if p.GamesPlayed, err = strconv.Atoi(field("gp")); err != nil {
		return model.Player{}, fmt.Errorf("gp: %w", err)
	}

	numeric := []struct {
		col string
		dst *float64
	}{
		{"age", &p.Age},
		{"player_height", &p.Height},
		{"pts", &p.PointsPerGame},
		{"reb", &p.ReboundsPerGame},
		{"ast", &p.AssistsPerGame},
		{"net_rating", &p.NetRating},
		{"oreb_pct", &p.OffensiveReboundPct},
		{"dreb_pct", &p.DefensiveReboundPct},
		{"usg_pct", &p.UsagePct},
		{"ts_pct", &p.TrueShootingPct},
		{"ast_pct", &p.AssistPct},
	}
	for _, n := range numeric {
		if *n.dst, err = parseDecimal(field(n.col)); err != nil {
			return model.Player{}, fmt.Errorf("%s: %w", n.col, err)
		}
	}

	p.Position = PositionForHeight(p.Height)
	return p, nil
}

// parseDecimal accepts both dot and European comma decimal separators.
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
