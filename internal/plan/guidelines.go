package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlintula/fitplan/internal/sqlite"
)

// Guideline is condition-specific training advice from the guideline table.
type Guideline struct {
	Condition string
	Advice    string
}

// GuidelineLookup resolves condition names to training guidelines. The engine
// must function correctly with zero guideline data, so a lookup miss is never
// an error; guidelines only enrich the plan's advisory footer.
type GuidelineLookup interface {
	Lookup(ctx context.Context, condition string) (Guideline, bool, error)
}

// sqliteGuidelineLookup reads guidelines from the database.
type sqliteGuidelineLookup struct {
	db *sqlite.Database
}

// NewSQLiteGuidelineLookup creates a guideline lookup backed by the database.
func NewSQLiteGuidelineLookup(db *sqlite.Database) GuidelineLookup {
	return &sqliteGuidelineLookup{db: db}
}

// Lookup matches a condition case-insensitively by substring in either
// direction, consistent with how contraindications are matched.
func (l *sqliteGuidelineLookup) Lookup(ctx context.Context, condition string) (Guideline, bool, error) {
	var g Guideline
	err := l.db.ReadOnly.QueryRowContext(ctx, `
		SELECT condition_name, advice
		FROM guidelines
		WHERE instr(lower(?), lower(condition_name)) > 0
		   OR instr(lower(condition_name), lower(?)) > 0
		ORDER BY length(condition_name) DESC
		LIMIT 1`, condition, condition).Scan(&g.Condition, &g.Advice)
	if errors.Is(err, sql.ErrNoRows) {
		return Guideline{}, false, nil
	}
	if err != nil {
		return Guideline{}, false, fmt.Errorf("query guideline: %w", err)
	}
	return g, true, nil
}

// noopGuidelineLookup never finds anything. Used when no database is wired in.
type noopGuidelineLookup struct{}

// NewNoopGuidelineLookup creates a lookup that always misses.
func NewNoopGuidelineLookup() GuidelineLookup {
	return noopGuidelineLookup{}
}

func (noopGuidelineLookup) Lookup(context.Context, string) (Guideline, bool, error) {
	return Guideline{}, false, nil
}
