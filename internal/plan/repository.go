package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mlintula/fitplan/internal/sqlite"
)

// ErrPlanNotFound is returned when no plan is stored for a token.
var ErrPlanNotFound = errors.New("plan not found")

// planRepository persists generated plans keyed by an opaque per-visitor
// token. Plans are stored as JSON: they are read back only to re-render or
// regenerate, never queried field by field.
type planRepository interface {
	Get(ctx context.Context, token string) (WeekPlan, error)
	Put(ctx context.Context, token string, week WeekPlan) error
	Delete(ctx context.Context, token string) error
}

type sqlitePlanRepository struct {
	db *sqlite.Database
}

func newSQLitePlanRepository(db *sqlite.Database) *sqlitePlanRepository {
	return &sqlitePlanRepository{db: db}
}

func (r *sqlitePlanRepository) Get(ctx context.Context, token string) (WeekPlan, error) {
	var data []byte
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT plan_json FROM plans WHERE token = ?`, token).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return WeekPlan{}, ErrPlanNotFound
	}
	if err != nil {
		return WeekPlan{}, fmt.Errorf("query plan: %w", err)
	}
	var week WeekPlan
	if err := json.Unmarshal(data, &week); err != nil {
		return WeekPlan{}, fmt.Errorf("unmarshal plan: %w", err)
	}
	return week, nil
}

func (r *sqlitePlanRepository) Put(ctx context.Context, token string, week WeekPlan) error {
	data, err := json.Marshal(week)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO plans (token, plan_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (token) DO UPDATE SET
			plan_json = excluded.plan_json,
			updated_at = excluded.updated_at`,
		token, data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *sqlitePlanRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM plans WHERE token = ?`, token); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// memoryPlanRepository is an in-memory repository for tests and for running
// without a database.
type memoryPlanRepository struct {
	mu    sync.Mutex
	plans map[string]WeekPlan
}

func newMemoryPlanRepository() *memoryPlanRepository {
	return &memoryPlanRepository{plans: make(map[string]WeekPlan)}
}

func (r *memoryPlanRepository) Get(_ context.Context, token string) (WeekPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	week, ok := r.plans[token]
	if !ok {
		return WeekPlan{}, ErrPlanNotFound
	}
	return week, nil
}

func (r *memoryPlanRepository) Put(_ context.Context, token string, week WeekPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[token] = week
	return nil
}

func (r *memoryPlanRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, token)
	return nil
}
