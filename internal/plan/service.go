package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mlintula/fitplan/internal/sqlite"
)

// Service handles the business logic for plan generation and storage.
type Service struct {
	planner    *Planner
	repo       planRepository
	guidelines GuidelineLookup
	generator  textGenerator
	logger     *slog.Logger
}

// NewService creates a plan service backed by the database. An empty OpenAI
// API key disables the remote path entirely; every day is then composed
// locally.
func NewService(db *sqlite.Database, logger *slog.Logger, openaiAPIKey string) *Service {
	var generator textGenerator
	if openaiAPIKey != "" {
		generator = newOpenAIGenerator(openaiAPIKey)
	}
	return &Service{
		planner:    NewPlanner(DefaultCatalog(), logger),
		repo:       newSQLitePlanRepository(db),
		guidelines: NewSQLiteGuidelineLookup(db),
		generator:  generator,
		logger:     logger,
	}
}

// NewMemoryService creates a fully local plan service with no database and no
// remote generator.
func NewMemoryService(logger *slog.Logger) *Service {
	return &Service{
		planner:    NewPlanner(DefaultCatalog(), logger),
		repo:       newMemoryPlanRepository(),
		guidelines: NewNoopGuidelineLookup(),
		generator:  nil,
		logger:     logger,
	}
}

// GenerateWeek validates the profile, composes the full plan and stores it
// under the given token. Each day first tries the remote generator; on
// failure that day alone falls back to the local composition, so the user
// never sees a remote error. Days are generated strictly in order.
func (s *Service) GenerateWeek(ctx context.Context, token string, profile Profile) (WeekPlan, error) {
	week, err := s.planner.ComposeWeek(ctx, profile)
	if err != nil {
		return WeekPlan{}, fmt.Errorf("generate week: %w", err)
	}

	if s.generator != nil {
		for i := range week.Days {
			narrative, err := s.generator.Generate(ctx, buildDayPrompt(profile, week.Days[i].DayName, i))
			if err != nil {
				s.logger.LogAttrs(ctx, slog.LevelWarn, "remote day generation failed, using local plan",
					slog.String("day", week.Days[i].DayName),
					slog.Any("error", err))
				continue
			}
			week.Days[i].Narrative = narrative
		}
	}

	week.Advisories = s.lookupAdvisories(ctx, profile)

	if err := s.repo.Put(ctx, token, week); err != nil {
		return WeekPlan{}, fmt.Errorf("store plan: %w", err)
	}
	return week, nil
}

// GetWeek retrieves the stored plan for a token. Returns ErrPlanNotFound when
// the visitor has not generated a plan yet.
func (s *Service) GetWeek(ctx context.Context, token string) (WeekPlan, error) {
	week, err := s.repo.Get(ctx, token)
	if err != nil {
		return WeekPlan{}, fmt.Errorf("get plan: %w", err)
	}
	return week, nil
}

// RegenerateWeek re-runs generation for the profile of the stored plan.
func (s *Service) RegenerateWeek(ctx context.Context, token string) (WeekPlan, error) {
	week, err := s.repo.Get(ctx, token)
	if err != nil {
		return WeekPlan{}, fmt.Errorf("get plan for regeneration: %w", err)
	}
	regenerated, err := s.GenerateWeek(ctx, token, week.Profile)
	if err != nil {
		return WeekPlan{}, fmt.Errorf("regenerate week: %w", err)
	}
	return regenerated, nil
}

// DeleteWeek removes the stored plan for a token.
func (s *Service) DeleteWeek(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// lookupAdvisories enriches the plan with condition guidelines. Lookup
// failures are logged and skipped: guidelines are advisory and must never
// block plan generation.
func (s *Service) lookupAdvisories(ctx context.Context, profile Profile) []string {
	if profile.HasNoConditions() {
		return nil
	}
	var advisories []string
	seen := make(map[string]struct{})
	for _, condition := range profile.MedicalConditions {
		guideline, found, err := s.guidelines.Lookup(ctx, condition)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "guideline lookup failed",
				slog.String("condition", condition),
				slog.Any("error", err))
			continue
		}
		if !found {
			continue
		}
		if _, ok := seen[guideline.Condition]; ok {
			continue
		}
		seen[guideline.Condition] = struct{}{}
		advisories = append(advisories, fmt.Sprintf("%s: %s", guideline.Condition, guideline.Advice))
	}
	return advisories
}
