package plan

import "sort"

// safetyFallbackCount is how many catalog entries (in insertion order) make up
// the generic fallback when no exercise passes the contraindication filter.
const safetyFallbackCount = 5

// mainExerciseCount derives the day's main exercise cap from the session
// duration band: 4 for the shortest band, 5 for every longer one. The same
// policy applies to the local and remote generation paths.
func mainExerciseCount(sessionMinutes int) int {
	if sessionMinutes == SessionThirtyMinutes {
		return 4
	}
	return 5
}

// selectForDay picks the ranked main exercises for one training day. The
// selection is deterministic and never fails: an empty candidate pool widens
// to the full catalog, and when no exercise is medically safe the result falls
// back to a generic catalog subset with the returned flag set so callers can
// surface a disclaimer.
func (c *Catalog) selectForDay(profile Profile, focusArea string) (exercises []Exercise, safetyFallback bool) {
	candidates := intersectByID(
		c.ByTargetArea([]string{focusArea}, profile.Location),
		c.ByEquipment(profile.Equipment, profile.Location),
	)
	if len(candidates) == 0 {
		candidates = c.ByEquipment(profile.Equipment, profile.Location)
	}
	if len(candidates) == 0 {
		candidates = c.All()
	}

	var safe []Exercise
	for _, ex := range candidates {
		if !c.IsContraindicated(ex, profile.MedicalConditions) {
			safe = append(safe, ex)
		}
	}
	if len(safe) == 0 {
		// Refusing to generate anything is worse than a generic plan, but a
		// plan with no medically verified exercise must be distinguishable.
		safe = c.All()
		if len(safe) > safetyFallbackCount {
			safe = safe[:safetyFallbackCount]
		}
		safetyFallback = true
	}

	// Stable sort: rating ties keep catalog insertion order.
	sort.SliceStable(safe, func(i, j int) bool {
		return safe[i].Rating > safe[j].Rating
	})

	if n := mainExerciseCount(profile.SessionMinutes); len(safe) > n {
		safe = safe[:n]
	}
	return safe, safetyFallback
}

// intersectByID keeps the entries of a that also appear in b, preserving a's
// order.
func intersectByID(a, b []Exercise) []Exercise {
	inB := make(map[string]struct{}, len(b))
	for _, ex := range b {
		inB[ex.ID] = struct{}{}
	}
	var out []Exercise
	for _, ex := range a {
		if _, ok := inB[ex.ID]; ok {
			out = append(out, ex)
		}
	}
	return out
}
