package plan

import (
	"fmt"
	"strings"
)

// Catalog is the immutable in-memory exercise registry. It is built once at
// startup and is safe for concurrent reads. All query results preserve catalog
// insertion order so that downstream stable sorts break ties deterministically.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
}

// trivialEquipment lists equipment markers that every location is assumed to
// provide, so they never gate an exercise out.
var trivialEquipment = map[string]struct{}{
	"bodyweight":     {},
	"none":           {},
	"mat":            {},
	"exercise mat":   {},
	"yoga mat":       {},
	"open space":     {},
	"wall":           {},
	"chair":          {},
	"towel":          {},
	"water bottle":   {},
	"sturdy surface": {},
}

// NewCatalog builds a catalog from the given exercises, rejecting duplicate
// IDs. The input slice is copied; the catalog never mutates after construction.
func NewCatalog(exercises []Exercise) (*Catalog, error) {
	c := &Catalog{
		exercises: make([]Exercise, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
	}
	copy(c.exercises, exercises)
	for i, ex := range c.exercises {
		if ex.ID == "" {
			return nil, fmt.Errorf("exercise %q has empty id", ex.Name)
		}
		if _, ok := c.byID[ex.ID]; ok {
			return nil, fmt.Errorf("duplicate exercise id: %s", ex.ID)
		}
		c.byID[ex.ID] = i
	}
	return c, nil
}

// DefaultCatalog builds the built-in catalog. It panics on a malformed data
// table, which can only happen from a programming error in catalog_data.go.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultExercises())
	if err != nil {
		panic(fmt.Sprintf("built-in exercise catalog is malformed: %v", err))
	}
	return c
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// All returns every exercise in insertion order.
func (c *Catalog) All() []Exercise {
	out := make([]Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// Get looks up a single exercise by ID.
func (c *Catalog) Get(id string) (Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[i], true
}

// ByTargetArea returns every exercise whose target areas intersect the given
// areas, in insertion order. The wildcard area "Full Body" matches the whole
// catalog. An empty result is valid and must be handled by callers.
func (c *Catalog) ByTargetArea(areas []string, _ Location) []Exercise {
	for _, area := range areas {
		if strings.EqualFold(area, FullBodyArea) {
			return c.All()
		}
	}
	var out []Exercise
	for _, ex := range c.exercises {
		if intersectsFold(ex.TargetAreas, areas) {
			out = append(out, ex)
		}
	}
	return out
}

// ByEquipment returns the exercises doable with the available equipment, in
// insertion order. A large gym is assumed to have everything, bypassing the
// filter entirely. Equipment membership is exact case-insensitive string
// matching, never fuzzy.
func (c *Catalog) ByEquipment(available []string, location Location) []Exercise {
	if location == LocationLargeGym {
		return c.All()
	}
	have := make(map[string]struct{}, len(available))
	for _, item := range available {
		have[strings.ToLower(item)] = struct{}{}
	}
	var out []Exercise
	for _, ex := range c.exercises {
		if equipmentSatisfied(ex.Equipment, have) {
			out = append(out, ex)
		}
	}
	return out
}

func equipmentSatisfied(required []string, have map[string]struct{}) bool {
	allTrivial := true
	for _, item := range required {
		if _, ok := trivialEquipment[strings.ToLower(item)]; !ok {
			allTrivial = false
			break
		}
	}
	if len(required) == 0 || allTrivial {
		return true
	}
	for _, item := range required {
		if _, ok := have[strings.ToLower(item)]; !ok {
			return false
		}
	}
	return true
}

// IsContraindicated reports whether any of the user's conditions matches any
// of the exercise's contraindications. Matching is case-insensitive substring
// containment in either direction. The sentinel condition list ["None"] and an
// empty list never match anything.
//
// This is deliberately loose (recall over precision): there is no negation
// handling or clinical ontology here, and "no back pain" still matches
// "back pain". The substring semantics must not be replaced with token-set
// overlap, which matches materially differently.
func (c *Catalog) IsContraindicated(ex Exercise, conditions []string) bool {
	if len(conditions) == 0 {
		return false
	}
	if len(conditions) == 1 && strings.EqualFold(conditions[0], NoConditions) {
		return false
	}
	for _, cond := range conditions {
		lowerCond := strings.ToLower(cond)
		for _, contra := range ex.Contraindications {
			lowerContra := strings.ToLower(contra)
			if strings.Contains(lowerCond, lowerContra) || strings.Contains(lowerContra, lowerCond) {
				return true
			}
		}
	}
	return false
}

func intersectsFold(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}
