package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func exerciseIDs(exercises []Exercise) []string {
	var ids []string
	for _, ex := range exercises {
		ids = append(ids, ex.ID)
	}
	return ids
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog([]Exercise{
		{ID: "crunch", Name: "Crunch", TargetAreas: []string{"Core"},
			Contraindications: []string{"acute lower back pain"}, Equipment: []string{"Mat"}, Rating: 4.0},
		{ID: "bird-dog", Name: "Bird Dog", TargetAreas: []string{"Core"},
			Equipment: []string{"Mat"}, Rating: 4.2},
		{ID: "bench-press", Name: "Bench Press", TargetAreas: []string{"Chest"},
			Contraindications: []string{"shoulder injury"}, Equipment: []string{"Barbell", "Bench"}, Rating: 4.6},
		{ID: "squat", Name: "Squat", TargetAreas: []string{"Legs"},
			Equipment: []string{"Bodyweight"}, Rating: 4.2},
	})
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return catalog
}

func TestNewCatalog_rejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Exercise{
		{ID: "squat", Name: "Squat"},
		{ID: "squat", Name: "Another Squat"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate exercise id")
	}
}

func TestCatalog_ByTargetArea(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		name    string
		areas   []string
		wantIDs []string
	}{
		{
			name:    "single area",
			areas:   []string{"Core"},
			wantIDs: []string{"crunch", "bird-dog"},
		},
		{
			name:    "full body wildcard returns everything",
			areas:   []string{"Full Body"},
			wantIDs: []string{"crunch", "bird-dog", "bench-press", "squat"},
		},
		{
			name:    "wildcard wins even alongside other areas",
			areas:   []string{"Core", "Full Body"},
			wantIDs: []string{"crunch", "bird-dog", "bench-press", "squat"},
		},
		{
			name:    "case-insensitive area match",
			areas:   []string{"core"},
			wantIDs: []string{"crunch", "bird-dog"},
		},
		{
			name:    "no match is a valid empty result",
			areas:   []string{"Neck"},
			wantIDs: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.ByTargetArea(tt.areas, LocationHome)
			if diff := cmp.Diff(tt.wantIDs, exerciseIDs(got)); diff != "" {
				t.Errorf("ByTargetArea mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalog_ByEquipment(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		name      string
		available []string
		location  Location
		wantIDs   []string
	}{
		{
			name:      "home with no equipment keeps only trivial-equipment exercises",
			available: nil,
			location:  LocationHome,
			wantIDs:   []string{"crunch", "bird-dog", "squat"},
		},
		{
			name:      "home with full equipment set",
			available: []string{"barbell", "bench"},
			location:  LocationHome,
			wantIDs:   []string{"crunch", "bird-dog", "bench-press", "squat"},
		},
		{
			name:      "partial equipment is not enough",
			available: []string{"Barbell"},
			location:  LocationHome,
			wantIDs:   []string{"crunch", "bird-dog", "squat"},
		},
		{
			name:      "large gym bypasses the filter entirely",
			available: nil,
			location:  LocationLargeGym,
			wantIDs:   []string{"crunch", "bird-dog", "bench-press", "squat"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.ByEquipment(tt.available, tt.location)
			if diff := cmp.Diff(tt.wantIDs, exerciseIDs(got)); diff != "" {
				t.Errorf("ByEquipment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalog_IsContraindicated(t *testing.T) {
	catalog := testCatalog(t)
	crunch, _ := catalog.Get("crunch")
	birdDog, _ := catalog.Get("bird-dog")

	tests := []struct {
		name       string
		exercise   Exercise
		conditions []string
		want       bool
	}{
		{
			name:       "empty conditions never match",
			exercise:   crunch,
			conditions: nil,
			want:       false,
		},
		{
			name:       "sentinel never matches",
			exercise:   crunch,
			conditions: []string{"None"},
			want:       false,
		},
		{
			name:       "sentinel is case-insensitive",
			exercise:   crunch,
			conditions: []string{"none"},
			want:       false,
		},
		{
			name:       "condition containing the contraindication",
			exercise:   crunch,
			conditions: []string{"very acute lower back pain since 2020"},
			want:       true,
		},
		{
			name:       "contraindication containing the condition",
			exercise:   crunch,
			conditions: []string{"back pain"},
			want:       true,
		},
		{
			name:       "matching is case-insensitive",
			exercise:   crunch,
			conditions: []string{"Acute Lower Back Pain"},
			want:       true,
		},
		{
			name:       "token overlap without substring relation does not match",
			exercise:   crunch,
			conditions: []string{"chronic lower back pain"},
			want:       false,
		},
		{
			name:       "exercise without contraindications never matches",
			exercise:   birdDog,
			conditions: []string{"acute lower back pain"},
			want:       false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.IsContraindicated(tt.exercise, tt.conditions)
			if got != tt.want {
				t.Errorf("IsContraindicated(%q, %v) = %v, want %v",
					tt.exercise.ID, tt.conditions, got, tt.want)
			}
		})
	}
}
