package registry

import "testing"

var catalogue = []GameInfo{
	{ID: "racing1", Title: "Highway Dodge", Category: CategoryRacing, Description: "Steer around traffic"},
	{ID: "racing2", Title: "Coin Rush", Category: CategoryRacing, Description: "Collect coins as the road speeds up"},
	{ID: "math1", Title: "Quick Math", Category: CategoryMath, Description: "Solve sums before time runs out"},
	{ID: "puzzle1", Title: "Memory Match", Category: CategoryPuzzle, Description: "Find all eight pairs"},
}

func ids(games []GameInfo) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		term     string
		expected []string
	}{
		{"all categories", CategoryAll, "", []string{"racing1", "racing2", "math1", "puzzle1"}},
		{"empty category means all", "", "", []string{"racing1", "racing2", "math1", "puzzle1"}},
		{"racing only", CategoryRacing, "", []string{"racing1", "racing2"}},
		{"no match in category", CategoryAction, "", nil},
		{"title search is case-insensitive", CategoryAll, "MEMORY", []string{"puzzle1"}},
		{"description search", CategoryAll, "coins", []string{"racing2"}},
		{"category search", CategoryAll, "math", []string{"math1"}},
		{"category and term combine", CategoryRacing, "traffic", []string{"racing1"}},
		{"term outside category", CategoryPuzzle, "coins", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(catalogue, tc.category, tc.term))
			if len(got) != len(tc.expected) {
				t.Fatalf("Filter() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Filter()[%d] = %s, expected %s", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory(" Racing "); !ok || c != CategoryRacing {
		t.Errorf("ParseCategory(Racing) = %q, %v", c, ok)
	}
	if c, ok := ParseCategory(""); !ok || c != CategoryAll {
		t.Errorf("ParseCategory(\"\") = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("sports"); ok {
		t.Error("unknown category should not parse")
	}
}
