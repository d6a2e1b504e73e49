package registry

import "strings"

// Filter returns the games shown on the card grid for a category and a
// search term. CategoryAll (or an empty category) shows every category.
// The term matches case-insensitively against title, description and
// category; an empty term matches everything.
func Filter(games []GameInfo, category Category, term string) []GameInfo {
	term = strings.ToLower(strings.TrimSpace(term))

	var out []GameInfo
	for _, g := range games {
		if category != "" && category != CategoryAll && g.Category != category {
			continue
		}
		if term != "" && !matches(g, term) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func matches(g GameInfo, term string) bool {
	return strings.Contains(strings.ToLower(g.Title), term) ||
		strings.Contains(strings.ToLower(g.Description), term) ||
		strings.Contains(string(g.Category), term)
}

// ParseCategory converts user input to a Category.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryAll, true
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
