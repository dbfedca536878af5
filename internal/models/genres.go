package models

import "strings"

// Genres are persisted as a single comma-delimited column, the way the
// multi-select form field submits them.

// JoinGenres flattens the selected genres into the stored representation.
func JoinGenres(genres []string) string {
	var kept []string
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			kept = append(kept, g)
		}
	}
	return strings.Join(kept, ",")
}

// SplitGenres expands the stored column back into a list for display.
func SplitGenres(stored string) []string {
	if strings.TrimSpace(stored) == "" {
		return []string{}
	}
	parts := strings.Split(stored, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
