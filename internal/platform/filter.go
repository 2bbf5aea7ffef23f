package platform

import (
	"errors"
	"strings"
)

// ErrNoWindow is returned when no visible window matches the given keywords.
var ErrNoWindow = errors.New("no matching window found")

// MatchTitle reports whether the title contains the keyword,
// case-insensitively.
func MatchTitle(title, keyword string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(keyword))
}

// FilterByTitle returns the windows whose title contains any of the keywords.
func FilterByTitle(windows []Window, keywords []string) []Window {
	var matched []Window
	for _, w := range windows {
		for _, k := range keywords {
			if MatchTitle(w.Title, k) {
				matched = append(matched, w)
				break
			}
		}
	}
	return matched
}

// FindWindow tries each keyword in priority order and returns the first
// window whose title matches. Returns ErrNoWindow when nothing matches.
func FindWindow(backend Backend, keywords []string) (Window, error) {
	windows, err := backend.ListWindows()
	if err != nil {
		return Window{}, err
	}

	for _, k := range keywords {
		for _, w := range windows {
			if MatchTitle(w.Title, k) {
				return w, nil
			}
		}
	}

	return Window{}, ErrNoWindow
}
