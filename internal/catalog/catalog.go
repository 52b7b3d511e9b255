// ABOUTME: Immutable six-week training curriculum lookup.
// ABOUTME: Entries are compiled in and keyed by (week, day).
package catalog

import (
	"strconv"
	"strings"
)

const (
	// Weeks is the number of weeks in the program.
	Weeks = 6
	// DaysPerWeek is the number of training days per week.
	DaysPerWeek = 5

	// DefaultNominalMinutes is used when a duration string has no
	// leading integer token.
	DefaultNominalMinutes = 75
)

// Entry describes one planned training session.
type Entry struct {
	Focus        string   `json:"focus"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Warmup       []string `json:"warmup"`
	Technical    []string `json:"technical"`
	Combos       []string `json:"combos"`
	Bagwork      []string `json:"bagwork"`
	Conditioning []string `json:"conditioning"`
	Recovery     []string `json:"recovery"`
}

// Section is one labeled exercise list within an entry.
type Section struct {
	Label string
	Items []string
}

// Sections returns the entry's exercise lists in canonical order.
// Empty sections are included; callers skip them when rendering.
func (e *Entry) Sections() []Section {
	return []Section{
		{"WARM-UP", e.Warmup},
		{"TECHNICAL WORK", e.Technical},
		{"COMBINATIONS", e.Combos},
		{"BAG WORK", e.Bagwork},
		{"CONDITIONING", e.Conditioning},
		{"RECOVERY", e.Recovery},
	}
}

// Get looks up the session plan for a (week, day) pair.
func Get(week, day int) (*Entry, bool) {
	if week < 1 || week > Weeks || day < 1 || day > DaysPerWeek {
		return nil, false
	}
	return &program[week-1][day-1], true
}

// Key identifies one session in the fixed iteration order.
type Key struct {
	Week int
	Day  int
}

// Keys returns every (week, day) pair in fixed order: week 1..6, day 1..5.
func Keys() []Key {
	keys := make([]Key, 0, Weeks*DaysPerWeek)
	for week := 1; week <= Weeks; week++ {
		for day := 1; day <= DaysPerWeek; day++ {
			keys = append(keys, Key{Week: week, Day: day})
		}
	}
	return keys
}

// NominalMinutes parses the nominal session length from a free-text
// duration range: the first integer token before a separator.
// "60-75 minutes" parses to 60.
func NominalMinutes(duration string) int {
	token := duration
	for _, sep := range []string{"-", " "} {
		if i := strings.Index(token, sep); i >= 0 {
			token = token[:i]
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n <= 0 {
		return DefaultNominalMinutes
	}
	return n
}
