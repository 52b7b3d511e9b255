// ABOUTME: Tests for the compiled-in training curriculum.
// ABOUTME: Covers lookup bounds, iteration order, and duration parsing.
package catalog

import "testing"

func TestGetBounds(t *testing.T) {
	cases := []struct {
		week, day int
		ok        bool
	}{
		{1, 1, true},
		{6, 5, true},
		{3, 4, true},
		{0, 1, false},
		{1, 0, false},
		{7, 1, false},
		{1, 6, false},
		{-1, -1, false},
	}

	for _, tc := range cases {
		entry, ok := Get(tc.week, tc.day)
		if ok != tc.ok {
			t.Errorf("Get(%d, %d): expected ok=%v, got %v", tc.week, tc.day, tc.ok, ok)
		}
		if ok && entry == nil {
			t.Errorf("Get(%d, %d): expected entry, got nil", tc.week, tc.day)
		}
	}
}

func TestEveryEntryHasCoreFields(t *testing.T) {
	for week := 1; week <= Weeks; week++ {
		for day := 1; day <= DaysPerWeek; day++ {
			entry, ok := Get(week, day)
			if !ok {
				t.Fatalf("missing entry for W%dD%d", week, day)
			}
			if entry.Focus == "" {
				t.Errorf("W%dD%d: empty focus", week, day)
			}
			if entry.Duration == "" {
				t.Errorf("W%dD%d: empty duration", week, day)
			}
			if entry.Description == "" {
				t.Errorf("W%dD%d: empty description", week, day)
			}
		}
	}
}

func TestKeysFixedOrder(t *testing.T) {
	keys := Keys()

	if len(keys) != Weeks*DaysPerWeek {
		t.Fatalf("expected %d keys, got %d", Weeks*DaysPerWeek, len(keys))
	}
	if keys[0] != (Key{Week: 1, Day: 1}) {
		t.Errorf("expected first key W1D1, got W%dD%d", keys[0].Week, keys[0].Day)
	}
	if keys[len(keys)-1] != (Key{Week: 6, Day: 5}) {
		t.Errorf("expected last key W6D5, got W%dD%d",
			keys[len(keys)-1].Week, keys[len(keys)-1].Day)
	}
	if keys[5] != (Key{Week: 2, Day: 1}) {
		t.Errorf("expected key 5 to be W2D1, got W%dD%d", keys[5].Week, keys[5].Day)
	}
}

func TestNominalMinutes(t *testing.T) {
	cases := []struct {
		duration string
		want     int
	}{
		{"60-75 minutes", 60},
		{"45 minutes", 45},
		{"90", 90},
		{"Full program", DefaultNominalMinutes},
		{"", DefaultNominalMinutes},
		{"-30 minutes", DefaultNominalMinutes},
	}

	for _, tc := range cases {
		if got := NominalMinutes(tc.duration); got != tc.want {
			t.Errorf("NominalMinutes(%q): expected %d, got %d", tc.duration, tc.want, got)
		}
	}
}

func TestSectionsOrder(t *testing.T) {
	entry, ok := Get(1, 1)
	if !ok {
		t.Fatal("missing entry for W1D1")
	}

	sections := entry.Sections()
	want := []string{"WARM-UP", "TECHNICAL WORK", "COMBINATIONS", "BAG WORK", "CONDITIONING", "RECOVERY"}
	if len(sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(sections))
	}
	for i, label := range want {
		if sections[i].Label != label {
			t.Errorf("section %d: expected %q, got %q", i, label, sections[i].Label)
		}
	}
}
