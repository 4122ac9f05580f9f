package picker

import "testing"

func TestEntryID(t *testing.T) {
	cases := []struct {
		family string
		want   string
	}{
		{"Roboto", "roboto"},
		{"Open Sans", "open-sans"},
		{"Source Sans Pro", "source-sans-pro"},
		{"PT Serif", "pt-serif"},
		{"Tabbed\tName", "tabbed-name"},
		{"Spaced   Out", "spaced-out"},
	}
	for _, tc := range cases {
		if got := EntryID(tc.family); got != tc.want {
			t.Fatalf("EntryID(%q) = %q, want %q", tc.family, got, tc.want)
		}
	}
}

func TestEntryIDCollision(t *testing.T) {
	// Distinct families can map to the same id fragment. The derivation
	// keeps this property; callers own family uniqueness, not id uniqueness.
	if EntryID("My Font") != EntryID("my  font") {
		t.Fatalf("expected %q and %q to share an entry id", "My Font", "my  font")
	}
}
