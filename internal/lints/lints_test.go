package lints

import (
	"testing"
)

func TestRegistryComplete(t *testing.T) {
	all := All()
	if len(all) != 8 {
		t.Fatalf("registry holds %d lints, want 8", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("All() not sorted: %s before %s", all[i-1].ID, all[i].ID)
		}
	}
	for _, l := range all {
		if l.Summary == "" {
			t.Errorf("%s has no summary", l.ID)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := Get("no_such_lint"); ok {
		t.Error("Get accepted an unknown id")
	}
}

func TestParseLevel(t *testing.T) {
	for text, want := range map[string]Level{"allow": LevelAllow, "warn": LevelWarn, "deny": LevelDeny} {
		got, err := ParseLevel(text)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", text, got, err)
		}
	}
	if _, err := ParseLevel("forbid"); err == nil {
		t.Error("ParseLevel accepted an unknown level")
	}
}
