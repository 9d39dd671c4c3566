package unsafety

import "testing"

func TestClassifyDecisionTable(t *testing.T) {
	tests := []struct {
		name       string
		inUnsafeFn bool
		allowed    bool
		want       Outcome
	}{
		{"safe context, policy off", false, false, OutcomeHardError},
		{"safe context, policy on", false, true, OutcomeHardError},
		{"unsafe fn, policy off", true, false, OutcomeLint},
		{"unsafe fn, policy on", true, true, OutcomePermitted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.inUnsafeFn, tt.allowed); got != tt.want {
				t.Errorf("Classify(%v, %v) = %s, want %s", tt.inUnsafeFn, tt.allowed, got, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if Classify(true, false) != OutcomeLint {
			t.Fatal("classification is not deterministic")
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeHardError.String() != "hard-error" ||
		OutcomeLint.String() != "lint" ||
		OutcomePermitted.String() != "permitted" {
		t.Error("unexpected Outcome string forms")
	}
}
