package compliance

import "testing"

func TestPreliminary(t *testing.T) {
	tests := []struct {
		name     string
		shipType string
		country  string
		want     Outcome
	}{
		{"B2C into disallowed country", TypeB2C, "Stati Uniti", OutcomeBlocked},
		{"B2C into allowed country", TypeB2C, "Regno Unito", OutcomeClear},
		{"B2B into disallowed-B2C country", TypeB2B, "Stati Uniti", OutcomeClear},
		{"unknown country", TypeB2B, "Atlantide", OutcomeWarning},
		{"case insensitive lookup", TypeB2C, "stati uniti", OutcomeBlocked},
		{"sample", TypeSample, "Svizzera", OutcomeClear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preliminary(tt.shipType, tt.country); got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestApplicableDocuments(t *testing.T) {
	got := ApplicableDocuments(TypeB2C, "Stati Uniti")
	if len(got) != 2 {
		t.Fatalf("B2C/US: got %d docs, want 2 (proforma + export declaration)", len(got))
	}

	uk := ApplicableDocuments(TypeB2C, "Regno Unito")
	want := map[string]bool{"proforma": true, "export_declaration": true, "excise_paid": true}
	if len(uk) != 3 {
		t.Fatalf("B2C/UK: got %d docs, want 3", len(uk))
	}
	for _, d := range uk {
		if !want[d.Key] {
			t.Fatalf("unexpected doc %q", d.Key)
		}
	}

	eu := ApplicableDocuments(TypeB2B, "Francia")
	if len(eu) != 1 || eu[0].Key != "proforma" {
		t.Fatalf("intra-EU B2B should only need proforma, got %+v", eu)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name                  string
		outcome               Outcome
		completed, applicable int
		want                  int
	}{
		{"blocked with nothing done", OutcomeBlocked, 0, 2, 10},
		{"clear all done", OutcomeClear, 2, 2, 100},
		{"clear half done", OutcomeClear, 1, 2, 70},
		{"warning one of three", OutcomeWarning, 1, 3, 40},
		{"no applicable docs", OutcomeClear, 0, 0, 100},
		{"completed clamped", OutcomeClear, 5, 2, 100},
		{"negative completed clamped", OutcomeClear, -1, 2, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.outcome, tt.completed, tt.applicable); got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}
