package fieldmap

import "testing"

func TestFirstPriorityOrder(t *testing.T) {
	aliases := []string{"Email Cliente", "Creato da", "Email"}
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{"first populated", Fields{"Email Cliente": "a@x.it", "Creato da": "b@x.it", "Email": "c@x.it"}, "a@x.it"},
		{"first empty falls to second", Fields{"Email Cliente": "", "Creato da": "b@x.it", "Email": "c@x.it"}, "b@x.it"},
		{"first missing falls to second", Fields{"Creato da": "b@x.it", "Email": "c@x.it"}, "b@x.it"},
		{"only last", Fields{"Email": "c@x.it"}, "c@x.it"},
		{"second blank skipped", Fields{"Creato da": "   ", "Email": "c@x.it"}, "c@x.it"},
		{"nil value skipped", Fields{"Email Cliente": nil, "Email": "c@x.it"}, "c@x.it"},
		{"none populated", Fields{"Altro": "x"}, "fallback"},
		{"empty map", Fields{}, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String(tt.fields, aliases, "fallback")
			if got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestStringCoercion(t *testing.T) {
	fields := Fields{"CAP": float64(12100), "Colli": 3, "Delega": true}
	if got := String(fields, []string{"CAP"}, ""); got != "12100" {
		t.Fatalf("float: got %q", got)
	}
	if got := String(fields, []string{"Colli"}, ""); got != "3" {
		t.Fatalf("int: got %q", got)
	}
	if got := String(fields, []string{"Delega"}, ""); got != "true" {
		t.Fatalf("bool: got %q", got)
	}
}

func TestBoolTokens(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		fallback bool
		want     bool
	}{
		{"native true", true, false, true},
		{"native false", false, true, false},
		{"si", "si", false, true},
		{"sì accented", "sì", false, true},
		{"SI upper", "SI", false, true},
		{"yes", "yes", false, true},
		{"one string", "1", false, true},
		{"no", "no", true, false},
		{"zero string", "0", true, false},
		{"checkbox number", float64(1), false, true},
		{"checkbox zero", float64(0), true, false},
		{"unknown token keeps fallback", "boh", true, true},
		{"absent keeps fallback", nil, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Fields{}
			if tt.value != nil {
				fields["Fattura Delega"] = tt.value
			}
			got := Bool(fields, []string{"Fattura Delega"}, tt.fallback)
			if got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestFloatAndInt(t *testing.T) {
	fields := Fields{"Peso": 12.5, "Bottiglie": float64(6), "Etichetta": "Barolo"}
	if p := FloatPtr(fields, []string{"Peso"}); p == nil || *p != 12.5 {
		t.Fatalf("FloatPtr got %v", p)
	}
	if got := Int(fields, []string{"Bottiglie"}, 0); got != 6 {
		t.Fatalf("Int got %v", got)
	}
	if p := FloatPtr(fields, []string{"Etichetta"}); p != nil {
		t.Fatalf("non-numeric should be absent, got %v", *p)
	}
	if p := FloatPtr(fields, []string{"Assente"}); p != nil {
		t.Fatalf("FloatPtr on absent field should be nil")
	}
}

func TestAttachments(t *testing.T) {
	list := []interface{}{
		map[string]interface{}{"url": "https://files/a.pdf", "filename": "ldv.pdf"},
		map[string]interface{}{"url": "https://files/b.pdf"},
		map[string]interface{}{"filename": "no-url.pdf"},
	}
	fields := Fields{"LDV": list, "Lettera di Vettura": "https://files/legacy.pdf"}

	got := Attachments(fields, []string{"Allegato LDV", "LDV"})
	if len(got) != 2 {
		t.Fatalf("got %d attachments, want 2", len(got))
	}
	if got[0].URL != "https://files/a.pdf" || got[0].Filename != "ldv.pdf" {
		t.Fatalf("unexpected first attachment %+v", got[0])
	}

	legacy := Attachments(fields, []string{"Lettera di Vettura"})
	if len(legacy) != 1 || legacy[0].URL != "https://files/legacy.pdf" {
		t.Fatalf("bare URL should become a single attachment, got %+v", legacy)
	}

	if none := Attachments(fields, []string{"Fattura"}); none != nil {
		t.Fatalf("absent field should yield nil, got %+v", none)
	}
}

func TestScanContains(t *testing.T) {
	fields := Fields{
		"Mail  Cliente (legacy)": "old@x.it",
		"Note":                   "n/a",
	}
	if got := ScanContains(fields, []string{"mail", "cliente"}, ""); got != "old@x.it" {
		t.Fatalf("got %q", got)
	}
	if got := ScanContains(fields, []string{"telefono"}, "none"); got != "none" {
		t.Fatalf("fallback expected, got %q", got)
	}
}
