package compliance

import "strings"

// CountryRule describes what the destination country allows for alcohol
// shipments. The table is advisory data, not an authoritative regulatory
// source; it can be swapped wholesale without touching the scoring logic.
type CountryRule struct {
	Name       string
	EU         bool
	B2CAllowed bool
}

var rules = []CountryRule{
	{Name: "Italia", EU: true, B2CAllowed: true},
	{Name: "Francia", EU: true, B2CAllowed: true},
	{Name: "Germania", EU: true, B2CAllowed: true},
	{Name: "Spagna", EU: true, B2CAllowed: true},
	{Name: "Paesi Bassi", EU: true, B2CAllowed: true},
	{Name: "Belgio", EU: true, B2CAllowed: true},
	{Name: "Austria", EU: true, B2CAllowed: true},
	{Name: "Irlanda", EU: true, B2CAllowed: true},
	{Name: "Danimarca", EU: true, B2CAllowed: true},
	{Name: "Svezia", EU: true, B2CAllowed: false},
	{Name: "Finlandia", EU: true, B2CAllowed: false},
	{Name: "Regno Unito", EU: false, B2CAllowed: true},
	{Name: "Svizzera", EU: false, B2CAllowed: true},
	{Name: "Norvegia", EU: false, B2CAllowed: false},
	{Name: "Stati Uniti", EU: false, B2CAllowed: false},
	{Name: "Canada", EU: false, B2CAllowed: false},
	{Name: "Giappone", EU: false, B2CAllowed: true},
	{Name: "Singapore", EU: false, B2CAllowed: true},
	{Name: "Hong Kong", EU: false, B2CAllowed: true},
	{Name: "Cina", EU: false, B2CAllowed: false},
	{Name: "Brasile", EU: false, B2CAllowed: false},
	{Name: "Emirati Arabi Uniti", EU: false, B2CAllowed: false},
}

// LookupCountry finds a rule by case-insensitive country name.
func LookupCountry(name string) (CountryRule, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, r := range rules {
		if strings.ToLower(r.Name) == needle {
			return r, true
		}
	}
	return CountryRule{}, false
}
