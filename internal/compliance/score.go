// Package compliance derives advisory documentation guidance for regulated
// (alcohol) exports: which documents apply to a shipment and a 0-100
// completion score shown in the dashboard. The score never blocks a
// submission.
package compliance

import "math"

// Shipment types.
const (
	TypeB2B    = "B2B"
	TypeB2C    = "B2C"
	TypeSample = "Sample"
)

// Outcome of the preliminary eligibility check.
type Outcome string

const (
	OutcomeBlocked Outcome = "blocked"
	OutcomeWarning Outcome = "warning"
	OutcomeClear   Outcome = "clear"
)

// DocRequirement is one mandatory-document checkbox applicable to a
// shipment.
type DocRequirement struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Preliminary evaluates the destination against the rule table.
// Unknown countries produce a warning, not a rejection.
func Preliminary(shipmentType, destCountry string) Outcome {
	rule, known := LookupCountry(destCountry)
	if !known {
		return OutcomeWarning
	}
	if shipmentType == TypeB2C && !rule.B2CAllowed {
		return OutcomeBlocked
	}
	return OutcomeClear
}

// ApplicableDocuments derives the mandatory-document set for a shipment.
// The proforma invoice always applies; the export declaration applies only
// to extra-EU destinations; the excise-duty-paid proof applies only to B2C
// shipments into countries that permit B2C at all.
func ApplicableDocuments(shipmentType, destCountry string) []DocRequirement {
	docs := []DocRequirement{
		{Key: "proforma", Label: "Fattura proforma"},
	}
	rule, known := LookupCountry(destCountry)
	if known && !rule.EU {
		docs = append(docs, DocRequirement{Key: "export_declaration", Label: "Dichiarazione di esportazione"})
	}
	if shipmentType == TypeB2C && known && rule.B2CAllowed {
		docs = append(docs, DocRequirement{Key: "excise_paid", Label: "Prova accisa assolta"})
	}
	if shipmentType == TypeSample {
		docs = append(docs, DocRequirement{Key: "sample_declaration", Label: "Dichiarazione campione senza valore commerciale"})
	}
	return docs
}

func baseScore(o Outcome) int {
	switch o {
	case OutcomeBlocked:
		return 10
	case OutcomeWarning:
		return 20
	default:
		return 40
	}
}

// Score combines the preliminary outcome with document completion: the base
// score plus up to 60 points proportional to completed/applicable. With no
// applicable documents the document portion is granted in full.
func Score(outcome Outcome, completed, applicable int) int {
	base := baseScore(outcome)
	if applicable <= 0 {
		return base + 60
	}
	if completed < 0 {
		completed = 0
	}
	if completed > applicable {
		completed = applicable
	}
	return base + int(math.Round(60*float64(completed)/float64(applicable)))
}
