package service

import (
	"testing"

	"github.com/spst-logistics/spst-backend/internal/repository"
)

func TestProjectShipmentToleratesAliasDrift(t *testing.T) {
	// A legacy record using historical column names throughout.
	rec := &repository.Record{
		ID:          "recOLD",
		CreatedTime: "2024-03-02T08:00:00.000Z",
		Fields: map[string]interface{}{
			"Id Spedizione":        "SP-OLD-1",
			"Status":               "In transito",
			"Tipo":                 "B2B",
			"Email Cliente":        "legacy@spst.it",
			"Mittente":             "Cantina Verdi",
			"Citta Destinatario":   "Monaco",
			"Paese Destinazione":   "Germania",
			"Destinatario":         "Weinhandel GmbH",
			"Fattura Delega":       "si",
			"Numero Tracking":      "JD0123",
			"Link Tracking":        "https://t.example/JD0123",
			"Lettera di Vettura":   "https://files.example/ldv.pdf",
		},
	}
	s := projectShipment(rec)

	if s.DisplayID != "SP-OLD-1" || s.Status != "In transito" || s.Type != "B2B" {
		t.Fatalf("header projection: %+v", s)
	}
	if s.OwnerEmail != "legacy@spst.it" {
		t.Fatalf("owner email %q", s.OwnerEmail)
	}
	if s.Recipient.City != "Monaco" || s.Recipient.Country != "Germania" {
		t.Fatalf("recipient %+v", s.Recipient)
	}
	if !s.BrokerInvoice {
		t.Fatal("'si' must normalize to true")
	}
	if s.TrackingNumber != "JD0123" || s.TrackingURL != "https://t.example/JD0123" {
		t.Fatalf("tracking %+v", s)
	}
	if len(s.Attachments.Waybill) != 1 || s.Attachments.Waybill[0].URL != "https://files.example/ldv.pdf" {
		t.Fatalf("waybill %+v", s.Attachments.Waybill)
	}
}

func TestProjectOwnerEmailFuzzyRecovery(t *testing.T) {
	rec := &repository.Record{
		ID:     "recX",
		Fields: map[string]interface{}{"Mail committente (vecchio)": "very-old@spst.it"},
	}
	if got := projectOwnerEmail(rec.Fields); got != "very-old@spst.it" {
		t.Fatalf("got %q", got)
	}
}

func TestProjectParcelAndPackingLine(t *testing.T) {
	parcel := projectParcel(&repository.Record{
		ID: "recC1",
		Fields: map[string]interface{}{
			"Quantita":        float64(2),
			"Lunghezza (cm)":  float64(40),
			"Larghezza":       float64(30),
			"Altezza":         float64(20),
			"Peso (kg)":       12.5,
		},
	})
	if parcel.Quantity != 2 || parcel.LengthCm == nil || *parcel.LengthCm != 40 || *parcel.WeightKg != 12.5 {
		t.Fatalf("parcel %+v", parcel)
	}

	brochure := projectPackingLine(&repository.Record{
		ID: "recL1",
		Fields: map[string]interface{}{
			"Etichetta":  "Catalogo",
			"Tipologia":  "brochure",
			"Formato":    0.75,
			"Gradazione": 13.5,
		},
	})
	if brochure.VolumeL != nil || brochure.ABV != nil {
		t.Fatalf("brochure must not expose volume/ABV: %+v", brochure)
	}

	wine := projectPackingLine(&repository.Record{
		ID: "recL2",
		Fields: map[string]interface{}{
			"Etichetta": "Barolo DOCG",
			"Tipologia": "vino fermo",
			"Formato":   0.75,
		},
	})
	if wine.VolumeL == nil || *wine.VolumeL != 0.75 {
		t.Fatalf("wine line %+v", wine)
	}
}

func TestProjectInvoiceToRecipientCopiesParty(t *testing.T) {
	rec := &repository.Record{
		ID: "recY",
		Fields: map[string]interface{}{
			"Destinatario":           "Weinhandel GmbH",
			"Paese Destinatario":     "Germania",
			"Città Destinatario":     "Monaco",
			"Indirizzo Destinatario": "Weinstr. 2",
			"Fattura a Destinatario": true,
		},
	}
	s := projectShipment(rec)
	if s.Invoicing == nil || s.Invoicing.Name != "Weinhandel GmbH" {
		t.Fatalf("invoicing %+v", s.Invoicing)
	}
}
