package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spst-logistics/spst-backend/internal/model"
)

// validateParty enforces the only pre-write validation the system performs:
// a non-empty legal name and non-empty country/city/street for each party.
func validateParty(role string, p model.Party) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: %s name is required", ErrValidation, role)
	}
	if strings.TrimSpace(p.Country) == "" {
		return fmt.Errorf("%w: %s country is required", ErrValidation, role)
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("%w: %s city is required", ErrValidation, role)
	}
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("%w: %s address is required", ErrValidation, role)
	}
	return nil
}

// setStr writes a field only when populated. Absent fields stay absent in
// the store; they are never coerced to "" so partial updates don't clobber
// store-side defaults.
func setStr(fields map[string]interface{}, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		fields[key] = v
	}
}

func setAttachments(fields map[string]interface{}, key string, docs []model.Document) {
	if len(docs) == 0 {
		return
	}
	list := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		if d.URL == "" {
			continue
		}
		item := map[string]interface{}{"url": d.URL}
		if d.Filename != "" {
			item["filename"] = d.Filename
		}
		list = append(list, item)
	}
	if len(list) > 0 {
		fields[key] = list
	}
}

func composeParty(fields map[string]interface{}, p model.Party, name, country, city, zip, address, phone, taxID string) {
	setStr(fields, name, p.Name)
	setStr(fields, country, p.Country)
	setStr(fields, city, p.City)
	setStr(fields, zip, p.Zip)
	setStr(fields, address, p.Address)
	if phone != "" {
		setStr(fields, phone, p.Phone)
	}
	setStr(fields, taxID, p.TaxID)
}

func composeShipmentFields(in *model.ShipmentInput, ownerEmail, displayID string) map[string]interface{} {
	fields := map[string]interface{}{
		fDisplayID: displayID,
		fStatus:    statusShipmentNew,
	}
	setStr(fields, fShipmentType, in.Type)
	setStr(fields, fIncoterm, in.Incoterm)
	setStr(fields, fCurrency, in.Currency)
	setStr(fields, fPickupDate, in.PickupDate)
	setStr(fields, fNotes, in.Notes)
	setStr(fields, fOwnerEmail, ownerEmail)

	composeParty(fields, in.Sender, fSenderName, fSenderCountry, fSenderCity, fSenderZip, fSenderAddress, fSenderPhone, fSenderTaxID)
	composeParty(fields, in.Recipient, fRecipientName, fRecipientCountry, fRecipientCity, fRecipientZip, fRecipientAddress, fRecipientPhone, fRecipientTaxID)

	if in.BrokerInvoice {
		fields[fBrokerInvoice] = true
	}
	if in.InvoiceToRecipient {
		fields[fInvoiceToRcpt] = true
	} else if in.Invoicing != nil {
		composeParty(fields, *in.Invoicing, fInvoicingName, fInvoicingCountry, fInvoicingCity, fInvoicingZip, fInvoicingAddress, "", fInvoicingTaxID)
	}

	setAttachments(fields, fAttWaybill, in.Attachments.Waybill)
	setAttachments(fields, fAttProforma, in.Attachments.Proforma)
	setAttachments(fields, fAttPackingList, in.Attachments.PackingList)
	setAttachments(fields, fAttDeclaration, in.Attachments.Declaration)

	return fields
}

func composeQuotationFields(in *model.QuotationInput, ownerEmail, displayID string) map[string]interface{} {
	fields := map[string]interface{}{
		fQuoteDisplayID: displayID,
		fStatus:         statusQuotationNew,
	}
	setStr(fields, fCurrency, in.Currency)
	setStr(fields, fPickupDate, in.PickupDate)
	setStr(fields, fNotes, in.Notes)
	setStr(fields, fOwnerEmail, ownerEmail)
	composeParty(fields, in.Sender, fSenderName, fSenderCountry, fSenderCity, fSenderZip, fSenderAddress, fSenderPhone, fSenderTaxID)
	composeParty(fields, in.Recipient, fRecipientName, fRecipientCountry, fRecipientCity, fRecipientZip, fRecipientAddress, fRecipientPhone, fRecipientTaxID)
	return fields
}

// composeParcelFields builds one child record; linkField/refField vary
// between shipments and quotations.
func composeParcelFields(p model.Parcel, parentID, linkField, refField string) map[string]interface{} {
	qty := p.Quantity
	if qty <= 0 {
		qty = 1
	}
	fields := map[string]interface{}{
		linkField:  []string{parentID},
		refField:   parentID,
		fParcelQty: qty,
	}
	if p.LengthCm != nil {
		fields[fParcelLength] = *p.LengthCm
	}
	if p.WidthCm != nil {
		fields[fParcelWidth] = *p.WidthCm
	}
	if p.HeightCm != nil {
		fields[fParcelHeight] = *p.HeightCm
	}
	if p.WeightKg != nil {
		fields[fParcelWeight] = *p.WeightKg
	}
	return fields
}

// composePackingLineFields builds one packing-list child record. Volume and
// ABV are written only for alcoholic categories; they carry no meaning for
// brochures.
func composePackingLineFields(l model.PackingLine, parentID string) map[string]interface{} {
	fields := map[string]interface{}{
		fParentLink: []string{parentID},
		fParentRef:  parentID,
	}
	setStr(fields, fLineLabel, l.Label)
	setStr(fields, fLineCategory, l.Category)
	if l.Bottles > 0 {
		fields[fLineBottles] = l.Bottles
	}
	if l.Category != model.CategoryBrochure {
		if l.VolumeL != nil {
			fields[fLineVolume] = *l.VolumeL
		}
		if l.ABV != nil {
			fields[fLineABV] = *l.ABV
		}
	}
	if l.UnitPrice != nil {
		fields[fLinePrice] = *l.UnitPrice
	}
	setStr(fields, fLineCurrency, l.Currency)
	if l.NetWeightKg != nil {
		fields[fLineNetWeight] = *l.NetWeightKg
	}
	if l.GrossWeightKg != nil {
		fields[fLineGrossWt] = *l.GrossWeightKg
	}
	return fields
}

// chunk partitions items into batches of at most size, preserving order.
func chunk(items []map[string]interface{}, size int) [][]map[string]interface{} {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	var out [][]map[string]interface{}
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}

// newDisplayID builds a human-facing identifier like SP-20260829-4F2A1C.
func newDisplayID(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), suffix)
}
