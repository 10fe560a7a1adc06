package service

import (
	"github.com/spst-logistics/spst-backend/internal/fieldmap"
	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/repository"
)

// Projection turns raw store records into the stable, alias-independent
// shapes handlers serve. Every logical field goes through the alias
// resolver; callers never see store attribute names.

func projectParty(f fieldmap.Fields, name, country, city, zip, address, phone, taxID []string) model.Party {
	return model.Party{
		Name:    fieldmap.String(f, name, ""),
		Country: fieldmap.String(f, country, ""),
		City:    fieldmap.String(f, city, ""),
		Zip:     fieldmap.String(f, zip, ""),
		Address: fieldmap.String(f, address, ""),
		Phone:   fieldmap.String(f, phone, ""),
		TaxID:   fieldmap.String(f, taxID, ""),
	}
}

func projectDocuments(f fieldmap.Fields, aliases []string) []model.Document {
	atts := fieldmap.Attachments(f, aliases)
	if len(atts) == 0 {
		return nil
	}
	docs := make([]model.Document, 0, len(atts))
	for _, a := range atts {
		docs = append(docs, model.Document{URL: a.URL, Filename: a.Filename})
	}
	return docs
}

func projectOwnerEmail(f fieldmap.Fields) string {
	if email := fieldmap.String(f, ownerEmailAliases, ""); email != "" {
		return email
	}
	// Legacy records sometimes hold the email under a historical column
	// name no alias covers; a token scan is the last resort on reads.
	return fieldmap.ScanContains(f, []string{"mail"}, "")
}

func projectShipment(rec *repository.Record) model.Shipment {
	f := rec.Fields
	s := model.Shipment{
		ID:             rec.ID,
		DisplayID:      fieldmap.String(f, displayIDAliases, rec.ID),
		Status:         fieldmap.String(f, statusAliases, ""),
		Type:           fieldmap.String(f, typeAliases, ""),
		Incoterm:       fieldmap.String(f, incotermAliases, ""),
		Currency:       fieldmap.String(f, currencyAliases, ""),
		PickupDate:     fieldmap.String(f, pickupDateAliases, ""),
		Notes:          fieldmap.String(f, notesAliases, ""),
		OwnerEmail:     projectOwnerEmail(f),
		Sender:         projectParty(f, senderNameAliases, senderCountryAliases, senderCityAliases, senderZipAliases, senderAddressAliases, senderPhoneAliases, senderTaxIDAliases),
		Recipient:      projectParty(f, recipientNameAliases, recipientCountryAliases, recipientCityAliases, recipientZipAliases, recipientAddressAliases, recipientPhoneAliases, recipientTaxIDAliases),
		BrokerInvoice:  fieldmap.Bool(f, brokerInvoiceAliases, false),
		Carrier:        fieldmap.String(f, carrierAliases, ""),
		TrackingNumber: fieldmap.String(f, trackingNumberAliases, ""),
		TrackingURL:    fieldmap.String(f, trackingURLAliases, ""),
		CreatedAt:      rec.CreatedTime,
		Attachments: model.Attachments{
			Waybill:     projectDocuments(f, attWaybillAliases),
			Proforma:    projectDocuments(f, attProformaAliases),
			PackingList: projectDocuments(f, attPackingListAliases),
			Declaration: projectDocuments(f, attDeclarationAliases),
		},
	}
	if !fieldmap.Bool(f, invoiceToRcptAliases, false) {
		inv := projectParty(f, invoicingNameAliases, invoicingCountryAliases, invoicingCityAliases, invoicingZipAliases, invoicingAddressAliases, nil, invoicingTaxIDAliases)
		if inv.Name != "" {
			s.Invoicing = &inv
		}
	} else {
		rcpt := s.Recipient
		s.Invoicing = &rcpt
	}
	return s
}

func projectParcel(rec *repository.Record) model.Parcel {
	f := rec.Fields
	return model.Parcel{
		ID:       rec.ID,
		Quantity: fieldmap.Int(f, parcelQtyAliases, 1),
		LengthCm: fieldmap.FloatPtr(f, parcelLengthAliases),
		WidthCm:  fieldmap.FloatPtr(f, parcelWidthAliases),
		HeightCm: fieldmap.FloatPtr(f, parcelHeightAliases),
		WeightKg: fieldmap.FloatPtr(f, parcelWeightAliases),
	}
}

func projectPackingLine(rec *repository.Record) model.PackingLine {
	f := rec.Fields
	line := model.PackingLine{
		ID:            rec.ID,
		Label:         fieldmap.String(f, lineLabelAliases, ""),
		Category:      fieldmap.String(f, lineCategoryAliases, ""),
		Bottles:       fieldmap.Int(f, lineBottlesAliases, 0),
		UnitPrice:     fieldmap.FloatPtr(f, linePriceAliases),
		Currency:      fieldmap.String(f, lineCurrencyAliases, ""),
		NetWeightKg:   fieldmap.FloatPtr(f, lineNetWeightAliases),
		GrossWeightKg: fieldmap.FloatPtr(f, lineGrossWtAliases),
	}
	if line.Category != model.CategoryBrochure {
		line.VolumeL = fieldmap.FloatPtr(f, lineVolumeAliases)
		line.ABV = fieldmap.FloatPtr(f, lineABVAliases)
	}
	return line
}

func projectQuotation(rec *repository.Record) model.Quotation {
	f := rec.Fields
	return model.Quotation{
		ID:         rec.ID,
		DisplayID:  fieldmap.String(f, quoteDisplayIDAliases, rec.ID),
		Status:     fieldmap.String(f, statusAliases, ""),
		Currency:   fieldmap.String(f, currencyAliases, ""),
		PickupDate: fieldmap.String(f, pickupDateAliases, ""),
		Notes:      fieldmap.String(f, notesAliases, ""),
		OwnerEmail: projectOwnerEmail(f),
		Sender:     projectParty(f, senderNameAliases, senderCountryAliases, senderCityAliases, senderZipAliases, senderAddressAliases, senderPhoneAliases, senderTaxIDAliases),
		Recipient:  projectParty(f, recipientNameAliases, recipientCountryAliases, recipientCityAliases, recipientZipAliases, recipientAddressAliases, recipientPhoneAliases, recipientTaxIDAliases),
		CreatedAt:  rec.CreatedTime,
	}
}

func projectProfile(rec *repository.Record) model.Profile {
	f := rec.Fields
	return model.Profile{
		Email:   fieldmap.String(f, []string{fProfileEmail, "Mail", "Email Cliente"}, ""),
		Name:    fieldmap.String(f, profileNameAliases, ""),
		Company: fieldmap.String(f, profileCompanyAliases, ""),
		Country: fieldmap.String(f, profileCountryAliases, ""),
		City:    fieldmap.String(f, profileCityAliases, ""),
		Zip:     fieldmap.String(f, profileZipAliases, ""),
		Address: fieldmap.String(f, profileAddressAliases, ""),
		Phone:   fieldmap.String(f, profilePhoneAliases, ""),
		TaxID:   fieldmap.String(f, profileTaxIDAliases, ""),
	}
}
