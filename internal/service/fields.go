package service

// Canonical attribute names used on the write path: one fixed name per
// logical field. The read path never relies on these alone; it goes through
// the alias lists below, which absorb the naming drift the store has
// accumulated (Italian/English, spacing and abbreviation variants).

// Shipment parent record.
const (
	fDisplayID     = "ID Spedizione"
	fStatus        = "Stato"
	fShipmentType  = "Tipo Spedizione"
	fIncoterm      = "Incoterm"
	fCurrency      = "Valuta"
	fPickupDate    = "Data Ritiro"
	fNotes         = "Note"
	fOwnerEmail    = "Creato da"
	fBrokerInvoice = "Delega Fattura"
	fInvoiceToRcpt = "Fattura a Destinatario"

	fSenderName    = "Mittente"
	fSenderCountry = "Paese Mittente"
	fSenderCity    = "Città Mittente"
	fSenderZip     = "CAP Mittente"
	fSenderAddress = "Indirizzo Mittente"
	fSenderPhone   = "Telefono Mittente"
	fSenderTaxID   = "Partita IVA Mittente"

	fRecipientName    = "Destinatario"
	fRecipientCountry = "Paese Destinatario"
	fRecipientCity    = "Città Destinatario"
	fRecipientZip     = "CAP Destinatario"
	fRecipientAddress = "Indirizzo Destinatario"
	fRecipientPhone   = "Telefono Destinatario"
	fRecipientTaxID   = "Partita IVA Destinatario"

	fInvoicingName    = "Fatturazione Ragione Sociale"
	fInvoicingCountry = "Fatturazione Paese"
	fInvoicingCity    = "Fatturazione Città"
	fInvoicingZip     = "Fatturazione CAP"
	fInvoicingAddress = "Fatturazione Indirizzo"
	fInvoicingTaxID   = "Fatturazione Partita IVA"

	fCarrier        = "Corriere"
	fTrackingNumber = "Tracking Number"
	fTrackingURL    = "Tracking URL"

	fAttWaybill     = "Allegato LDV"
	fAttProforma    = "Allegato Fattura"
	fAttPackingList = "Allegato PL"
	fAttDeclaration = "Allegato DLE"
)

// Parcel and packing-list child records. Each child carries a link to the
// parent plus a plain-text back-reference; the text field is what child
// queries filter on (link fields don't render record ids in formulas).
const (
	fParentLink = "Spedizione"
	fParentRef  = "Rif Spedizione"

	fParcelQty    = "Quantità"
	fParcelLength = "Lunghezza"
	fParcelWidth  = "Larghezza"
	fParcelHeight = "Altezza"
	fParcelWeight = "Peso"

	fLineLabel     = "Etichetta"
	fLineCategory  = "Tipologia"
	fLineBottles   = "Bottiglie"
	fLineVolume    = "Formato (L)"
	fLineABV       = "Gradazione (% vol)"
	fLinePrice     = "Prezzo"
	fLineCurrency  = "Valuta"
	fLineNetWeight = "Peso Netto"
	fLineGrossWt   = "Peso Lordo"
)

// Quotation parent record.
const (
	fQuoteDisplayID = "ID Preventivo"
	fQuoteLink      = "Preventivo"
	fQuoteRef       = "Rif Preventivo"
)

// Profile record.
const (
	fProfileEmail   = "Email"
	fProfileName    = "Nome"
	fProfileCompany = "Ragione Sociale"
	fProfileCountry = "Paese"
	fProfileCity    = "Città"
	fProfileZip     = "CAP"
	fProfileAddress = "Indirizzo"
	fProfilePhone   = "Telefono"
	fProfileTaxID   = "Partita IVA"
)

// Default lifecycle states written on creation. The status field is free
// text in the store, not a closed enum.
const (
	statusShipmentNew  = "Pubblicata"
	statusQuotationNew = "Inviato"
)

// Alias lists, canonical name first. Shared by record projection, list
// filters and the best-effort backfill writes.
var (
	ownerEmailAliases = []string{fOwnerEmail, "Email Cliente", "Mail Cliente", "Cliente", "Email"}

	displayIDAliases  = []string{fDisplayID, "Id Spedizione", "Shipment ID", "ID"}
	statusAliases     = []string{fStatus, "Status", "Stato Spedizione"}
	typeAliases       = []string{fShipmentType, "Tipo", "Sottotipo", "Shipment Type"}
	incotermAliases   = []string{fIncoterm, "Incoterms"}
	currencyAliases   = []string{fCurrency, "Currency", "Valuta Fattura"}
	pickupDateAliases = []string{fPickupDate, "Data di Ritiro", "Ritiro - Data", "Pickup Date"}
	notesAliases      = []string{fNotes, "Note Spedizione", "Notes"}

	senderNameAliases    = []string{fSenderName, "Mittente - Ragione Sociale", "Sender"}
	senderCountryAliases = []string{fSenderCountry, "Mittente - Paese", "Paese  Mittente"}
	senderCityAliases    = []string{fSenderCity, "Citta Mittente", "Mittente - Città"}
	senderZipAliases     = []string{fSenderZip, "Mittente - CAP"}
	senderAddressAliases = []string{fSenderAddress, "Mittente - Indirizzo"}
	senderPhoneAliases   = []string{fSenderPhone, "Mittente - Telefono"}
	senderTaxIDAliases   = []string{fSenderTaxID, "P.IVA Mittente", "Mittente - P.IVA"}

	recipientNameAliases    = []string{fRecipientName, "Destinatario - Ragione Sociale", "Recipient"}
	recipientCountryAliases = []string{fRecipientCountry, "Destinatario - Paese", "Paese Destinazione"}
	recipientCityAliases    = []string{fRecipientCity, "Citta Destinatario", "Destinatario - Città"}
	recipientZipAliases     = []string{fRecipientZip, "Destinatario - CAP"}
	recipientAddressAliases = []string{fRecipientAddress, "Destinatario - Indirizzo"}
	recipientPhoneAliases   = []string{fRecipientPhone, "Destinatario - Telefono"}
	recipientTaxIDAliases   = []string{fRecipientTaxID, "P.IVA Destinatario", "EORI Destinatario"}

	invoicingNameAliases    = []string{fInvoicingName, "Fatturazione - Ragione Sociale"}
	invoicingCountryAliases = []string{fInvoicingCountry, "Fatturazione - Paese"}
	invoicingCityAliases    = []string{fInvoicingCity, "Fatturazione - Città"}
	invoicingZipAliases     = []string{fInvoicingZip, "Fatturazione - CAP"}
	invoicingAddressAliases = []string{fInvoicingAddress, "Fatturazione - Indirizzo"}
	invoicingTaxIDAliases   = []string{fInvoicingTaxID, "P.IVA Fatturazione"}

	brokerInvoiceAliases = []string{fBrokerInvoice, "Fattura Delega", "Delega"}
	invoiceToRcptAliases = []string{fInvoiceToRcpt, "Fattura = Destinatario"}

	carrierAliases        = []string{fCarrier, "Carrier"}
	trackingNumberAliases = []string{fTrackingNumber, "Numero Tracking", "Tracking"}
	trackingURLAliases    = []string{fTrackingURL, "Link Tracking"}

	attWaybillAliases     = []string{fAttWaybill, "LDV", "Lettera di Vettura"}
	attProformaAliases    = []string{fAttProforma, "Fattura Proforma", "Fattura"}
	attPackingListAliases = []string{fAttPackingList, "Packing List"}
	attDeclarationAliases = []string{fAttDeclaration, "Dichiarazione Libera Esportazione", "Dichiarazione"}

	parentRefAliases = []string{fParentRef, "ID Spedizione", "Spedizione"}
	quoteRefAliases  = []string{fQuoteRef, "ID Preventivo", "Preventivo"}

	parcelQtyAliases    = []string{fParcelQty, "Quantita", "Qty", "Numero Colli"}
	parcelLengthAliases = []string{fParcelLength, "Lunghezza (cm)", "L (cm)", "L"}
	parcelWidthAliases  = []string{fParcelWidth, "Larghezza (cm)", "W (cm)", "W"}
	parcelHeightAliases = []string{fParcelHeight, "Altezza (cm)", "H (cm)", "H"}
	parcelWeightAliases = []string{fParcelWeight, "Peso (kg)", "Peso Kg"}

	lineLabelAliases     = []string{fLineLabel, "Label", "Vino"}
	lineCategoryAliases  = []string{fLineCategory, "Categoria", "Tipo"}
	lineBottlesAliases   = []string{fLineBottles, "Numero Bottiglie", "Quantità"}
	lineVolumeAliases    = []string{fLineVolume, "Formato", "Volume (L)"}
	lineABVAliases       = []string{fLineABV, "Gradazione", "ABV"}
	linePriceAliases     = []string{fLinePrice, "Prezzo Unitario", "Price"}
	lineCurrencyAliases  = []string{fLineCurrency, "Currency"}
	lineNetWeightAliases = []string{fLineNetWeight, "Peso Netto (kg)"}
	lineGrossWtAliases   = []string{fLineGrossWt, "Peso Lordo (kg)"}

	quoteDisplayIDAliases = []string{fQuoteDisplayID, "Id Preventivo", "Quote ID"}

	profileNameAliases    = []string{fProfileName, "Nome Referente", "Referente"}
	profileCompanyAliases = []string{fProfileCompany, "Azienda", "Company"}
	profileCountryAliases = []string{fProfileCountry, "Country"}
	profileCityAliases    = []string{fProfileCity, "Citta", "City"}
	profileZipAliases     = []string{fProfileZip, "Cap", "ZIP"}
	profileAddressAliases = []string{fProfileAddress, "Address"}
	profilePhoneAliases   = []string{fProfilePhone, "Phone"}
	profileTaxIDAliases   = []string{fProfileTaxID, "P.IVA", "VAT"}
)
