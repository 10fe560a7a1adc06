package model

// Parcel (collo) is one physical package within a shipment. Dimensions and
// weight stay nil until the user fills them in.
type Parcel struct {
	ID       string   `json:"id,omitempty"`
	Quantity int      `json:"quantity"`
	LengthCm *float64 `json:"lengthCm"`
	WidthCm  *float64 `json:"widthCm"`
	HeightCm *float64 `json:"heightCm"`
	WeightKg *float64 `json:"weightKg"`
}

// Packing line categories.
const (
	CategoryStillWine     = "vino fermo"
	CategorySparklingWine = "vino spumante"
	CategoryBrochure      = "brochure"
)

// PackingLine is one SKU-level entry (one wine label) in a shipment's
// declared contents. Volume and ABV are meaningless for the brochure
// category and are treated as absent there.
type PackingLine struct {
	ID            string   `json:"id,omitempty"`
	Label         string   `json:"label"`
	Category      string   `json:"category"`
	Bottles       int      `json:"bottles"`
	VolumeL       *float64 `json:"volumeL"`
	ABV           *float64 `json:"abv"`
	UnitPrice     *float64 `json:"unitPrice"`
	Currency      string   `json:"currency,omitempty"`
	NetWeightKg   *float64 `json:"netWeightKg"`
	GrossWeightKg *float64 `json:"grossWeightKg"`
}

// Document is one attached file reference on a record.
type Document struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// Attachments groups the document slots a shipment record carries.
type Attachments struct {
	Waybill     []Document `json:"waybill,omitempty"`
	Proforma    []Document `json:"proforma,omitempty"`
	PackingList []Document `json:"packingList,omitempty"`
	Declaration []Document `json:"declaration,omitempty"`
}

// ShipmentInput is the domain payload a client submits to create a shipment.
type ShipmentInput struct {
	Type               string        `json:"type"`     // B2B, B2C, Sample
	Incoterm           string        `json:"incoterm"` // EXW, DAP, DDP
	Currency           string        `json:"currency"` // EUR, USD, GBP
	PickupDate         string        `json:"pickupDate"`
	Notes              string        `json:"notes,omitempty"`
	Sender             Party         `json:"sender"`
	Recipient          Party         `json:"recipient"`
	Invoicing          *Party        `json:"invoicing,omitempty"`
	InvoiceToRecipient bool          `json:"invoiceToRecipient,omitempty"` // invoicing party is the recipient
	BrokerInvoice      bool          `json:"brokerInvoice,omitempty"`      // broker prepares the invoice on the sender's behalf
	Parcels            []Parcel      `json:"parcels,omitempty"`
	PackingList        []PackingLine `json:"packingList,omitempty"`
	Attachments        Attachments   `json:"attachments,omitempty"`
}

// Shipment is the normalized, alias-independent projection of a stored
// shipment record.
type Shipment struct {
	ID             string        `json:"id"`
	DisplayID      string        `json:"displayId"`
	Status         string        `json:"status"`
	Type           string        `json:"type"`
	Incoterm       string        `json:"incoterm"`
	Currency       string        `json:"currency"`
	PickupDate     string        `json:"pickupDate"`
	Notes          string        `json:"notes,omitempty"`
	OwnerEmail     string        `json:"ownerEmail,omitempty"`
	Sender         Party         `json:"sender"`
	Recipient      Party         `json:"recipient"`
	Invoicing      *Party        `json:"invoicing,omitempty"`
	BrokerInvoice  bool          `json:"brokerInvoice,omitempty"`
	Carrier        string        `json:"carrier,omitempty"`
	TrackingNumber string        `json:"trackingNumber,omitempty"`
	TrackingURL    string        `json:"trackingUrl,omitempty"`
	Parcels        []Parcel      `json:"parcels,omitempty"`
	PackingList    []PackingLine `json:"packingList,omitempty"`
	Attachments    Attachments   `json:"attachments,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty"`
}
