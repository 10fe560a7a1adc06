package model

// QuotationInput is the domain payload for a price-quotation request. It is
// a lighter variant of ShipmentInput: no attachments, no carrier fields.
type QuotationInput struct {
	Currency   string   `json:"currency"`
	PickupDate string   `json:"pickupDate"`
	Notes      string   `json:"notes,omitempty"`
	Sender     Party    `json:"sender"`
	Recipient  Party    `json:"recipient"`
	Parcels    []Parcel `json:"parcels,omitempty"`
}

// Quotation is the normalized projection of a stored quotation record.
type Quotation struct {
	ID         string   `json:"id"`
	DisplayID  string   `json:"displayId"`
	Status     string   `json:"status"`
	Currency   string   `json:"currency"`
	PickupDate string   `json:"pickupDate"`
	Notes      string   `json:"notes,omitempty"`
	OwnerEmail string   `json:"ownerEmail,omitempty"`
	Sender     Party    `json:"sender"`
	Recipient  Party    `json:"recipient"`
	Parcels    []Parcel `json:"parcels,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
}
