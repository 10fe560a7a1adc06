package model

// Party is a sender, recipient or invoicing entity. Parties are embedded in
// the record that references them, never stored on their own.
type Party struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	Zip     string `json:"zip,omitempty"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"taxId,omitempty"` // VAT, EORI or EIN depending on jurisdiction
}
