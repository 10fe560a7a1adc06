package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","` // e.g. https://app.spst.it,https://spst.vercel.app

	AirtableAPIKey     string `env:"AIRTABLE_API_KEY,required"`
	AirtableBaseID     string `env:"AIRTABLE_BASE_ID,required"`
	ShipmentsTable     string `env:"AIRTABLE_SHIPMENTS_TABLE" envDefault:"Spedizioni"`
	ParcelsTable       string `env:"AIRTABLE_PARCELS_TABLE" envDefault:"Colli"`
	PackingLinesTable  string `env:"AIRTABLE_PACKING_TABLE" envDefault:"Packing List"`
	QuotationsTable    string `env:"AIRTABLE_QUOTATIONS_TABLE" envDefault:"Preventivi"`
	QuoteParcelsTable  string `env:"AIRTABLE_QUOTE_PARCELS_TABLE" envDefault:"Colli Preventivo"`
	ProfilesTable      string `env:"AIRTABLE_PROFILES_TABLE" envDefault:"Utenti"`

	FirebaseProjectID   string `env:"FIREBASE_PROJECT_ID,required"`
	FirebaseCredentials string `env:"FIREBASE_CREDENTIALS_JSON"` // optional; ADC is used when empty

	MapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"EMAIL_FROM"` // e.g. "SPST <notifiche@spst.it>"
	EmailReplyTo string `env:"EMAIL_REPLY_TO"`

	DocumentsBucket string `env:"DOCUMENTS_BUCKET"`

	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"true"`
	LoginPath    string `env:"LOGIN_PATH" envDefault:"/login"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
