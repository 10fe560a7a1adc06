package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"googlemaps.github.io/maps"
)

// ErrUpstream marks a mapping-provider failure; handlers relay it as a
// pass-through upstream error.
var ErrUpstream = errors.New("upstream")

// PlaceSuggestion is one autocomplete prediction.
type PlaceSuggestion struct {
	Description   string `json:"description"`
	PlaceID       string `json:"placeId"`
	MainText      string `json:"mainText,omitempty"`
	SecondaryText string `json:"secondaryText,omitempty"`
}

// PlaceAddress is a resolved structured address.
type PlaceAddress struct {
	FormattedAddress string  `json:"formattedAddress"`
	Street           string  `json:"street,omitempty"`
	StreetNumber     string  `json:"streetNumber,omitempty"`
	City             string  `json:"city,omitempty"`
	Province         string  `json:"province,omitempty"`
	Zip              string  `json:"zip,omitempty"`
	Country          string  `json:"country,omitempty"`
	CountryCode      string  `json:"countryCode,omitempty"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// PlacesService proxies the mapping provider. The API credential stays
// server-side; callers only ever see projected results.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService returns a service with a nil client when no key is
// configured; calls then fail with ErrUpstream.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	if apiKey == "" {
		return &PlacesService{}, nil
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &PlacesService{client: c}, nil
}

func (s *PlacesService) Autocomplete(ctx context.Context, query, language, sessionToken string) ([]PlaceSuggestion, error) {
	if s.client == nil {
		return nil, errors.Join(ErrUpstream, errors.New("maps provider not configured"))
	}
	req := &maps.PlaceAutocompleteRequest{
		Input:        query,
		Language:     language,
		SessionToken: parseSessionToken(sessionToken),
	}
	res, err := s.client.PlaceAutocomplete(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrUpstream, err)
	}
	out := make([]PlaceSuggestion, 0, len(res.Predictions))
	for _, p := range res.Predictions {
		out = append(out, PlaceSuggestion{
			Description:   p.Description,
			PlaceID:       p.PlaceID,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return out, nil
}

func (s *PlacesService) Details(ctx context.Context, placeID, language, sessionToken string) (*PlaceAddress, error) {
	if s.client == nil {
		return nil, errors.Join(ErrUpstream, errors.New("maps provider not configured"))
	}
	req := &maps.PlaceDetailsRequest{
		PlaceID:      placeID,
		Language:     language,
		SessionToken: parseSessionToken(sessionToken),
	}
	res, err := s.client.PlaceDetails(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrUpstream, err)
	}
	addr := projectAddress(res.FormattedAddress, res.AddressComponents)
	addr.Lat = res.Geometry.Location.Lat
	addr.Lng = res.Geometry.Location.Lng
	return addr, nil
}

func (s *PlacesService) Reverse(ctx context.Context, lat, lng float64, language string) (*PlaceAddress, error) {
	if s.client == nil {
		return nil, errors.Join(ErrUpstream, errors.New("maps provider not configured"))
	}
	req := &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: lat, Lng: lng},
		Language: language,
	}
	results, err := s.client.ReverseGeocode(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrUpstream, err)
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	first := results[0]
	addr := projectAddress(first.FormattedAddress, first.AddressComponents)
	addr.Lat = first.Geometry.Location.Lat
	addr.Lng = first.Geometry.Location.Lng
	return addr, nil
}

// parseSessionToken reuses the caller's autocomplete session when it sends a
// valid one, so autocomplete and the following details call are billed as
// one session. Anything unparsable starts a fresh session.
func parseSessionToken(raw string) maps.PlaceAutocompleteSessionToken {
	if raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return maps.PlaceAutocompleteSessionToken(id)
		}
	}
	return maps.NewPlaceAutocompleteSessionToken()
}

func projectAddress(formatted string, components []maps.AddressComponent) *PlaceAddress {
	addr := &PlaceAddress{FormattedAddress: formatted}
	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "route":
				addr.Street = c.LongName
			case "street_number":
				addr.StreetNumber = c.LongName
			case "locality", "postal_town":
				addr.City = c.LongName
			case "administrative_area_level_2":
				addr.Province = c.ShortName
			case "postal_code":
				addr.Zip = c.LongName
			case "country":
				addr.Country = c.LongName
				addr.CountryCode = c.ShortName
			}
		}
	}
	return addr
}
