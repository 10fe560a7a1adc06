// Package carrier maps carrier names to public tracking-page URLs.
package carrier

import (
	"fmt"
	"net/url"
	"strings"
)

// Pattern order matters: the first token found in the carrier name wins, so
// more specific tokens come first.
var patterns = []struct {
	token  string
	format string
}{
	{"dhl", "https://www.dhl.com/it-it/home/tracciabilita/tracciabilita-express.html?submit=1&tracking-id=%s"},
	{"fedex", "https://www.fedex.com/fedextrack/?trknbr=%s"},
	{"ups", "https://www.ups.com/track?loc=it_IT&tracknum=%s"},
	{"tnt", "https://www.tnt.com/express/it_it/site/strumenti-spedizione/tracking.html?searchType=con&cons=%s"},
	{"gls", "https://gls-group.eu/IT/it/ricerca-spedizioni?match=%s"},
	{"brt", "https://vas.brt.it/vas/sped_det_show.hta?referer=sped_numspe_par.htm&Nspediz=%s"},
	{"poste", "https://www.poste.it/cerca/index.html#/risultati-spedizioni/%s"},
}

// TrackingURL builds the tracking URL for a carrier and tracking code. It
// returns "" when the carrier is unrecognized or the code is empty; callers
// must not write anything to the store in that case.
func TrackingURL(carrierName, trackingCode string) string {
	code := strings.TrimSpace(trackingCode)
	if code == "" {
		return ""
	}
	name := strings.ToLower(strings.TrimSpace(carrierName))
	if name == "" {
		return ""
	}
	for _, p := range patterns {
		if strings.Contains(name, p.token) {
			return fmt.Sprintf(p.format, url.QueryEscape(code))
		}
	}
	return ""
}
