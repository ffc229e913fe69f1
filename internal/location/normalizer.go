package location

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Location type constants
const (
	TypeRemote = "remote"
	TypeHybrid = "hybrid"
	TypeOnsite = "onsite"
)

// NormalizedLocation is the structured form of a free-text location string.
// It is a pure value type, recomputed on demand and never treated as
// authoritative state.
type NormalizedLocation struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Type    string `json:"type"`
	Raw     string `json:"raw"`
}

// countryMappings resolves common country name variations
var countryMappings = map[string]string{
	// North America
	"usa":           "USA",
	"us":            "USA",
	"united states": "USA",
	"canada":        "Canada",
	"ca":            "Canada",

	// Europe
	"uk":             "United Kingdom",
	"gb":             "United Kingdom",
	"united kingdom": "United Kingdom",
	"germany":        "Germany",
	"france":         "France",

	// Asia-Pacific
	"india":                "India",
	"in":                   "India",
	"uae":                  "UAE",
	"united arab emirates": "UAE",
	"dubai":                "UAE", // often used as country
	"singapore":            "Singapore",
	"sg":                   "Singapore",
	"australia":            "Australia",
	"au":                   "Australia",
}

// cityAliases resolves common city name variations
var cityAliases = map[string]string{
	"bengaluru": "Bangalore",
	"bangalore": "Bangalore",
	"bombay":    "Mumbai",
	"mumbai":    "Mumbai",
	"new delhi": "Delhi",
	"delhi":     "Delhi",
	"gurugram":  "Gurgaon",
	"gurgaon":   "Gurgaon",
}

var remoteKeywords = []string{"remote", "anywhere", "worldwide", "global", "work from home", "wfh"}
var hybridKeywords = []string{"hybrid", "flexible", "remote-friendly"}

// Normalize maps a free-text location string to its structured form. It never
// fails: empty or unparseable input yields an onsite location with the raw
// field set to "Not specified".
func Normalize(raw string) NormalizedLocation {
	if strings.TrimSpace(raw) == "" {
		return NormalizedLocation{
			Type: TypeOnsite,
			Raw:  "Not specified",
		}
	}

	lower := strings.ToLower(strings.TrimSpace(raw))

	for _, keyword := range remoteKeywords {
		if strings.Contains(lower, keyword) {
			return NormalizedLocation{
				Type: TypeRemote,
				Raw:  raw,
			}
		}
	}

	locationType := TypeOnsite
	for _, keyword := range hybridKeywords {
		if strings.Contains(lower, keyword) {
			locationType = TypeHybrid
			break
		}
	}

	city, country := parseCityCountry(raw)

	return NormalizedLocation{
		City:    city,
		Country: country,
		Type:    locationType,
		Raw:     raw,
	}
}

// parseCityCountry splits a location string on commas. One part is a city;
// two parts are city and country; with three or more the middle parts (state
// or region) are discarded and the last part is the country.
func parseCityCountry(raw string) (string, string) {
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		parts = append(parts, strings.TrimSpace(p))
	}

	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return resolveCityAlias(parts[0]), ""
	case 2:
		return resolveCityAlias(parts[0]), normalizeCountry(parts[1])
	default:
		return resolveCityAlias(parts[0]), normalizeCountry(parts[len(parts)-1])
	}
}

func resolveCityAlias(city string) string {
	if alias, ok := cityAliases[strings.ToLower(city)]; ok {
		return alias
	}
	return city
}

func normalizeCountry(country string) string {
	if mapped, ok := countryMappings[strings.ToLower(strings.TrimSpace(country))]; ok {
		return mapped
	}
	// cases.Caser is stateful and must not be shared between goroutines;
	// construct one per call.
	return cases.Title(language.English).String(country)
}
