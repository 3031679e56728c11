package index

// countryAliases maps common name variants to the canonical names used by
// the map view's geo dataset. Canonical forms never appear as keys, which
// keeps normalization idempotent.
var countryAliases = map[string]string{
	"USA":                        "United States of America",
	"US":                         "United States of America",
	"United States":              "United States of America",
	"UK":                         "United Kingdom",
	"Britain":                    "United Kingdom",
	"Great Britain":              "United Kingdom",
	"Russian Federation":         "Russia",
	"Republic of Korea":          "South Korea",
	"Korea, South":               "South Korea",
	"Korea":                      "South Korea",
	"Czech Republic":             "Czechia",
	"UAE":                        "United Arab Emirates",
	"Viet Nam":                   "Vietnam",
	"People's Republic of China": "China",
	"Mainland China":             "China",
	"Taiwan, Province of China":  "Taiwan",
	"Holland":                    "Netherlands",
	"The Netherlands":            "Netherlands",
}

// CanonicalName maps a single country name variant to its canonical form.
// Unknown names pass through unchanged.
func CanonicalName(name string) string {
	if canonical, ok := countryAliases[name]; ok {
		return canonical
	}
	return name
}

// Normalize rewrites country names to their canonical forms. It is pure,
// order-preserving, and never drops a record; only the Country field
// changes.
func Normalize(records []ValidatedRecord) []ValidatedRecord {
	out := make([]ValidatedRecord, len(records))
	for i, rec := range records {
		rec.Country = CanonicalName(rec.Country)
		out[i] = rec
	}
	return out
}
