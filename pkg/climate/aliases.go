package climate

import (
	"regexp"
	"strings"
)

// Labels as the planting form submits them, keyed by normKey, mapped to canonical rule values.
var aliases = map[Factor]map[string]string{
	FactorSoilType: {
		"pasir":          "sand",
		"sandy":          "sand",
		"gambut":         "peat",
		"tanah-humus":    "humus",
		"humus":          "humus",
		"tanah-vulkanik": "volcanic",
		"vulkanik":       "volcanic",
		"tanah-laterit":  "laterite",
		"laterit":        "laterite",
		"tanah-berbatu":  "rocky",
		"berbatu":        "rocky",
		"lempung":        "loam",
		"clay":           "loam",
		"tanah-aluvial":  "alluvial",
		"aluvial":        "alluvial",
	},
	FactorHumidity: {
		"rendah": "low",
		"sedang": "medium",
		"tinggi": "high",
	},
	FactorTemperature: {
		"dingin": "cold",
		"sedang": "mild",
		"hangat": "warm",
		"panas":  "hot",
	},
	FactorAltitude: {
		"dataran-rendah":   "lowland",
		"dataran-menengah": "midland",
		"dataran-tinggi":   "highland",
		"low":              "lowland",
		"mid":              "midland",
		"medium":           "midland",
		"high":             "highland",
	},
	FactorIrrigation: {
		"irigasi-permukaan":   "surface",
		"irigasi-tetes":       "drip",
		"irigasi-sprinkler":   "sprinkler",
		"irigasi-subsurface":  "subsurface",
		"irigasi-sumur-pompa": "well-pump",
		"irigasi-tadah-hujan": "rain-fed",
		"tadah-hujan":         "rain-fed",
		"rainfed":             "rain-fed",
		"well":                "well-pump",
		"pump":                "well-pump",
	},
	FactorSeedSource: {
		"benih-komersial":                        "commercial",
		"benih-hasil-panen-sendiri":              "self-harvested",
		"benih-dari-petani-lain":                 "from-other-farmer",
		"benih-dari-balai-penelitian-pemerintah": "research-institute",
		"benih-dari-alam-liar":                   "wild",
		"other-farmer":                           "from-other-farmer",
		"research":                               "research-institute",
		"government":                             "research-institute",
	},
	FactorFertilizer: {
		"pupuk-kandang":      "manure",
		"pupuk-kompos":       "compost",
		"pupuk-hijau":        "green",
		"pupuk-bokashi":      "bokashi",
		"pupuk-hayati":       "microbial",
		"poc":                "liquid-organic",
		"hidroponik-nutrisi": "hydroponic-nutrient",
		"ab-mix":             "hydroponic-nutrient",
		"biofertilizer":      "bio-liquid",
		"sp-36":              "superphosphate",
		"za":                 "ammonium-sulfate",
		"kcl":                "potassium-chloride",
		"osmocote":           "slow-release",
	},
}

var parenRX = regexp.MustCompile(`\([^)]*\)`)

func normKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = parenRX.ReplaceAllString(s, " ")
	s = strings.NewReplacer("_", " ", "/", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), "-")
}

// Canonical maps a form label or key to the canonical value used in rule tables.
// Values without an alias are returned normalized, so canonical keys pass through.
func Canonical(f Factor, raw string) string {
	k := normKey(raw)
	if k == "" {
		return ""
	}
	if v, ok := aliases[f][k]; ok {
		return v
	}
	return k
}
