package answercache

import "vape-support-be/pkg/store"

// Defaults is the compiled-in answer set used when the external answer file is
// missing or unparsable. The request path keeps working on a degraded cache
// instead of failing startup; the loader logs the downgrade.
func Defaults() []store.CachedAnswer {
	return []store.CachedAnswer{
		{
			Name:        "V5",
			FullName:    "V5 Advanced Concentrate Atomizer",
			Description: "The legendary V5 - the most popular atomizer in the lineup. Silicon carbide cup for pure flavor, works with any 510 threaded mod.",
			Price:       "$40-50",
			Features: []string{
				"Silicon carbide (SiC) cup",
				"Works 350-500F",
				"Requires mod with 30W+ capability",
				"Easy to clean",
			},
			Keywords: []string{"what is v5", "what is the v5", "tell me about v5", "buy v5", "version 5"},
			URL:      "https://ineedhemp.com/product/v5/",
		},
		{
			Name:        "V5 XL",
			FullName:    "V5 XL Extended Life Atomizer",
			Description: "Everything you love about the V5, but bigger. 30% larger cup means more per load and better heat distribution.",
			Price:       "$50-60",
			Features: []string{
				"30% larger SiC cup than regular V5",
				"Same SiC technology",
				"Needs 35W+ mod",
			},
			Keywords: []string{"v5 xl", "v5xl", "v 5 xl", "extra large", "bigger v5"},
			URL:      "https://ineedhemp.com/product/v5-xl/",
		},
		{
			Name:        "Core 2.0 Deluxe",
			FullName:    "Core 2.0 Deluxe Wireless Enail",
			Description: "All-in-one e-rig. No mod needed: built-in battery, glass bubbler included, digital temperature control.",
			Price:       "$199-249",
			Features: []string{
				"Complete kit, nothing else needed",
				"Built-in 3000mAh battery",
				"Digital temp control via app",
			},
			Keywords: []string{"core deluxe", "core 2", "e-rig", "enail", "all in one"},
			URL:      "https://ineedhemp.com/product/core-2-0-deluxe/",
		},
		{
			Name:        "Nice Dreamz",
			FullName:    "Nice Dreamz Portable Flower Vaporizer",
			Description: "Dry herb vaporizer with true convection heating for flower enthusiasts.",
			Price:       "$129-149",
			Features: []string{
				"Designed for dry herb",
				"Precise temperature control",
				"True convection heating",
			},
			Keywords: []string{"nice dreamz", "nicedreamz", "nice dreams", "herb vaporizer"},
			URL:      "https://ineedhemp.com/product/nice-dreamz/",
		},
	}
}
