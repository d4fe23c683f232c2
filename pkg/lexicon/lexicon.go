// Package lexicon is the single source of truth for every keyword set used by
// the query pipeline. The preprocessor, the intent classifier and the
// conversation state machine all reference these sets instead of carrying
// their own literals, so a vocabulary change lands in exactly one place.
package lexicon

import "strings"

// Version identifies the term-set revision. Bump when any set changes so the
// conversation logs can be correlated with the vocabulary that produced them.
const Version = "2025-08-1"

// Named term sets.
const (
	Concentrate     = "material.concentrate"
	DryHerb         = "material.dry_herb"
	Hemp            = "material.hemp"
	Comparison      = "hint.comparison"
	Shopping        = "hint.shopping"
	Troubleshooting = "hint.troubleshooting"
	HowTo           = "hint.how_to"
	OffTopic        = "classifier.off_topic"
	OnTopic         = "classifier.on_topic"
	CustomerService = "classifier.customer_service"
	StateComparing  = "state.comparing"
	StateTrouble    = "state.troubleshooting"
	StateBrowsing   = "state.browsing"
	FollowUpCues    = "followup.cues"
	FollowUpPrefix  = "followup.prefix_cues"
)

var sets = map[string][]string{
	Concentrate: {
		"wax", "concentrate", "dabs", "dab", "oil", "shatter", "budder",
		"rosin", "sauce", "crumble", "distillate", "live resin", "hash oil",
	},
	DryHerb: {
		"flower", "dry herb", "herb", "bud", "nugs",
	},
	Hemp: {
		"hemp", "shirt", "clothing", "clothes", "hoodie", "boxer",
		"apparel", "tank", "t-shirt", "tshirt",
	},
	Comparison: {
		"vs", "versus", "compare", "difference between", "better than",
	},
	Shopping: {
		"buy", "purchase", "recommend", "best", "top", "which",
	},
	Troubleshooting: {
		"broken", "not working", "problem", "issue", "fix", "help",
		"won't", "wont", "can't", "cant", "doesn't", "doesnt",
		"error", "wrong", "bad",
	},
	HowTo: {
		"how to", "how do", "setup", "install", "use", "clean",
	},
	OffTopic: {
		"weather", "rain", "snow", "sunny", "sports", "football",
		"basketball", "baseball", "soccer", "movie", "film", "netflix",
		"politics", "election", "pizza", "burger", "restaurant",
		"music", "song", "concert", "video game", "xbox", "playstation",
	},
	// Narrow on-topic allowlist. A genuinely off-topic message containing one
	// of these words will NOT be classified off-topic; kept literal for
	// compatibility, do not extend without a product decision.
	OnTopic: {
		"vape", "vapor", "core", "atomizer", "heater", "coil", "v5",
	},
	CustomerService: {
		"return", "refund", "warranty", "shipping", "order", "tracking",
		"cancel", "exchange", "damaged",
	},
	StateComparing: {
		"vs", "versus", "compare", "difference", "better",
	},
	StateTrouble: {
		"broken", "not working", "problem", "issue", "fix",
	},
	StateBrowsing: {
		"buy", "purchase", "recommend", "best",
	},
	FollowUpCues: {
		"it", "that", "this", "the one",
	},
	FollowUpPrefix: {
		"what about", "tell me more",
	},
}

// ProductAliases maps canonical product tags to alias substrings used for
// mention detection.
var ProductAliases = map[string][]string{
	"v5":        {"v5", "v 5", "version 5", "divine crossing v5"},
	"v5_xl":     {"v5 xl", "v5xl", "xl v5", "v5 extra large"},
	"core":      {"core", "core 2.0", "core deluxe"},
	"tug":       {"tug", "tug 2.0", "tug deluxe"},
	"lightning": {"lightning pen", "lightning"},
	"fogger":    {"fogger", "nice dreamz", "nicedreamz"},
	"ruby":      {"ruby", "ruby twist", "ball vape"},
	"gen2":      {"gen 2", "gen2", "generation 2"},
}

// ProductTags returns the canonical mention tags in a stable order.
var ProductTags = []string{"v5", "v5_xl", "core", "tug", "lightning", "fogger", "ruby", "gen2"}

// PreferenceBuckets maps a preference key to value→terms; the first value
// whose terms match wins for that key.
var PreferenceBuckets = map[string][]struct {
	Value string
	Terms []string
}{
	"experience_level": {
		{Value: "beginner", Terms: []string{"beginner", "new to", "first time", "starter"}},
		{Value: "advanced", Terms: []string{"advanced", "experienced", "expert"}},
	},
	"form_factor": {
		{Value: "portable", Terms: []string{"portable", "travel", "compact", "small"}},
		{Value: "desktop", Terms: []string{"desktop", "home", "stationary"}},
	},
	"priority": {
		{Value: "flavor", Terms: []string{"flavor", "taste", "terp"}},
		{Value: "power", Terms: []string{"powerful", "strong", "potent"}},
		{Value: "ease_of_use", Terms: []string{"easy", "simple", "convenient"}},
		{Value: "price", Terms: []string{"cheap", "affordable", "budget"}},
	},
	"material": {
		{Value: "dry_herb", Terms: []string{"dry herb", "flower", "bud"}},
		{Value: "concentrate", Terms: []string{"concentrate", "wax", "dab", "oil"}},
	},
}

// Terms returns the term set registered under name, or nil.
func Terms(name string) []string {
	return sets[name]
}

// Matches reports whether any term of the named set appears as a substring of
// the (already lowercased) text.
func Matches(name, text string) bool {
	for _, term := range sets[name] {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// MatchesAny is Matches over several sets.
func MatchesAny(text string, names ...string) bool {
	for _, name := range names {
		if Matches(name, text) {
			return true
		}
	}
	return false
}
