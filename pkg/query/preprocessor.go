package query

import (
	"strings"

	"vape-support-be/pkg/lexicon"
)

// Material categories detected in a query. Hemp wins over the rest; a query
// naming both concentrate and dry-herb terms is ambiguous and stays unknown.
const (
	MaterialUnknown     = "unknown"
	MaterialConcentrate = "concentrate"
	MaterialDryHerb     = "dry_herb"
	MaterialHemp        = "hemp"
)

// Intent hint tokens emitted by the preprocessor.
const (
	HintTroubleshooting = "troubleshooting"
	HintHowTo           = "how_to"
	HintComparison      = "comparison"
	HintShopping        = "shopping"
)

// Preprocessed holds every signal extracted from one raw message. It is
// created and discarded within a single request.
type Preprocessed struct {
	Cleaned  string
	Material string
	Hints    []string
	Mentions []string // canonical product tags, zero or more

	IsComparison      bool
	IsShopping        bool
	IsTroubleshooting bool
}

// HasHint reports whether the given hint token was extracted.
func (p *Preprocessed) HasHint(hint string) bool {
	for _, h := range p.Hints {
		if h == hint {
			return true
		}
	}
	return false
}

// Preprocessor normalizes raw messages and extracts intent signals. It is a
// pure function over the shared lexicon and never fails; absence of signal
// yields unknown/empty fields.
type Preprocessor struct{}

func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Process lower-cases and trims the message, then runs material, mention and
// hint detection over the normalized text.
func (p *Preprocessor) Process(raw string) *Preprocessed {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	result := &Preprocessed{
		Cleaned:  cleaned,
		Material: detectMaterial(cleaned),
		Mentions: detectMentions(cleaned),
		Hints:    extractHints(cleaned),
	}

	result.IsComparison = result.HasHint(HintComparison)
	result.IsShopping = result.HasHint(HintShopping)
	result.IsTroubleshooting = result.HasHint(HintTroubleshooting)

	return result
}

func detectMaterial(cleaned string) string {
	if lexicon.Matches(lexicon.Hemp, cleaned) {
		return MaterialHemp
	}

	hasConcentrate := lexicon.Matches(lexicon.Concentrate, cleaned)
	hasDryHerb := lexicon.Matches(lexicon.DryHerb, cleaned)

	switch {
	case hasConcentrate && hasDryHerb:
		// Ambiguous, do not guess.
		return MaterialUnknown
	case hasConcentrate:
		return MaterialConcentrate
	case hasDryHerb:
		return MaterialDryHerb
	}
	return MaterialUnknown
}

func detectMentions(cleaned string) []string {
	var tags []string
	for _, tag := range lexicon.ProductTags {
		for _, alias := range lexicon.ProductAliases[tag] {
			if strings.Contains(cleaned, alias) {
				tags = append(tags, tag)
				break
			}
		}
	}
	return tags
}

func extractHints(cleaned string) []string {
	var hints []string
	if lexicon.Matches(lexicon.Troubleshooting, cleaned) {
		hints = append(hints, HintTroubleshooting)
	}
	if lexicon.Matches(lexicon.HowTo, cleaned) {
		hints = append(hints, HintHowTo)
	}
	if lexicon.Matches(lexicon.Comparison, cleaned) {
		hints = append(hints, HintComparison)
	}
	if lexicon.Matches(lexicon.Shopping, cleaned) {
		hints = append(hints, HintShopping)
	}
	return hints
}
