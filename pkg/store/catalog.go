package store

// Product represents a single catalog entry. The catalog is loaded once at
// startup and is read-only for the lifetime of the process.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	FullName    string            `json:"full_name"`
	URL         string            `json:"url"` // canonical dedup key; may be empty
	Price       string            `json:"price"`
	Category    string            `json:"category"`
	Priority    int               `json:"priority"` // lower = more prominent
	Boost       float64           `json:"boost"`    // search boost multiplier, default 1.0
	Description string            `json:"description"`
	Features    []string          `json:"features"`
	Keywords    []string          `json:"keywords"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// CachedAnswer is a pre-authored response triggered by keyword containment.
type CachedAnswer struct {
	Name        string            `json:"name"`
	FullName    string            `json:"full_name"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Features    []string          `json:"features"`
	Keywords    []string          `json:"keywords"` // trigger set, matched as substrings
	URL         string            `json:"url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
