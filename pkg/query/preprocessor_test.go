package query

import (
	"reflect"
	"testing"
)

func TestProcessMaterialDetection(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantMaterial string
	}{
		{
			name:         "concentrate terms",
			input:        "best device for wax and dabs",
			wantMaterial: MaterialConcentrate,
		},
		{
			name:         "dry herb terms",
			input:        "something for flower",
			wantMaterial: MaterialDryHerb,
		},
		{
			name:         "hemp wins over concentrate",
			input:        "hemp shirt with wax print",
			wantMaterial: MaterialHemp,
		},
		{
			name:         "both concentrate and dry herb is ambiguous",
			input:        "works with wax and flower",
			wantMaterial: MaterialUnknown,
		},
		{
			name:         "no material signal",
			input:        "hello there",
			wantMaterial: MaterialUnknown,
		},
	}

	p := NewPreprocessor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Process(tt.input)
			if got.Material != tt.wantMaterial {
				t.Errorf("Material = %q, want %q", got.Material, tt.wantMaterial)
			}
		})
	}
}

func TestProcessNormalization(t *testing.T) {
	p := NewPreprocessor()

	got := p.Process("  Best WAX Pen?  ")
	if got.Cleaned != "best wax pen?" {
		t.Errorf("Cleaned = %q, want %q", got.Cleaned, "best wax pen?")
	}

	// Processing an already-cleaned query changes nothing.
	again := p.Process(got.Cleaned)
	if again.Cleaned != got.Cleaned {
		t.Errorf("reprocessing changed query: %q -> %q", got.Cleaned, again.Cleaned)
	}
}

func TestProcessMentions(t *testing.T) {
	p := NewPreprocessor()

	got := p.Process("is the v5 xl better than the core 2.0")
	// v5 alias is a substring of "v5 xl", so both tags are reported; the
	// canonical tag order is preserved.
	want := []string{"v5", "v5_xl", "core"}
	if !reflect.DeepEqual(got.Mentions, want) {
		t.Errorf("Mentions = %v, want %v", got.Mentions, want)
	}

	none := p.Process("do you sell batteries")
	if len(none.Mentions) != 0 {
		t.Errorf("Mentions = %v, want empty", none.Mentions)
	}
}

func TestProcessHints(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantHints []string
	}{
		{
			name:      "troubleshooting",
			input:     "my heater is broken",
			wantHints: []string{HintTroubleshooting},
		},
		{
			name:      "comparison and shopping",
			input:     "which is better, v5 versus core",
			wantHints: []string{HintComparison, HintShopping},
		},
		{
			name:      "how to",
			input:     "how do i load the cup",
			wantHints: []string{HintHowTo},
		},
		{
			name:      "no hints",
			input:     "hello",
			wantHints: nil,
		},
	}

	p := NewPreprocessor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Process(tt.input)
			if !reflect.DeepEqual(got.Hints, tt.wantHints) {
				t.Errorf("Hints = %v, want %v", got.Hints, tt.wantHints)
			}
		})
	}
}
