package repository

import (
	"reflect"
	"testing"
)

func TestSearchVariants(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{
			name:   "Mixed case produces four variants",
			search: "teCH",
			want:   []string{"teCH", "Tech", "TECH", "tech"},
		},
		{
			name:   "Lowercase input collapses duplicates",
			search: "news",
			want:   []string{"news", "News", "NEWS"},
		},
		{
			name:   "Capitalized input collapses duplicates",
			search: "News",
			want:   []string{"News", "NEWS", "news"},
		},
		{
			name:   "Input is trimmed",
			search: "  games  ",
			want:   []string{"games", "Games", "GAMES"},
		},
		{
			name:   "Cyrillic tag names",
			search: "новости",
			want:   []string{"новости", "Новости", "НОВОСТИ"},
		},
		{
			name:   "Empty input",
			search: "   ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchVariants(tt.search)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchVariants(%q) = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestSearchVariants_OrderPreserved(t *testing.T) {
	// The as-typed variant must always probe first so an exact match wins.
	got := SearchVariants("MuSiC")
	if len(got) == 0 || got[0] != "MuSiC" {
		t.Fatalf("Expected as-typed variant first, got %v", got)
	}
}
