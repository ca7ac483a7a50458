package cache

import "testing"

func TestListingKey(t *testing.T) {
	tests := []struct {
		name   string
		search string
		tag    string
		want   string
	}{
		{
			name: "No filters",
			want: "channels:list:s=|t=",
		},
		{
			name:   "Search only",
			search: "tech",
			want:   "channels:list:s=tech|t=",
		},
		{
			name: "Tag only",
			tag:  "Новости",
			want: "channels:list:s=|t=Новости",
		},
		{
			name:   "Both filters",
			search: "tech",
			tag:    "news",
			want:   "channels:list:s=tech|t=news",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListingKey(tt.search, tt.tag); got != tt.want {
				t.Errorf("ListingKey(%q, %q) = %q, want %q", tt.search, tt.tag, got, tt.want)
			}
		})
	}
}

func TestListingKey_DistinctFilters(t *testing.T) {
	// Different filter combinations must never collide.
	if ListingKey("a", "") == ListingKey("", "a") {
		t.Error("search and tag filters produced the same cache key")
	}
}
