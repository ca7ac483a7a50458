package repository

import (
	"fmt"
	"strings"
	"testing"
)

func TestTagNameFilter_ToleratesDuplicateCaseVariants(t *testing.T) {
	// Names are unique case-sensitively, so "News" and "news" can both be
	// approved tags and LOWER(name) = LOWER($1) then matches two rows. A
	// scalar comparison would make Postgres fail the whole listing with
	// "more than one row returned by a subquery used as an expression".
	if strings.Contains(tagNameFilter, "tag_id = (") {
		t.Fatal("tag name filter compares tag_id against a scalar subquery")
	}
	if !strings.Contains(tagNameFilter, "tag_id IN (") {
		t.Fatal("tag name filter must match tag ids with a membership test")
	}
}

func TestListingQuery_Composition(t *testing.T) {
	filters := map[string]string{
		"none":      "",
		"tag id":    tagIDFilter,
		"tag name":  tagNameFilter,
		"substring": substringFilter,
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			query := fmt.Sprintf(listingQuery, filter)

			if !strings.Contains(query, "WHERE c.status = 'approved'") {
				t.Error("listing must only ever return approved channels")
			}
			if !strings.Contains(query, "ORDER BY avg_rating DESC, review_count DESC, c.created_at DESC") {
				t.Error("listing must keep the fixed ranking order")
			}
			if filter != "" && !strings.Contains(query, filter) {
				t.Error("filter was not spliced into the query")
			}
		})
	}
}
