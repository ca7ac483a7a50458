package models

import (
	"testing"
)

func strptr(s string) *string { return &s }

func TestReview_Validate(t *testing.T) {
	tests := []struct {
		name    string
		review  Review
		wantErr bool
	}{
		{
			name: "Valid signed review",
			review: Review{
				Text:     "Great channel",
				Nickname: strptr("alice"),
				Rating:   4,
			},
			wantErr: false,
		},
		{
			name: "Valid anonymous review",
			review: Review{
				Text:        "Great channel",
				IsAnonymous: true,
				Rating:      5,
			},
			wantErr: false,
		},
		{
			name: "Empty text",
			review: Review{
				Text:     "",
				Nickname: strptr("alice"),
				Rating:   4,
			},
			wantErr: true,
		},
		{
			name: "Rating too low",
			review: Review{
				Text:     "Great channel",
				Nickname: strptr("alice"),
				Rating:   0,
			},
			wantErr: true,
		},
		{
			name: "Rating too high",
			review: Review{
				Text:     "Great channel",
				Nickname: strptr("alice"),
				Rating:   6,
			},
			wantErr: true,
		},
		{
			name: "Missing nickname on signed review",
			review: Review{
				Text:   "Great channel",
				Rating: 4,
			},
			wantErr: true,
		},
		{
			name: "Blank nickname on signed review",
			review: Review{
				Text:     "Great channel",
				Nickname: strptr("  "),
				Rating:   4,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.review.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Review.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
