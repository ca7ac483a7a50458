package models

import (
	"testing"
)

func TestChannel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		channel Channel
		wantErr bool
	}{
		{
			name: "Valid channel",
			channel: Channel{
				Title: "Go News",
				Link:  "https://t.me/gonews",
			},
			wantErr: false,
		},
		{
			name: "Empty title",
			channel: Channel{
				Title: "",
				Link:  "https://t.me/gonews",
			},
			wantErr: true,
		},
		{
			name: "Whitespace title",
			channel: Channel{
				Title: "   ",
				Link:  "https://t.me/gonews",
			},
			wantErr: true,
		},
		{
			name: "Empty link",
			channel: Channel{
				Title: "Go News",
				Link:  "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.channel.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Channel.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
