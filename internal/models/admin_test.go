package models

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestCreateAdminRequest_Binding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "Valid request",
			body: `{"username":"root","password":"secret"}`,
		},
		{
			name: "Short password accepted",
			body: `{"username":"root","password":"abc"}`,
		},
		{
			name:    "Missing username",
			body:    `{"password":"secret"}`,
			wantErr: true,
		},
		{
			name:    "Missing password",
			body:    `{"username":"root"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateAdminRequest
			err := binding.JSON.BindBody([]byte(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Errorf("BindBody(%s) error = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
		})
	}
}
