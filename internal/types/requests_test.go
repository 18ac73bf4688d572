package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SummarizeRequest
		wantErr bool
	}{
		{"valid minimal", SummarizeRequest{URL: "https://youtu.be/dQw4w9WgXcQ"}, false},
		{"valid with bounds", SummarizeRequest{URL: "https://youtu.be/x", MaxLength: 150, MinLength: 30}, false},
		{"missing URL", SummarizeRequest{}, true},
		{"negative max", SummarizeRequest{URL: "https://youtu.be/x", MaxLength: -1}, true},
		{"negative min", SummarizeRequest{URL: "https://youtu.be/x", MinLength: -5}, true},
		{"min exceeds max", SummarizeRequest{URL: "https://youtu.be/x", MaxLength: 30, MinLength: 150}, true},
		{"min without max", SummarizeRequest{URL: "https://youtu.be/x", MinLength: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
