package players

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	valid := primitive.NewObjectID()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{
			name: "valid hex id",
			id:   valid.Hex(),
		},
		{
			name:    "empty string",
			id:      "",
			wantErr: ErrMalformedID,
		},
		{
			name:    "too short",
			id:      "abc123",
			wantErr: ErrMalformedID,
		},
		{
			name:    "non-hex characters",
			id:      "zzzzzzzzzzzzzzzzzzzzzzzz",
			wantErr: ErrMalformedID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := ParseID(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseID(%q) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) unexpected error: %v", tt.id, err)
			}
			if oid != valid {
				t.Errorf("ParseID(%q) = %v, want %v", tt.id, oid, valid)
			}
		})
	}
}
