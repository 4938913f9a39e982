package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty file returns ErrFileEmpty",
			config:  Config{File: "", LoadPolicy: LoadPolicyFallback},
			wantErr: ErrFileEmpty,
		},
		{
			name:    "unknown policy returns ErrLoadPolicyUnknown",
			config:  Config{File: "/tmp/contacts.json", LoadPolicy: "lenient"},
			wantErr: ErrLoadPolicyUnknown,
		},
		{
			name:    "valid fallback config",
			config:  Config{File: "/tmp/contacts.json", LoadPolicy: LoadPolicyFallback},
			wantErr: nil,
		},
		{
			name:    "valid strict config",
			config:  Config{File: "/tmp/contacts.json", LoadPolicy: LoadPolicyStrict},
			wantErr: nil,
		},
		{
			name:    "empty policy is valid",
			config:  Config{File: "contacts.json"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
