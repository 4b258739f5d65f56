package config

import (
	"strings"
	"testing"
)

func TestValidateAICredentials(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*Config)
		wantErr string
	}{
		{
			name:    "no keys at all",
			setup:   func(c *Config) {},
			wantErr: "analyze",
		},
		{
			name: "global key covers both operations",
			setup: func(c *Config) {
				c.AI.APIKey = "global-key"
			},
		},
		{
			name: "per-operation keys without a global key",
			setup: func(c *Config) {
				c.AI.Analyze.APIKey = "analyze-key"
				c.AI.Enhance.APIKey = "enhance-key"
			},
		},
		{
			name: "analyze key only",
			setup: func(c *Config) {
				c.AI.Analyze.APIKey = "analyze-key"
			},
			wantErr: "enhance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.setup(cfg)

			err := cfg.ValidateAICredentials()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
