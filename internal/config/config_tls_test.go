package config

import "testing"

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr bool
	}{
		{
			name: "disabled mode",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name: "server mode with cert and key",
			tls:  TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem"},
		},
		{
			name:    "server mode missing key",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem"},
			wantErr: true,
		},
		{
			name:    "server mode missing cert",
			tls:     TLSConfig{Mode: "server", KeyFile: "key.pem"},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			tls:     TLSConfig{Mode: "mutual"},
			wantErr: true,
		},
		{
			name: "valid min version 1.3",
			tls:  TLSConfig{Mode: "disabled", MinVersion: "1.3"},
		},
		{
			name:    "invalid min version",
			tls:     TLSConfig{Mode: "disabled", MinVersion: "1.1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Server.TLS = tt.tls

			err := cfg.ValidateTLSConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTLSConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
