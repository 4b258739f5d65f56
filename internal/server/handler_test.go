package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/observability"
)

const (
	testResume = `Senior Software Engineer
Developed microservices in golang and deployed them to kubernetes.
Implemented CI pipelines and led a team of four engineers.`

	testJobDescription = `We are looking for a golang engineer with kubernetes experience.
The role involves building microservices and maintaining CI pipelines for our platform team.`
)

func newTestServer(t *testing.T, apiKeys []string) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	appCfg := &config.Config{}
	appCfg.Analysis.TopKeywords = 20
	appCfg.Analysis.MaxPromptChars = 4000
	appCfg.Analysis.MinJobDescLen = 50

	srv := NewServer(appCfg, ServerConfig{
		Host:           "localhost",
		Port:           "0",
		Version:        "test",
		APIKeys:        apiKeys,
		MaxRequestSize: 1024 * 1024,
	}, logger)

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, appCfg)
	if err != nil {
		t.Fatalf("Failed to create observability manager: %v", err)
	}

	return srv, om
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestScoreHandler(t *testing.T) {
	srv, om := newTestServer(t, nil)
	handler := srv.createScoreHandler(om)

	body, _ := json.Marshal(AnalyzeRequest{
		ResumeText:     testResume,
		JobDescription: testJobDescription,
	})

	rec := postJSON(t, handler, string(body))

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200. Body: %s", rec.Code, rec.Body.String())
	}

	var resp AnalysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.ATSScore < 0 || resp.ATSScore > 100 {
		t.Errorf("ATSScore = %d, want 0..100", resp.ATSScore)
	}
	if len(resp.MatchedKeywords) == 0 {
		t.Error("Expected at least one matched keyword for overlapping texts")
	}
}

func TestScoreHandlerRejectsShortJobDescription(t *testing.T) {
	srv, om := newTestServer(t, nil)
	handler := srv.createScoreHandler(om)

	body, _ := json.Marshal(AnalyzeRequest{
		ResumeText:     testResume,
		JobDescription: "too short",
	})

	rec := postJSON(t, handler, string(body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400. Body: %s", rec.Code, rec.Body.String())
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected error field in response")
	}
}

func TestScoreHandlerRejectsEmptyResume(t *testing.T) {
	srv, om := newTestServer(t, nil)
	handler := srv.createScoreHandler(om)

	body, _ := json.Marshal(AnalyzeRequest{
		ResumeText:     "",
		JobDescription: testJobDescription,
	})

	rec := postJSON(t, handler, string(body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400. Body: %s", rec.Code, rec.Body.String())
	}
}

func TestScoreHandlerRejectsNonJSONContentType(t *testing.T) {
	srv, om := newTestServer(t, nil)
	handler := srv.createScoreHandler(om)

	req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader("resume"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv, _ := newTestServer(t, []string{"secret-key-12345"})

	protected := srv.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", nil)
		rec := httptest.NewRecorder()
		protected(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", rec.Code)
		}
	})

	t.Run("invalid key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		rec := httptest.NewRecorder()
		protected(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid key in header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", nil)
		req.Header.Set("X-API-Key", "secret-key-12345")
		rec := httptest.NewRecorder()
		protected(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Status = %d, want 200", rec.Code)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", nil)
		req.Header.Set("Authorization", "Bearer secret-key-12345")
		rec := httptest.NewRecorder()
		protected(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Status = %d, want 200", rec.Code)
		}
	})

	t.Run("no keys configured allows all", func(t *testing.T) {
		open, _ := newTestServer(t, nil)
		openHandler := open.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/score", nil)
		rec := httptest.NewRecorder()
		openHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Status = %d, want 200", rec.Code)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "192.0.2.10:54321",
			want:       "192.0.2.10",
		},
		{
			name:       "x-forwarded-for",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			want:       "198.51.100.7",
		},
		{
			name:       "invalid forwarded entries fall through",
			remoteAddr: "192.0.2.20:443",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "192.0.2.20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
