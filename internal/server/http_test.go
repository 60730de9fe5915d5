package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resumetric/internal/config"
	"resumetric/internal/errors"
	"resumetric/internal/types"
)

func newTestServer(t *testing.T, apiKeys []string) *Server {
	t.Helper()
	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	cfg := ServerConfig{
		Host:           "127.0.0.1",
		Port:           "0",
		Version:        "test",
		APIKeys:        apiKeys,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    5 * time.Second,
		MaxRequestSize: 1 << 20,
	}
	return NewServer(&config.Config{}, cfg, logger)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		apiKeys    []string
		header     map[string]string
		wantStatus int
	}{
		{
			name:       "no keys configured allows everything",
			apiKeys:    nil,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key rejected",
			apiKeys:    []string{"secret-key-12345"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid X-API-Key accepted",
			apiKeys:    []string{"secret-key-12345"},
			header:     map[string]string{"X-API-Key": "secret-key-12345"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid bearer token accepted",
			apiKeys:    []string{"secret-key-12345"},
			header:     map[string]string{"Authorization": "Bearer secret-key-12345"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid key rejected",
			apiKeys:    []string{"secret-key-12345"},
			header:     map[string]string{"X-API-Key": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.apiKeys)
			handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"short", "****"},
		{"12345678", "****"},
		{"123456789abcdef", "12345678****"},
	}
	for _, tt := range tests {
		if got := maskAPIKey(tt.input); got != tt.want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseFileType(t *testing.T) {
	tests := []struct {
		input string
		want  types.FileType
	}{
		{"", types.FileTypeTXT},
		{"txt", types.FileTypeTXT},
		{"TEXT", types.FileTypeTXT},
		{"pdf", types.FileTypePDF},
		{" PDF ", types.FileTypePDF},
		{"docx", types.FileTypeDOCX},
		{"doc", types.FileTypeDOCX},
		{"rtf", types.FileTypeOther},
	}
	for _, tt := range tests {
		if got := parseFileType(tt.input); got != tt.want {
			t.Errorf("parseFileType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetRateLimitKey(t *testing.T) {
	newReq := func(headers map[string]string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req
	}

	t.Run("api key preferred", func(t *testing.T) {
		req := newReq(map[string]string{"X-API-Key": "key-1"})
		if got := getRateLimitKey(req, true, true); got != "api:key-1" {
			t.Errorf("expected api key based key, got %q", got)
		}
	})

	t.Run("bearer token used as api key", func(t *testing.T) {
		req := newReq(map[string]string{"Authorization": "Bearer key-2"})
		if got := getRateLimitKey(req, true, false); got != "api:key-2" {
			t.Errorf("expected bearer based key, got %q", got)
		}
	})

	t.Run("falls back to ip", func(t *testing.T) {
		req := newReq(nil)
		if got := getRateLimitKey(req, true, true); got != "ip:10.0.0.1" {
			t.Errorf("expected ip based key, got %q", got)
		}
	})

	t.Run("disabled returns empty", func(t *testing.T) {
		req := newReq(nil)
		if got := getRateLimitKey(req, false, false); got != "" {
			t.Errorf("expected empty key, got %q", got)
		}
	})
}

func TestRateLimiterAllowsBurstThenBlocks(t *testing.T) {
	logger, _ := errors.New("error")
	limiter := NewRateLimiter(60, time.Minute, 2, logger)
	defer limiter.Close()

	if !limiter.Allow("client-a") {
		t.Fatal("first request should be allowed")
	}
	if !limiter.Allow("client-a") {
		t.Fatal("second request within burst should be allowed")
	}
	if limiter.Allow("client-a") {
		t.Error("third immediate request should exceed the burst capacity")
	}

	// A different key has its own bucket.
	if !limiter.Allow("client-b") {
		t.Error("independent client should not be affected")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{
			name:   "remote addr",
			remote: "192.168.1.10:1234",
			want:   "192.168.1.10",
		},
		{
			name:    "x-forwarded-for wins",
			remote:  "192.168.1.10:1234",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"},
			want:    "203.0.113.5",
		},
		{
			name:    "x-real-ip",
			remote:  "192.168.1.10:1234",
			headers: map[string]string{"X-Real-IP": "198.51.100.7"},
			want:    "198.51.100.7",
		},
		{
			name:    "invalid forwarded ip ignored",
			remote:  "192.168.1.10:1234",
			headers: map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:    "192.168.1.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
