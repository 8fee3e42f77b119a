package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrWong99/atisvoice/internal/config"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/aws"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/gcloud"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) result {
	t.Helper()
	var body result
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}
	return body
}

func readyz(t *testing.T, h *Handler) (int, result) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Readyz(rec, httptest.NewRequest("GET", "/readyz", nil))
	return rec.Code, decode(t, rec)
}

func TestHealthz_AlwaysReturns200(t *testing.T) {
	h := New(Checker{Name: "broken", Check: func(context.Context) error { return errors.New("down") }})

	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if body := decode(t, rec); body.Status != "ok" {
		t.Errorf("status = %q, want %q", body.Status, "ok")
	}
}

func TestReadyz(t *testing.T) {
	pass := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("nope") }

	tests := []struct {
		name       string
		checkers   []Checker
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "no checkers",
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
		{
			name:       "all pass",
			checkers:   []Checker{{Name: "a", Check: pass}, {Name: "b", Check: pass}},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantChecks: map[string]string{"a": "ok", "b": "ok"},
		},
		{
			name:       "one fails",
			checkers:   []Checker{{Name: "a", Check: fail}, {Name: "b", Check: pass}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "fail",
			wantChecks: map[string]string{"a": "fail: nope", "b": "ok"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := readyz(t, New(tc.checkers...))
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
			if body.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", body.Status, tc.wantStatus)
			}
			for name, want := range tc.wantChecks {
				if got := body.Checks[name]; got != want {
					t.Errorf("check %q = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestReadyz_CheckerGetsDeadline(t *testing.T) {
	h := New(Checker{Name: "deadline", Check: func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("no deadline")
		}
		return nil
	}})
	if code, body := readyz(t, h); code != http.StatusOK {
		t.Errorf("code = %d, checks = %v", code, body.Checks)
	}
}

func TestRegister_RoutesWork(t *testing.T) {
	mux := http.NewServeMux()
	New().Register(mux)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestSettingsCheck(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{"nil config", nil, "no settings"},
		{"default provider", &config.Config{}, ""},
		{"gcloud with key", &config.Config{TTS: "GC:en-IN-Wavenet-D", GCloud: gcloud.Config{Key: "k"}}, ""},
		{"gcloud without key", &config.Config{TTS: "GC:en-IN-Wavenet-D"}, "key is required"},
		{"unknown voice", &config.Config{TTS: "AWS:Nobody"}, "unknown voice"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := SettingsCheck(func() *config.Config { return tc.cfg })
			err := c.Check(context.Background())
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestCredentialsCheck_AWS(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))

	cfg := &config.Config{
		TTS: "AWS:Ivy",
		AWS: aws.Config{Key: "AKIDTEST", Secret: "s3cr3t", Region: "us-west-2"},
	}
	h := New(CredentialsCheck(func() *config.Config { return cfg }))
	code, body := readyz(t, h)
	if code != http.StatusOK {
		t.Fatalf("code = %d, checks = %v", code, body.Checks)
	}
	if body.Checks["credentials"] != "ok" {
		t.Errorf("credentials = %q, want ok", body.Checks["credentials"])
	}
}

func TestCredentialsCheck_NonAWS(t *testing.T) {
	for _, cfg := range []*config.Config{
		{TTS: "WIN"},
		{TTS: "GC:en-US-Standard-C", GCloud: gcloud.Config{Key: "k"}},
	} {
		c := CredentialsCheck(func() *config.Config { return cfg })
		if err := c.Check(context.Background()); err != nil {
			t.Errorf("tts %q: unexpected error: %v", cfg.TTS, err)
		}
	}
}

func TestCredentialsCheck_Incomplete(t *testing.T) {
	cfg := &config.Config{TTS: "AWS:Ivy", AWS: aws.Config{Key: "AKIDTEST"}}
	c := CredentialsCheck(func() *config.Config { return cfg })
	if err := c.Check(context.Background()); err == nil {
		t.Fatal("expected error for incomplete aws credentials, got nil")
	}
}
