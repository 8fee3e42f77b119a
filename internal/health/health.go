// Package health serves liveness and readiness probes for long-running
// atisvoice processes.
//
//   - /healthz always answers 200 while the process can serve HTTP.
//   - /readyz answers 200 only when every [Checker] passes, 503 otherwise.
//
// Bodies are JSON: {"status": "ok"|"fail", "checks": {name: "ok"|"fail: ..."}}.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MrWong99/atisvoice/internal/config"
	"github.com/MrWong99/atisvoice/pkg/provider/tts"
)

const checkTimeout = 5 * time.Second

// Checker is a named readiness check. Check returns nil when healthy.
type Checker struct {
	Name  string
	Check func(ctx context.Context) error
}

type result struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handler serves /healthz and /readyz. The checker list is fixed at
// construction, so a Handler is safe for concurrent use.
type Handler struct {
	checkers []Checker
}

// New returns a [Handler] running checkers in order on every /readyz request.
func New(checkers ...Checker) *Handler {
	return &Handler{checkers: append([]Checker(nil), checkers...)}
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, result{Status: "ok"})
}

// Readyz runs every checker with a [checkTimeout] deadline derived from the
// request context.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	res := result{Status: "ok", Checks: make(map[string]string, len(h.checkers))}
	status := http.StatusOK

	for _, c := range h.checkers {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		err := c.Check(ctx)
		cancel()

		if err != nil {
			res.Checks[c.Name] = "fail: " + err.Error()
			res.Status = "fail"
			status = http.StatusServiceUnavailable
			continue
		}
		res.Checks[c.Name] = "ok"
	}

	writeJSON(w, status, res)
}

// Register adds the probe routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// SettingsCheck reports whether the config returned by current selects a
// known voice and carries complete credentials for its provider.
func SettingsCheck(current func() *config.Config) Checker {
	return Checker{
		Name: "settings",
		Check: func(_ context.Context) error {
			cfg := current()
			if cfg == nil {
				return errors.New("no settings loaded")
			}
			_, err := cfg.TTSConfig()
			return err
		},
	}
}

// CredentialsCheck resolves the credentials of the selected provider. For
// Amazon Web Services this builds an SDK config and retrieves the static
// credentials from it; Google Cloud and Windows need no resolution.
func CredentialsCheck(current func() *config.Config) Checker {
	return Checker{
		Name: "credentials",
		Check: func(ctx context.Context) error {
			cfg := current()
			if cfg == nil {
				return errors.New("no settings loaded")
			}
			tc, err := cfg.TTSConfig()
			if err != nil {
				return err
			}
			ac, ok := tc.(tts.AmazonWebServicesConfig)
			if !ok {
				return nil
			}
			sdkCfg, err := ac.AWSConfig(ctx)
			if err != nil {
				return err
			}
			if _, err := sdkCfg.Credentials.Retrieve(ctx); err != nil {
				return fmt.Errorf("aws: retrieve credentials: %w", err)
			}
			return nil
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"status":"error"}`, http.StatusInternalServerError)
	}
}
