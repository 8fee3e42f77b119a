// Package observe provides the OpenTelemetry metrics of atisvoice.
//
// Metrics are recorded through the OpenTelemetry Metrics API. [InitProvider]
// installs a Prometheus exporter bridge so they can be scraped from /metrics.
// Tests should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/MrWong99/atisvoice/pkg/provider/tts"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/voice"
)

// meterName is the instrumentation scope name used for all atisvoice metrics.
const meterName = "github.com/MrWong99/atisvoice"

// Selection outcomes recorded by [Metrics.RecordSelection].
const (
	OutcomeSelected = "selected"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Metrics holds all OpenTelemetry instruments for the application. All
// fields are safe for concurrent use.
type Metrics struct {
	// ProviderSelections counts parsed provider settings. Attributes:
	//   attribute.String("provider", ...), attribute.String("outcome", ...)
	ProviderSelections metric.Int64Counter

	// VoiceParseErrors counts voice names rejected by a catalog. Attribute:
	//   attribute.String("provider", ...)
	VoiceParseErrors metric.Int64Counter

	// ConfigReloads counts settings reloads. Attribute:
	//   attribute.String("status", ...)
	ConfigReloads metric.Int64Counter

	// Pronunciations counts numbers rendered for speech. Attribute:
	//   attribute.Bool("phonetic", ...)
	Pronunciations metric.Int64Counter
}

// NewMetrics creates a fully initialised [Metrics] struct using mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ProviderSelections, err = m.Int64Counter("atisvoice.tts.selections",
		metric.WithDescription("TTS provider settings parsed, by provider and outcome."),
	); err != nil {
		return nil, err
	}
	if met.VoiceParseErrors, err = m.Int64Counter("atisvoice.tts.voice_parse_errors",
		metric.WithDescription("Voice names rejected by a provider catalog."),
	); err != nil {
		return nil, err
	}
	if met.ConfigReloads, err = m.Int64Counter("atisvoice.config.reloads",
		metric.WithDescription("Settings file reloads by status."),
	); err != nil {
		return nil, err
	}
	if met.Pronunciations, err = m.Int64Counter("atisvoice.spoken.pronunciations",
		metric.WithDescription("Numbers rendered for speech."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call from [otel.GetMeterProvider]. Panics if instrument creation
// fails, which does not happen with the global provider.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordSelection records the result of resolving a provider setting. input
// is the raw setting string, p and err are what [tts.Parse] returned for it.
//
// An empty or unrecognised input that resolves to the default provider counts
// as a fallback, not an error.
func (m *Metrics) RecordSelection(ctx context.Context, input string, p tts.Provider, err error) {
	if err != nil {
		provider := "unknown"
		var pe *voice.ParseError
		if errors.As(err, &pe) {
			provider = pe.Provider
		}
		m.ProviderSelections.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("outcome", OutcomeError),
		))
		m.VoiceParseErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", provider)))
		return
	}
	m.ProviderSelections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", p.Name()),
		attribute.String("outcome", SelectionOutcome(input, p)),
	))
}

// SelectionOutcome classifies a successful parse: [OutcomeFallback] when p is
// the default provider but input did not explicitly ask for it.
func SelectionOutcome(input string, p tts.Provider) string {
	if tts.Equal(p, tts.Default()) && !strings.EqualFold(input, tts.PrefixWindows) {
		return OutcomeFallback
	}
	return OutcomeSelected
}

// RecordConfigReload records a settings reload with the given status
// ("ok" or "error").
func (m *Metrics) RecordConfigReload(ctx context.Context, status string) {
	m.ConfigReloads.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordPronunciation records one number rendered for speech.
func (m *Metrics) RecordPronunciation(ctx context.Context, phonetic bool) {
	m.Pronunciations.Add(ctx, 1, metric.WithAttributes(attribute.Bool("phonetic", phonetic)))
}
