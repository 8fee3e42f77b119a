package config_test

import (
	"testing"

	"github.com/MrWong99/atisvoice/internal/config"
	"github.com/MrWong99/atisvoice/pkg/provider/tts"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/aws"
	"github.com/MrWong99/atisvoice/pkg/provider/tts/gcloud"
)

func TestDiff_NoChanges(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{LogLevel: config.LogInfo, TTS: "AWS:Brian", Pronounce: true}
	d := config.Diff(cfg, cfg)
	if d.Changed() {
		t.Errorf("expected no changes for identical configs, got %+v", d)
	}
}

func TestDiff_LogLevelChanged(t *testing.T) {
	t.Parallel()
	old := &config.Config{LogLevel: config.LogInfo}
	new := &config.Config{LogLevel: config.LogDebug}

	d := config.Diff(old, new)
	if !d.LogLevelChanged {
		t.Error("expected LogLevelChanged=true")
	}
	if d.NewLogLevel != config.LogDebug {
		t.Errorf("expected NewLogLevel=debug, got %q", d.NewLogLevel)
	}
}

func TestDiff_ProviderChanged(t *testing.T) {
	t.Parallel()
	old := &config.Config{TTS: "AWS:Brian"}
	new := &config.Config{TTS: "GC:en-GB-Wavenet-F"}

	d := config.Diff(old, new)
	if !d.ProviderChanged {
		t.Fatal("expected ProviderChanged=true")
	}
	want := tts.GoogleCloud{Voice: gcloud.EnGBWavenetF}
	if !tts.Equal(d.NewProvider, want) {
		t.Errorf("NewProvider = %v, want %v", d.NewProvider, want)
	}
}

func TestDiff_VoiceChangedSameProvider(t *testing.T) {
	t.Parallel()
	old := &config.Config{TTS: "AWS:Brian"}
	new := &config.Config{TTS: "AWS:Amy"}

	d := config.Diff(old, new)
	if !d.ProviderChanged {
		t.Fatal("expected ProviderChanged=true for a voice change")
	}
	if !tts.Equal(d.NewProvider, tts.AmazonWebServices{Voice: aws.Amy}) {
		t.Errorf("NewProvider = %v", d.NewProvider)
	}
}

func TestDiff_SpellingOnlyIsNoChange(t *testing.T) {
	t.Parallel()
	tests := []struct{ old, new string }{
		{"AWS:Brian", "aws:brian"},
		{"", "WIN"},
		{"", "UNKNOWN:thing"},
		{"en-US-Wavenet-A", "GC:en-us-wavenet-a"},
		{"WIN:Microsoft David", "win:microsoft david"},
	}
	for _, tc := range tests {
		d := config.Diff(&config.Config{TTS: tc.old}, &config.Config{TTS: tc.new})
		if d.ProviderChanged {
			t.Errorf("Diff(%q, %q): expected ProviderChanged=false", tc.old, tc.new)
		}
	}
}

func TestDiff_PronounceChanged(t *testing.T) {
	t.Parallel()
	d := config.Diff(&config.Config{}, &config.Config{Pronounce: true})
	if !d.PronounceChanged {
		t.Error("expected PronounceChanged=true")
	}
}

func TestDiff_CredentialsChanged(t *testing.T) {
	t.Parallel()
	old := &config.Config{
		TTS: "AWS:Brian",
		AWS: aws.Config{Key: "a", Secret: "b", Region: "eu-west-1"},
	}
	new := &config.Config{
		TTS: "AWS:Brian",
		AWS: aws.Config{Key: "a", Secret: "rotated", Region: "eu-west-1"},
	}

	d := config.Diff(old, new)
	if !d.CredentialsChanged {
		t.Error("expected CredentialsChanged=true")
	}
	if d.ProviderChanged {
		t.Error("expected ProviderChanged=false")
	}
}

func TestDiff_UnselectedCredentialsIgnored(t *testing.T) {
	t.Parallel()
	old := &config.Config{TTS: "WIN"}
	new := &config.Config{TTS: "WIN", AWS: aws.Config{Key: "new"}}

	if d := config.Diff(old, new); d.CredentialsChanged {
		t.Error("expected CredentialsChanged=false when Windows is selected")
	}
}
