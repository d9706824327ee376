package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"OPENAI_API_KEY", "LLM_PROVIDER", "AWS_REGION", "API_HOST", "API_PORT", "LOG_LEVEL", "GENERATION_CONFIG_PATH"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Expected provider openai, got %s", cfg.Provider)
	}
	if cfg.Addr() != "127.0.0.1:8000" {
		t.Errorf("Expected addr 127.0.0.1:8000, got %s", cfg.Addr())
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("Expected region us-east-1, got %s", cfg.AWSRegion)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("API_PORT", "9090")
	t.Setenv("API_HOST", "0.0.0.0")

	cfg := LoadConfig()

	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("Expected key from env, got %q", cfg.OpenAIKey)
	}
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("Expected addr 0.0.0.0:9090, got %s", cfg.Addr())
	}
}

func TestWire_MissingKeyIsUnavailable(t *testing.T) {
	cfg := &Config{Provider: ProviderOpenAI}

	deps, err := Wire(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("Wire should not fail on a missing key: %v", err)
	}
	if deps.Generator.Available() {
		t.Error("Expected generator to be unavailable without a key")
	}
}

func TestWire_WithKeyIsAvailable(t *testing.T) {
	cfg := &Config{Provider: ProviderOpenAI, OpenAIKey: "sk-test"}

	deps, err := Wire(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("Wire failed: %v", err)
	}
	if !deps.Generator.Available() {
		t.Error("Expected generator to be available with a key")
	}
}

func TestWire_UnknownProviderIsUnavailable(t *testing.T) {
	cfg := &Config{Provider: "watsonx", OpenAIKey: "sk-test"}

	deps, err := Wire(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("Wire failed: %v", err)
	}
	if deps.Generator.Available() {
		t.Error("Expected generator to be unavailable for an unknown provider")
	}
}

func TestWire_BedrockWithoutModelIsUnavailable(t *testing.T) {
	cfg := &Config{Provider: ProviderBedrock, AWSRegion: "us-east-1"}

	deps, err := Wire(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("Wire failed: %v", err)
	}
	if deps.Generator.Available() {
		t.Error("Expected generator to be unavailable without CLAUDE_MODEL_ID")
	}
}

func TestWire_InvalidGenerationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generation.yaml")
	if err := os.WriteFile(path, []byte("max_tokens: -1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := &Config{Provider: ProviderOpenAI, OpenAIKey: "sk-test", GenerationConfigPath: path}

	if _, err := Wire(context.Background(), cfg, testLogger()); err == nil {
		t.Error("Expected error for invalid generation config")
	}
}
