package config

import "testing"

func validConfig() Config {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Embedding: EmbeddingConfig{
			APIKey: "test-key",
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_TemperatureOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Generation.Temperature = 2.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
}

func TestValidate_EmptyPrincipal(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.Principals = map[string]string{"some-token": ""}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty principal identity")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected default embedding model, got %q", cfg.Embedding.Model)
	}
	if cfg.Generation.Model != "gpt-3.5-turbo" {
		t.Errorf("expected default generation model, got %q", cfg.Generation.Model)
	}
	if cfg.Generation.MaxTokens != 100 {
		t.Errorf("expected MaxTokens=100, got %d", cfg.Generation.MaxTokens)
	}
	if cfg.Generation.Temperature != 0.7 {
		t.Errorf("expected Temperature=0.7, got %v", cfg.Generation.Temperature)
	}
	if cfg.Recommend.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Recommend.TopK)
	}
	if cfg.Storage.KeyPrefix != "promptrec:" {
		t.Errorf("expected KeyPrefix=promptrec:, got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Storage.HistoryLimit != 50 {
		t.Errorf("expected HistoryLimit=50, got %d", cfg.Storage.HistoryLimit)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Recommend:  RecommendConfig{TopK: 10},
		Generation: GenerationConfig{Temperature: 0.2},
	}
	cfg.ApplyDefaults()

	if cfg.Recommend.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Recommend.TopK)
	}
	if cfg.Generation.Temperature != 0.2 {
		t.Errorf("expected Temperature=0.2, got %v", cfg.Generation.Temperature)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PROMPTREC_TEST_KEY", "sk-secret")

	in := []byte("api_key: ${PROMPTREC_TEST_KEY}\nbase_url: ${PROMPTREC_TEST_URL:-https://api.openai.com/v1}")
	out := string(expandEnvVars(in))

	want := "api_key: sk-secret\nbase_url: https://api.openai.com/v1"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
