package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP:      HTTPConfig{Port: 8080},
		Embedding: EmbeddingConfig{APIKey: "test-key"},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing embedding api key")
	}
}

func TestValidate_NegativeWeight(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.WSkill = -0.1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative scoring weight")
	}
}

func TestValidate_NegativeBiasThreshold(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.BiasDeltaFlag = -0.01

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative bias threshold")
	}
}

func TestValidate_CacheEnabledWithoutAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled cache without addrs")
	}

	cfg.Cache.Addrs = []string{"localhost:6379"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with addrs set: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.WriteTimeoutSec != 120 {
		t.Errorf("expected WriteTimeoutSec=120, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Embedding.Provider != "openai" {
		t.Errorf("expected Provider=openai, got %q", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected default embedding model, got %q", cfg.Embedding.Model)
	}
	if cfg.Explanation.Model != "gpt-4o-mini" {
		t.Errorf("expected default explanation model, got %q", cfg.Explanation.Model)
	}
	if cfg.Scoring.WEmbed != 0.55 || cfg.Scoring.WSkill != 0.30 || cfg.Scoring.WExp != 0.15 {
		t.Errorf("unexpected default weights: %+v", cfg.Scoring)
	}
	if cfg.Scoring.BiasDeltaFlag != 0.06 {
		t.Errorf("expected BiasDeltaFlag=0.06, got %v", cfg.Scoring.BiasDeltaFlag)
	}
	if cfg.Cache.TTLHours != 168 {
		t.Errorf("expected TTLHours=168, got %d", cfg.Cache.TTLHours)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 9090, WriteTimeoutSec: 60},
		Scoring: ScoringConfig{
			WEmbed: 0.5, WSkill: 0.4, WExp: 0.1, BiasDeltaFlag: 0.1,
		},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected Port=9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Scoring.WEmbed != 0.5 || cfg.Scoring.BiasDeltaFlag != 0.1 {
		t.Errorf("defaults must not override explicit scoring: %+v", cfg.Scoring)
	}
}

func TestSettings(t *testing.T) {
	cfg := Config{
		Embedding: EmbeddingConfig{Model: "text-embedding-3-small"},
		Scoring:   ScoringConfig{WEmbed: 0.55, WSkill: 0.3, WExp: 0.15, BiasDeltaFlag: 0.06},
	}
	s := cfg.Settings()

	if s.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("unexpected model %q", s.EmbeddingModel)
	}
	if s.WEmbed != 0.55 || s.WSkill != 0.3 || s.WExp != 0.15 || s.BiasDeltaFlag != 0.06 {
		t.Errorf("unexpected settings: %+v", s)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("HIRELENS_TEST_KEY", "secret")

	got := string(expandEnvVars([]byte("api_key: ${HIRELENS_TEST_KEY}")))
	if got != "api_key: secret" {
		t.Errorf("expected expansion, got %q", got)
	}

	got = string(expandEnvVars([]byte("model: ${HIRELENS_TEST_UNSET:-fallback}")))
	if got != "model: fallback" {
		t.Errorf("expected default expansion, got %q", got)
	}

	got = string(expandEnvVars([]byte("model: ${HIRELENS_TEST_UNSET}")))
	if got != "model: " {
		t.Errorf("expected empty expansion, got %q", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("expected local default, got %q", got)
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("expected prod, got %q", got)
	}
}
