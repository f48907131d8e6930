package llm

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini default provider, got %q", cfg.Provider)
	}
	if cfg.Gemini.Model == "" || cfg.OpenAI.Model == "" || cfg.Anthropic.Model == "" {
		t.Fatal("expected default models for all providers")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("INTERVU_LLM_PROVIDER", "openai")
	t.Setenv("INTERVU_OPENAI_API_KEY", "sk-test")
	t.Setenv("INTERVU_OPENAI_MODEL", "gpt-4o")
	t.Setenv("INTERVU_OPENAI_BASE_URL", "https://openrouter.ai/api/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected OpenAI config: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("unexpected base URL: %q", cfg.OpenAI.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win discovery, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("unexpected key: %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing gemini key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider should not need a key: %v", err)
	}

	cfg.Provider = "watson"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
