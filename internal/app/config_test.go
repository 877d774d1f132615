package app

import (
	"errors"
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-count", "12", "-auto", "30", "-tps", "4", "-scale", "2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Count != 12 || cfg.Auto != 30 || cfg.TPS != 4 || cfg.Scale != 2 {
		t.Fatalf("unexpected config %+v", *cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Count != 0 {
		t.Fatalf("default count = %d, want 0 (prompt)", cfg.Count)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []Config{
		{Count: 101, TPS: 1, Scale: 1},
		{Count: -1, TPS: 1, Scale: 1},
		{Auto: -1, TPS: 1, Scale: 1},
		{TPS: 0, Scale: 1},
		{TPS: 1, Scale: 0},
	}
	for _, cfg := range cases {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("Validate(%+v) = %v, want ErrInvalidConfig", cfg, err)
		}
	}
}
