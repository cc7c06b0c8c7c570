package config

import (
	"io"
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DEBUFF_TABLE", "DEBUFF_SORT", "DEBUFF_SOUND", "DEBUFF_DEBUG"} {
		// Setenv restores the original value on cleanup
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("test", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{Sort: SortTable}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUFF_TABLE", "env.yaml")
	t.Setenv("DEBUFF_SORT", "name")
	t.Setenv("DEBUFF_SOUND", "true")

	t.Run("Env only", func(t *testing.T) {
		cfg, err := Load("test", nil)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		want := Config{TablePath: "env.yaml", Sort: SortName, Sound: true}
		if cfg != want {
			t.Errorf("Load() = %+v, want %+v", cfg, want)
		}
	})

	t.Run("Flags override env", func(t *testing.T) {
		cfg, err := Load("test", []string{"-table", "flag.yaml", "-sort", "table", "-sound=false", "-debug"})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		want := Config{TablePath: "flag.yaml", Sort: SortTable, Debug: true}
		if cfg != want {
			t.Errorf("Load() = %+v, want %+v", cfg, want)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"Bad sort flag", nil, []string{"-sort", "random"}},
		{"Bad sort env", map[string]string{"DEBUFF_SORT": "random"}, nil},
		{"Bad bool env", map[string]string{"DEBUFF_SOUND": "maybe"}, nil},
		{"Unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load("test", tt.args); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func init() {
	// keep flag usage output out of test logs
	flagOutput = io.Discard
}
