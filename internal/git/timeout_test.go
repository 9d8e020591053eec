package git

import (
	"testing"
	"time"
)

func TestTimeout_Default(t *testing.T) {
	t.Setenv(TimeoutEnv, "")
	if got := Timeout(); got != DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", got, DefaultTimeout)
	}
}

func TestTimeout_EnvOverride(t *testing.T) {
	t.Setenv(TimeoutEnv, "5")
	if got := Timeout(); got != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", got)
	}
}

func TestTimeout_InvalidEnv(t *testing.T) {
	for _, v := range []string{"abc", "-1", "0", "1.5"} {
		t.Setenv(TimeoutEnv, v)
		if got := Timeout(); got != DefaultTimeout {
			t.Errorf("Timeout() with %s=%q = %v, want %v", TimeoutEnv, v, got, DefaultTimeout)
		}
	}
}

func TestSetDefaultTimeout(t *testing.T) {
	t.Setenv(TimeoutEnv, "")
	defer SetDefaultTimeout(DefaultTimeout)

	SetDefaultTimeout(90 * time.Second)
	if got := Timeout(); got != 90*time.Second {
		t.Errorf("Timeout() = %v, want 90s", got)
	}

	// Env still wins over the configured default.
	t.Setenv(TimeoutEnv, "7")
	if got := Timeout(); got != 7*time.Second {
		t.Errorf("Timeout() = %v, want 7s", got)
	}

	// Non-positive values are ignored.
	SetDefaultTimeout(0)
	t.Setenv(TimeoutEnv, "")
	if got := Timeout(); got != 90*time.Second {
		t.Errorf("Timeout() = %v, want 90s after SetDefaultTimeout(0)", got)
	}
}
