package envutil

import (
	"os"
	"testing"
)

func TestOrDefault(t *testing.T) {
	const key = "ENVUTIL_TEST_STRING"
	_ = os.Unsetenv(key)
	if got := OrDefault(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	_ = os.Setenv(key, "value")
	defer os.Unsetenv(key)
	if got := OrDefault(key, "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestOrDefaultEmptyTreatedAsUnset(t *testing.T) {
	const key = "ENVUTIL_TEST_EMPTY"
	_ = os.Setenv(key, "")
	defer os.Unsetenv(key)
	if got := OrDefault(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for empty value, got %q", got)
	}
}
