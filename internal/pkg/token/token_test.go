package token

import (
	"regexp"
	"testing"
)

var (
	idPattern   = regexp.MustCompile(`^[0-9a-f]{32}$`)
	codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
)

func TestNewIsHexAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New()
		if !idPattern.MatchString(id) {
			t.Fatalf("unexpected id format %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Code(6)
		if err != nil {
			t.Fatalf("code: %v", err)
		}
		if !codePattern.MatchString(code) {
			t.Fatalf("unexpected code %q", code)
		}
	}
	if code, err := Code(0); err != nil || code != "" {
		t.Fatalf("expected empty code, got %q err=%v", code, err)
	}
}
