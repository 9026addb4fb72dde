package accesscode

import (
	"strings"
	"testing"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	t.Parallel()

	code, err := Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != CodeLength {
		t.Fatalf("expected code length %d, got %d", CodeLength, len(code))
	}

	for i := 0; i < len(code); i++ {
		if strings.IndexByte(codeAlphabet, code[i]) == -1 {
			t.Fatalf("code contains invalid character %q", code[i])
		}
	}
}

func TestGenerate_UniqueWithinSmallBatch(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, exists := seen[code]; exists {
			t.Fatalf("duplicate code generated in small batch: %s", code)
		}
		seen[code] = struct{}{}
	}
}

func TestTimestampedID_Shape(t *testing.T) {
	t.Parallel()

	id := TimestampedID(6)
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("expected <ms>-<suffix> shape, got %q", id)
	}
	if len(parts[1]) != 6 {
		t.Fatalf("expected 6 char suffix, got %q", parts[1])
	}

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		v := TimestampedID(6)
		if _, exists := seen[v]; exists {
			t.Fatalf("duplicate id generated: %s", v)
		}
		seen[v] = struct{}{}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	if got := Normalize("  abc12345 "); got != "ABC12345" {
		t.Fatalf("expected ABC12345, got %q", got)
	}
}
