package id

import (
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	reHex32     = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reSynthetic = regexp.MustCompile(`^[a-z0-9]{7}-[a-z0-9]{7}-[a-z0-9]{7}$`)
	reReference = regexp.MustCompile(`^CIBIL-[A-Z0-9]{9}$`)
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestSynthetic_Format(t *testing.T) {
	f := gofakeit.New(42)
	for i := 0; i < 100; i++ {
		got := Synthetic(f)
		if !reSynthetic.MatchString(got) {
			t.Fatalf("synthetic id %q does not match %s", got, reSynthetic)
		}
	}
}

func TestSynthetic_SeededIsDeterministic(t *testing.T) {
	a := Synthetic(gofakeit.New(7))
	b := Synthetic(gofakeit.New(7))
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestReference_Format(t *testing.T) {
	f := gofakeit.New(42)
	for i := 0; i < 100; i++ {
		got := Reference(f)
		if !reReference.MatchString(got) {
			t.Fatalf("reference %q does not match %s", got, reReference)
		}
	}
}
