package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

const (
	segmentPattern   = "[a-z0-9]{7}"
	referencePattern = "[A-Z0-9]{9}"

	// ReferencePrefix marks bureau reference codes.
	ReferencePrefix = "CIBIL-"
)

// Synthetic returns three lowercase alphanumeric segments joined by hyphens.
// Collisions are possible; callers must not rely on global uniqueness.
func Synthetic(f *gofakeit.Faker) string {
	segs := make([]string, 3)
	for i := range segs {
		segs[i] = f.Regex(segmentPattern)
	}
	return strings.Join(segs, "-")
}

// Reference returns a bureau-style reference code, e.g. CIBIL-7QK2M9XA1.
func Reference(f *gofakeit.Faker) string {
	return ReferencePrefix + f.Regex(referencePattern)
}
