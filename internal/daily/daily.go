package daily

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a pair of generator seeds for the given day using
// HKDF-SHA256(secret=salt, info=date key). Everyone sharing a salt gets the
// same secret code on the same UTC day.
func Seed(date time.Time, salt string) (uint64, uint64, error) {
	r := hkdf.New(sha256.New, []byte(salt), nil, []byte("mastermind daily "+DateKey(date)))
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, 0, fmt.Errorf("daily: derive seed: %w", err)
	}
	return binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:]), nil
}
