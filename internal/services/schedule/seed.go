package schedule

import (
	"encoding/binary"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"triptracker/internal/domain"
)

// ParseSeed turns the configured seed into the integer that fixes the PRNG.
// All-digit seeds are used directly; anything else is hashed so string seeds
// ("riyadh-feb") are as reproducible as numeric ones. An empty seed is a
// configuration error, not a prompt to fall back to time-based randomness.
func ParseSeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &domain.ConfigError{Param: "seed", Reason: "seed must be set for reproducible runs"}
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	sum := blake2b.Sum256([]byte(s))
	return binary.BigEndian.Uint64(sum[:8]), nil
}
