// Package idgen produces contest identifiers: unique numeric team ids, random
// passwords and de-duplicated usernames.
package idgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/mamamamad/backend-domjudge/internal/entities"
)

const (
	// DefaultLowerID and DefaultUpperID bound the generated team/user id range.
	DefaultLowerID = 10000
	DefaultUpperID = 99999

	// maxAttempts caps both the random id draw and the username suffix loop.
	maxAttempts = 10000

	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// CollisionSet tracks identifiers already taken during a provisioning run. It
// is owned by the caller and passed explicitly into each generation call; every
// generated value is reserved in the set before being returned so the same run
// cannot hand it out twice.
type CollisionSet struct {
	members map[string]struct{}
}

// NewCollisionSet builds a set seeded with the given values.
func NewCollisionSet(seed ...string) *CollisionSet {
	s := &CollisionSet{members: make(map[string]struct{}, len(seed))}
	for _, v := range seed {
		s.members[v] = struct{}{}
	}
	return s
}

// Has reports whether v is already taken.
func (s *CollisionSet) Has(v string) bool {
	_, ok := s.members[v]
	return ok
}

// Reserve claims v, reporting false if it was already taken.
func (s *CollisionSet) Reserve(v string) bool {
	if s.Has(v) {
		return false
	}
	s.members[v] = struct{}{}
	return true
}

// Len returns the number of reserved identifiers.
func (s *CollisionSet) Len() int { return len(s.members) }

// UniqueID draws a uniformly random integer in [lower, upper] not present in
// ids, reserving it on success. It fails after maxAttempts rejected draws,
// which for the default five-digit range only happens when the range is close
// to fully allocated.
func UniqueID(ids *CollisionSet, lower, upper int) (int, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		n := rand.IntN(upper-lower+1) + lower
		if ids.Reserve(strconv.Itoa(n)) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: no free id in [%d, %d] after %d attempts",
		entities.ErrIDSpaceExhausted, lower, upper, maxAttempts)
}

// Password returns a random alphanumeric password of the given length. It
// samples each character independently from a 62-symbol alphabet and is not
// cryptographically secure, which matches how account passwords are issued for
// a short-lived contest.
func Password(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(passwordAlphabet[rand.IntN(len(passwordAlphabet))])
	}
	return b.String()
}

// Username derives the login name for a team id.
func Username(id int) string {
	return "T" + strconv.Itoa(id)
}

// UniqueUsername reserves base if free, otherwise tries base1, base2, ... until
// a free candidate is found. The suffix loop shares the id generator's attempt
// cap so termination is bounded rather than relying on the name space never
// filling up.
func UniqueUsername(base string, names *CollisionSet) (string, error) {
	if names.Reserve(base) {
		return base, nil
	}
	for suffix := 1; suffix <= maxAttempts; suffix++ {
		candidate := base + strconv.Itoa(suffix)
		if names.Reserve(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free username derived from %q after %d attempts",
		entities.ErrIDSpaceExhausted, base, maxAttempts)
}
