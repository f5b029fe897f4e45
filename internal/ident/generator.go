// Package ident supplies unique node identities for linked environments.
// Identities are reassigned on every link call; callers must never cache
// them across relinks.
package ident

import (
	"math/rand"
)

// UID is a node identity unique within one environment. 0 marks an
// unassigned identity.
type UID uint64

const NoUID UID = 0

// IsValid reports whether the identity was assigned.
func (u UID) IsValid() bool { return u != NoUID }

// Generator produces identities. Uniqueness within one environment is the
// only contract; the concrete scheme is not observable behavior.
type Generator interface {
	Next() UID
}

// Counter issues monotonically increasing identities. The zero value is
// ready to use; the first identity is 1.
type Counter struct {
	last UID
}

func (c *Counter) Next() UID {
	c.last++
	return c.last
}

// Random issues random 64-bit identities and tracks issued values so a
// collision is retried instead of handed out twice.
type Random struct {
	seen map[UID]struct{}
}

func NewRandom() *Random {
	return &Random{seen: make(map[UID]struct{})}
}

func (r *Random) Next() UID {
	for {
		u := UID(rand.Uint64())
		if !u.IsValid() {
			continue
		}
		if _, dup := r.seen[u]; dup {
			continue
		}
		r.seen[u] = struct{}{}
		return u
	}
}
