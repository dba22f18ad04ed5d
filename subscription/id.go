// Package subscription implements long-lived event sources declared by the
// model and reconciled by identity across update cycles (spec §4.2).
package subscription

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// ID is the structural-equality key identifying a subscription across
// update cycles. Two subscriptions are "the same" iff their IDs are equal —
// comparing the subscription value itself is never done.
type ID struct {
	tag  string
	disc uint64
}

// Singleton builds an ID for a subscription kind that only ever has one
// active instance (discriminant zero).
func Singleton(tag string) ID { return ID{tag: tag} }

// WithInt builds an ID for the n-th instance of a subscription kind.
func WithInt(tag string, n int) ID { return ID{tag: tag, disc: uint64(n)} }

// WithString builds an ID from a natural string key, hashed to a
// discriminant.
func WithString(tag, key string) ID {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return ID{tag: tag, disc: h.Sum64()}
}

// Fresh builds an ID that is unique to this call, for a subscription that
// should never be treated as the "same" one across update cycles — every
// declaration restarts it. The discriminant is seeded from a random UUID,
// since a counter would risk colliding with a caller-chosen WithInt value.
func Fresh(tag string) ID {
	u := uuid.New()
	var n uint64
	for _, b := range u[:8] {
		n = n<<8 | uint64(b)
	}
	return ID{tag: tag, disc: n}
}

// Tag returns the subscription kind this ID belongs to.
func (id ID) Tag() string { return id.tag }

func (id ID) String() string {
	return id.tag + "#" + uitoa(id.disc)
}

func uitoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
