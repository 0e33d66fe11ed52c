// Package idgen derives deterministic identifiers for every entity in the course
// hierarchy from the entity's own attributes and those of its ancestors.
//
// The hash is not cryptographic. Its output must stay bit-for-bit stable because
// stored rows and issued join codes are keyed by it.
package idgen

import "strconv"

const (
	lane1Seed uint32 = 0x9e3779b9
	lane2Seed uint32 = 0x85ebca6b
)

// Hash12 hashes the UTF-8 bytes of input into a 48-bit value rendered as
// 12 lowercase hex characters.
func Hash12(input string) string {
	return HashBytes([]byte(input))
}

// HashBytes is Hash12 over a raw byte slice.
func HashBytes(b []byte) string {
	h1, h2 := lane1Seed, lane2Seed
	for _, c := range b {
		h1 = mixLane1(h1, c)
		h2 = mixLane2(h2, c)
	}
	// Only the low 16 bits of lane 2 survive; previously issued IDs depend on it.
	v := uint64(h2&0xFFFF)<<32 | uint64(h1)
	return pad12(strconv.FormatUint(v, 16))
}

func mixLane1(h uint32, c byte) uint32 {
	h ^= uint32(c)
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func mixLane2(h uint32, c byte) uint32 {
	x := h ^ (uint32(c) + 0x9e3779b9)
	x *= 0x27d4eb2d
	x ^= x >> 15
	x *= 0x165667b1
	x ^= x >> 17
	return x
}

func pad12(s string) string {
	const zeros = "000000000000"
	if len(s) >= 12 {
		return s
	}
	return zeros[:12-len(s)] + s
}
