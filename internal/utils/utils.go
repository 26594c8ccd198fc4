// Package utils holds small helpers shared by the matcher packages.
package utils

// AdditiveHash returns the unsigned sum of the bytes of s.
//
// This is deliberately not a "real" hash function (no mixing, no
// avalanche): it is a cheap prefilter for pkg/wordlist's matcher, which
// always follows up a hash hit with a length check and a full
// byte-for-byte comparison before declaring a match. Collisions only
// cost an extra comparison, never a wrong answer.
func AdditiveHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
	}
	return h
}
