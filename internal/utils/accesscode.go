package utils // package utils provides helper functions for codes, tokens and hashing

import "crypto/rand"

// AccessCodeLength is the fixed length of public session access codes.
const AccessCodeLength = 6

// codeAlphabet is the character set for access codes.  Ambiguous glyphs
// (0/O, 1/I) are left out because clients type these codes by hand.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewAccessCode returns a random 6-character upper-case code drawn from
// the code alphabet using crypto/rand.  Uniqueness across sessions is the
// caller's responsibility; the generator only guarantees randomness.
func NewAccessCode() (string, error) {
	buf := make([]byte, AccessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
