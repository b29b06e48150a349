package repository

import "crypto/rand"

// codeAlphabet avoids 0/O and 1/I so codes survive being read over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

// newCode returns a random short reservation code. Uniqueness is not
// guaranteed here — the store's unique constraint on the code column is the
// authority, and Create retries on collision.
func newCode() string {
	buf := make([]byte, codeLength)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
