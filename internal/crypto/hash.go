package crypto

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const HashSize = 32

type Hash [HashSize]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// HashData blake2b-256 of data, used to key stored answers by their input.
func HashData(data []byte) Hash {
	return blake2b.Sum256(data)
}

// MD5Prefix returns the first four bytes of the MD5 digest of data as a
// big-endian word. Each hex digit of the digest is one nibble of the word, so
// five leading zero hex digits is prefix&0xfffff000 == 0.
func MD5Prefix(data []byte) uint32 {
	digest := md5.Sum(data)
	return binary.BigEndian.Uint32(digest[:4])
}
