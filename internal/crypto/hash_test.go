package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMD5Prefix(t *testing.T) {
	// md5("abcdef609043") = 000001dbbfa3a5c83a2d506429c7b00e
	assert.Equal(t, uint32(0x000001db), MD5Prefix([]byte("abcdef609043")))
	// md5("") = d41d8cd98f00b204e9800998ecf8427e
	assert.Equal(t, uint32(0xd41d8cd9), MD5Prefix(nil))
}

func TestHashData(t *testing.T) {
	a := HashData([]byte("1,0,0,0,99"))
	b := HashData([]byte("1,0,0,0,99"))
	c := HashData([]byte("1,0,0,0,98"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a.String(), 2*HashSize)
}
