package utils

import (
	"crypto/md5"
	"fmt"
)

// EncrypIt hashes a string for cache keys.
func EncrypIt(strToHash string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(strToHash)))
}
