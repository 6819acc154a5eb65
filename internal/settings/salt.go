package settings

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// HashSaltLength is the length of a generated hash salt.
const HashSaltLength = 55

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns n characters drawn uniformly from [a-zA-Z0-9] using
// crypto/rand.
func RandomString(n int) (string, error) {
	limit := big.NewInt(int64(len(alphanumeric)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		b[i] = alphanumeric[idx.Int64()]
	}
	return string(b), nil
}

// EnsureHashSalt writes a random salt to <root>/salt.txt unless the file
// already exists. It reports whether a new salt was written.
func EnsureHashSalt(root string) (bool, error) {
	path := filepath.Join(root, HashSaltFile)
	if exists(path) {
		return false, nil
	}

	salt, err := RandomString(HashSaltLength)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(salt), 0644); err != nil {
		return false, newError(KindIO, path, err)
	}
	if !writable(path) {
		return true, newError(KindPermission, path, fmt.Errorf("can not create file; %s is not writable", path))
	}
	return true, nil
}

func writable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
