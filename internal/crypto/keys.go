package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// MasterKeyFile is the fallback location written by cmd/genmasterkey.
const MasterKeyFile = "master.key"

// ReadMasterKey reads the hex encoded 32-byte key from hexKey, or from path
// when hexKey is empty.
func ReadMasterKey(hexKey, path string) ([]byte, error) {
	h := hexKey
	if h == "" {
		if path == "" {
			path = MasterKeyFile
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("master key not configured and %s unreadable: %w", path, err)
		}
		h = string(data)
	}
	b, err := hex.DecodeString(strings.TrimSpace(h))
	if err != nil {
		return nil, fmt.Errorf("master key hex decode error: %w", err)
	}
	if len(b) != 32 {
		return nil, ErrInvalidKeyLength
	}
	return b, nil
}

// DeriveStoreKey derives the AES key for one storage purpose so the master
// key itself never touches ciphertext.
func DeriveStoreKey(master []byte, purpose string) ([]byte, error) {
	if len(master) != 32 {
		return nil, ErrInvalidKeyLength
	}
	h := hkdf.New(sha256.New, master, nil, []byte("careerportal/"+purpose))
	out := make([]byte, 32)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewMasterKey returns a fresh hex encoded master key.
func NewMasterKey() (string, error) {
	b, err := generateRandomBytes(32)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// MustRandom returns n random bytes or panics.
func MustRandom(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err)
	}
	return b
}
