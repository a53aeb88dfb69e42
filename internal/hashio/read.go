// Package hashio hashes file contents, used by the codegen tooling to skip
// rewriting files whose generated content did not change.
package hashio

import (
	"crypto/md5" //nolint
	"crypto/sha1"
	"errors"
	"fmt"
	"hash"
	"io/fs"
)

// HashFunc hashes a content blob
type HashFunc func([]byte) ([]byte, error)

var ErrHashFuncNotFound = errors.New("hash func not found")

// SumFile fully reads fileName from fsys and applies the HashFunc to it
func SumFile(fsys fs.FS, fileName string, hashFunc HashFunc) ([]byte, error) {
	if hashFunc == nil {
		return nil, ErrHashFuncNotFound
	}

	input, err := fs.ReadFile(fsys, fileName)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileName, err)
	}

	output, err := hashFunc(input)
	if err != nil {
		return nil, fmt.Errorf("call HashFunc: %w", err)
	}

	return output, nil
}

// SumFunc wraps a hash.Hash constructor into a HashFunc
func SumFunc(hasher func() hash.Hash) HashFunc {
	return func(in []byte) ([]byte, error) {
		h := hasher()
		if _, err := h.Write(in); err != nil {
			return nil, fmt.Errorf("%T write: %w", h, err)
		}

		return h.Sum(nil), nil
	}
}

func MD5() func() hash.Hash {
	return func() hash.Hash { return md5.New() }
}

func SHA1() func() hash.Hash {
	return func() hash.Hash { return sha1.New() }
}
