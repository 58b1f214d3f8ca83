package wiseio

import (
	"crypto/md5"  //nolint:gosec // MD5 used for checksum verification, not security
	"crypto/sha1" //nolint:gosec // SHA1 used for checksum verification, not security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/gobeaver/wiseio/metrics"
)

// ChecksumAlgorithm represents a supported checksum algorithm
type ChecksumAlgorithm string

const (
	ChecksumMD5    ChecksumAlgorithm = "md5"
	ChecksumSHA1   ChecksumAlgorithm = "sha1"
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
	ChecksumSHA512 ChecksumAlgorithm = "sha512"
	ChecksumCRC32  ChecksumAlgorithm = "crc32"
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
)

// NewHasher creates a new hash.Hash for the given algorithm.
// Returns an error if the algorithm is not supported.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	switch algorithm {
	case ChecksumMD5:
		return md5.New(), nil //nolint:gosec // MD5 used for checksum verification, not security
	case ChecksumSHA1:
		return sha1.New(), nil //nolint:gosec // SHA1 used for checksum verification, not security
	case ChecksumSHA256:
		return sha256.New(), nil
	case ChecksumSHA512:
		return sha512.New(), nil
	case ChecksumCRC32:
		return crc32.NewIEEE(), nil
	case ChecksumXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported checksum algorithm: %s", ErrNotSupported, algorithm)
	}
}

// CalculateChecksum hashes everything r yields and returns the hex digest.
func CalculateChecksum(r io.Reader, algorithm ChecksumAlgorithm) (string, error) {
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to calculate checksum: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// CalculateChecksums hashes r once with every algorithm given.
func CalculateChecksums(r io.Reader, algorithms []ChecksumAlgorithm) (map[ChecksumAlgorithm]string, error) {
	if len(algorithms) == 0 {
		return nil, fmt.Errorf("no algorithms specified")
	}

	hashers := make(map[ChecksumAlgorithm]hash.Hash, len(algorithms))
	writers := make([]io.Writer, 0, len(algorithms))

	for _, algo := range algorithms {
		h, err := NewHasher(algo)
		if err != nil {
			return nil, err
		}
		hashers[algo] = h
		writers = append(writers, h)
	}

	if _, err := io.Copy(io.MultiWriter(writers...), r); err != nil {
		return nil, fmt.Errorf("failed to calculate checksums: %w", err)
	}

	results := make(map[ChecksumAlgorithm]string, len(algorithms))
	for algo, h := range hashers {
		results[algo] = hex.EncodeToString(h.Sum(nil))
	}

	return results, nil
}

// BufferChecksum hashes the first b.Len() bytes of b.
func BufferChecksum(b Buffer, algorithm ChecksumAlgorithm) (string, error) {
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}
	h.Write(b.Bytes()[:b.Len()])
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Checksum hashes the whole file with explicit-offset reads of the chunk
// size. The cursor and the EOF flag are left alone.
func (s *Stream) Checksum(algorithm ChecksumAlgorithm) (string, error) {
	if err := s.check(metrics.OpChecksum, capRead); err != nil {
		return "", err
	}
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	p := make([]byte, s.chunk)
	var off int64
	for {
		n, eof, err := s.pread(metrics.OpChecksum, p, off)
		if err != nil {
			return "", err
		}
		h.Write(p[:n])
		off += int64(n)
		if eof || n < len(p) {
			break
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
