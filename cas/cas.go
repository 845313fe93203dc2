// Package cas implements a content-addressable blob store keyed by
// TentHash digests: the "content-addressable storage" use case named in
// the core tenthash package's own documentation.
//
// Blobs live as individual files under a root directory, named by their
// hex digest, with an in-memory LRU cache of recently used blobs sitting
// in front of the filesystem so repeated reads and writes of hot content
// don't round-trip through disk.
package cas

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cessen/tenthash"
)

// Store is a directory-backed, LRU-cached content-addressable blob
// store. A Store is safe for concurrent use.
type Store struct {
	dir   string
	cache *lru.Cache[string, []byte]

	mu sync.Mutex // serializes the check-then-write sequence in Put
}

// NewStore opens (creating if necessary) a blob store rooted at dir,
// with an LRU cache holding up to cacheSize recently used blobs in
// memory.
func NewStore(dir string, cacheSize int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cas: creating store directory %q: %w", dir, err)
	}

	cache, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("cas: creating cache: %w", err)
	}

	return &Store{dir: dir, cache: cache}, nil
}

// Digest returns the hex-encoded TentHash digest of data, the same
// string used to key Put, Get, and Has.
func Digest(data []byte) string {
	sum := tenthash.Sum(data)
	return fmt.Sprintf("%x", sum)
}

// Put stores data, returning its digest and whether this content was
// previously unknown to the store.
func (s *Store) Put(data []byte) (digest string, isNew bool, err error) {
	digest = Digest(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Has(digest) {
		return digest, false, nil
	}

	path := s.blobPath(digest)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return digest, false, fmt.Errorf("cas: writing blob %s: %w", digest, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return digest, false, fmt.Errorf("cas: finalizing blob %s: %w", digest, err)
	}

	s.cache.Add(digest, data)
	return digest, true, nil
}

// Get returns the blob stored under digest, preferring the in-memory
// cache. It returns an error satisfying errors.Is(err, os.ErrNotExist)
// if digest is not present in the store.
func (s *Store) Get(digest string) ([]byte, error) {
	if data, ok := s.cache.Get(digest); ok {
		return data, nil
	}

	data, err := os.ReadFile(s.blobPath(digest))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cas: digest %s: %w", digest, os.ErrNotExist)
		}
		return nil, fmt.Errorf("cas: reading blob %s: %w", digest, err)
	}

	s.cache.Add(digest, data)
	return data, nil
}

// Has reports whether digest is present in the store, checking the
// cache before touching the filesystem.
func (s *Store) Has(digest string) bool {
	if s.cache.Contains(digest) {
		return true
	}
	_, err := os.Stat(s.blobPath(digest))
	return err == nil
}

func (s *Store) blobPath(digest string) string {
	return filepath.Join(s.dir, digest)
}
