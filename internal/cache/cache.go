// Package cache persists generated colorschemes keyed by their palette hash,
// so collaborators can skip re-deriving a scheme they have already seen.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ulikunitz/xz"

	"github.com/Frewacom/FARBS-Firefox/internal/scheme"
)

// entryExt is the on-disk suffix for cached colorschemes.
const entryExt = ".json.xz"

// hashPattern matches the hex fingerprints produced by scheme.Generate.
// Keys are embedded in filenames, so anything else is rejected.
var hashPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

// DefaultDir returns the default cache directory path.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "farbs", "colorschemes"), nil
	}
	return filepath.Join(cacheDir, "farbs", "colorschemes"), nil
}

// Store is a directory of xz-compressed colorscheme snapshots.
type Store struct {
	dir string
	log hclog.Logger
}

// New opens a store rooted at dir, creating it if needed.
func New(dir string, log hclog.Logger) (*Store, error) {
	if log == nil {
		log = hclog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Store{dir: dir, log: log.Named("cache")}, nil
}

// Put stores a colorscheme under its hash. A hash already present is left
// untouched; the hash fingerprints the full palette, so equal hashes mean
// equal schemes.
func (s *Store) Put(cs scheme.Colorscheme) error {
	if !hashPattern.MatchString(cs.Hash) {
		return fmt.Errorf("invalid colorscheme hash: %q", cs.Hash)
	}

	path := filepath.Join(s.dir, cs.Hash+entryExt)
	if _, err := os.Stat(path); err == nil {
		s.log.Debug("colorscheme already cached", "hash", cs.Hash)
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cache entry: %w", err)
	}

	w, err := xz.NewWriter(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create xz writer: %w", err)
	}

	encodeErr := json.NewEncoder(w).Encode(cs)
	closeErr := w.Close()
	fileErr := file.Close()

	if encodeErr != nil {
		return fmt.Errorf("failed to encode colorscheme: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to finish cache entry: %w", closeErr)
	}
	if fileErr != nil {
		return fmt.Errorf("failed to close cache entry: %w", fileErr)
	}

	s.log.Debug("cached colorscheme", "hash", cs.Hash)
	return nil
}

// Get loads a cached colorscheme. The second return value reports whether
// the hash was present.
func (s *Store) Get(hash string) (scheme.Colorscheme, bool, error) {
	if !hashPattern.MatchString(hash) {
		return scheme.Colorscheme{}, false, fmt.Errorf("invalid colorscheme hash: %q", hash)
	}

	file, err := os.Open(filepath.Join(s.dir, hash+entryExt))
	if err != nil {
		if os.IsNotExist(err) {
			return scheme.Colorscheme{}, false, nil
		}
		return scheme.Colorscheme{}, false, fmt.Errorf("failed to open cache entry: %w", err)
	}
	defer file.Close()

	r, err := xz.NewReader(file)
	if err != nil {
		return scheme.Colorscheme{}, false, fmt.Errorf("failed to create xz reader: %w", err)
	}

	var cs scheme.Colorscheme
	if err := json.NewDecoder(r).Decode(&cs); err != nil {
		return scheme.Colorscheme{}, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return cs, true, nil
}

// List returns the hashes of all cached colorschemes.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	hashes := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, entryExt) {
			continue
		}
		hash := strings.TrimSuffix(name, entryExt)
		if hashPattern.MatchString(hash) {
			hashes = append(hashes, hash)
		}
	}
	return hashes, nil
}

// Prune removes every cached colorscheme. Returns the number removed.
func (s *Store) Prune() (int, error) {
	hashes, err := s.List()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, hash := range hashes {
		if err := os.Remove(filepath.Join(s.dir, hash+entryExt)); err != nil {
			return removed, fmt.Errorf("failed to remove cache entry %s: %w", hash, err)
		}
		removed++
	}
	return removed, nil
}
