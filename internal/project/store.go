package project

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/AmirKameel/genie-stack-forge/internal/types"
)

// Store keeps projects in memory, keyed by ID. Projects are
// per-session working state, not durable data, so a TTL cache is
// enough. Values are stored and returned by copy; concurrent edits to
// the same project are serialized by the caller.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates a store whose entries expire ttl after their last
// write. ttl <= 0 disables expiry.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		return &Store{cache: gocache.New(gocache.NoExpiration, 0)}
	}
	return &Store{cache: gocache.New(ttl, 2*ttl)}
}

// Create stores a fresh project built from a generation result and
// returns it.
func (s *Store) Create(name string, res types.GenerationResult) types.Project {
	p := types.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: res.Description,
		Files:       dedupeByPath(res.Files),
	}
	s.cache.Set(p.ID, p, gocache.DefaultExpiration)
	return p
}

// Get returns a project by ID.
func (s *Store) Get(id string) (types.Project, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return types.Project{}, false
	}
	return v.(types.Project), true
}

// Replace swaps a project's files and description wholesale, as a
// fresh generation does.
func (s *Store) Replace(id string, res types.GenerationResult) (types.Project, bool) {
	p, ok := s.Get(id)
	if !ok {
		return types.Project{}, false
	}
	p.Description = res.Description
	p.Files = dedupeByPath(res.Files)
	s.cache.Set(p.ID, p, gocache.DefaultExpiration)
	return p, true
}

// Patch merges an edit result into a project: files matching an
// existing path overwrite it in place, new paths append, everything
// else is left untouched.
func (s *Store) Patch(id string, res types.GenerationResult) (types.Project, bool) {
	p, ok := s.Get(id)
	if !ok {
		return types.Project{}, false
	}

	index := make(map[string]int, len(p.Files))
	for i, f := range p.Files {
		index[f.Path] = i
	}
	files := append([]types.GeneratedFile(nil), p.Files...)
	for _, f := range res.Files {
		if i, exists := index[f.Path]; exists {
			files[i] = f
			continue
		}
		index[f.Path] = len(files)
		files = append(files, f)
	}

	p.Files = files
	if res.Description != "" {
		p.Description = res.Description
	}
	s.cache.Set(p.ID, p, gocache.DefaultExpiration)
	return p, true
}

// Delete removes a project. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// dedupeByPath enforces the store's path-is-replace-key invariant on
// incoming file lists: the last record for a path wins, insertion
// order is kept.
func dedupeByPath(files []types.GeneratedFile) []types.GeneratedFile {
	index := make(map[string]int, len(files))
	out := make([]types.GeneratedFile, 0, len(files))
	for _, f := range files {
		if i, exists := index[f.Path]; exists {
			out[i] = f
			continue
		}
		index[f.Path] = len(out)
		out = append(out, f)
	}
	return out
}
