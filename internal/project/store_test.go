package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmirKameel/genie-stack-forge/internal/types"
)

func file(path, content string) types.GeneratedFile {
	return types.GeneratedFile{Path: path, Language: "html", Content: content}
}

func TestCreateAndGet(t *testing.T) {
	s := NewStore(time.Minute)
	p := s.Create("My site", types.GenerationResult{
		Description: "A site",
		Files:       []types.GeneratedFile{file("index.html", "<p>a</p>")},
	})

	require.NotEmpty(t, p.ID)
	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "My site", got.Name)
	assert.Equal(t, "A site", got.Description)
	require.Len(t, got.Files, 1)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestCreateDedupesByPathLastWins(t *testing.T) {
	s := NewStore(0)
	p := s.Create("x", types.GenerationResult{Files: []types.GeneratedFile{
		file("index.html", "v1"),
		file("style.css", "css"),
		file("index.html", "v2"),
	}})

	require.Len(t, p.Files, 2)
	// order of first occurrence, content of last
	assert.Equal(t, "index.html", p.Files[0].Path)
	assert.Equal(t, "v2", p.Files[0].Content)
	assert.Equal(t, "style.css", p.Files[1].Path)
}

func TestPatchOverwritesAndAppends(t *testing.T) {
	s := NewStore(0)
	p := s.Create("x", types.GenerationResult{
		Description: "initial",
		Files: []types.GeneratedFile{
			file("index.html", "home v1"),
			file("style.css", "css v1"),
		},
	})

	patched, ok := s.Patch(p.ID, types.GenerationResult{
		Description: "updated",
		Files: []types.GeneratedFile{
			file("style.css", "css v2"),
			file("app.js", "js v1"),
		},
	})
	require.True(t, ok)

	require.Len(t, patched.Files, 3)
	// untouched file survives in place
	assert.Equal(t, "index.html", patched.Files[0].Path)
	assert.Equal(t, "home v1", patched.Files[0].Content)
	// matching path overwritten in place
	assert.Equal(t, "css v2", patched.Files[1].Content)
	// new path appended
	assert.Equal(t, "app.js", patched.Files[2].Path)
	assert.Equal(t, "updated", patched.Description)

	// the patch persisted
	got, _ := s.Get(p.ID)
	assert.Equal(t, patched.Files, got.Files)
}

func TestPatchKeepsDescriptionWhenEmpty(t *testing.T) {
	s := NewStore(0)
	p := s.Create("x", types.GenerationResult{Description: "keep me"})

	patched, ok := s.Patch(p.ID, types.GenerationResult{})
	require.True(t, ok)
	assert.Equal(t, "keep me", patched.Description)
}

func TestDeleteRemovesProject(t *testing.T) {
	s := NewStore(0)
	p := s.Create("x", types.GenerationResult{})

	s.Delete(p.ID)
	_, ok := s.Get(p.ID)
	assert.False(t, ok)

	_, ok = s.Patch(p.ID, types.GenerationResult{})
	assert.False(t, ok)

	// unknown ID is a no-op
	s.Delete("missing")
}

func TestReplaceSwapsWholesale(t *testing.T) {
	s := NewStore(0)
	p := s.Create("x", types.GenerationResult{
		Description: "old",
		Files:       []types.GeneratedFile{file("index.html", "old"), file("style.css", "old")},
	})

	replaced, ok := s.Replace(p.ID, types.GenerationResult{
		Description: "new",
		Files:       []types.GeneratedFile{file("index.html", "new")},
	})
	require.True(t, ok)
	assert.Equal(t, "new", replaced.Description)
	require.Len(t, replaced.Files, 1)

	_, ok = s.Replace("missing", types.GenerationResult{})
	assert.False(t, ok)
}
