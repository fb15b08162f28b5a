package manifest

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdoctools/csphinx-go/internal/domain"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})
	assert.NotNil(t, loader)
}

func TestLoader_Load_FileNotFound(t *testing.T) {
	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})

	records, err := loader.Load("/nonexistent/compile_commands.json")

	assert.Error(t, err)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "compile_commands.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`{not json]`), 0644))

	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})
	records, err := loader.Load(manifestPath)

	assert.Error(t, err)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrInvalidManifest)
}

func TestLoader_Load_Valid(t *testing.T) {
	jsonContent := `[
		{
			"command": "cc -Iinclude -DNDEBUG -c -o a.o src/a.c",
			"file": "/proj/src/a.c",
			"directory": "/proj",
			"output": "a.o"
		},
		{
			"command": "cc -c -o b.o src/b.c",
			"file": "/proj/src/b.c",
			"directory": "/proj",
			"output": "b.o"
		}
	]`

	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "compile_commands.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(jsonContent), 0644))

	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})
	records, err := loader.Load(manifestPath)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/proj/src/a.c", records[0].File)
	assert.Equal(t, []string{"cc", "-Iinclude", "-DNDEBUG", "-c", "-o", "a.o", "src/a.c"}, records[0].Arguments)
	assert.Equal(t, "/proj", records[0].Directory)
	assert.Equal(t, "a.o", records[0].Output)
	assert.Equal(t, "/proj/src/b.c", records[1].File)
}

func TestLoader_Load_QuotedCommand(t *testing.T) {
	jsonContent := `[
		{
			"command": "cc -I\"include dir\" -DMSG='hello world' -c src/a.c",
			"file": "/proj/src/a.c",
			"directory": "/proj",
			"output": "a.o"
		}
	]`

	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})
	records, err := loader.LoadFromBytes([]byte(jsonContent))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"cc", "-Iinclude dir", "-DMSG=hello world", "-c", "src/a.c"}, records[0].Arguments)
}

func TestLoader_Load_FiltersOutsideSourceRoot(t *testing.T) {
	jsonContent := `[
		{"command": "cc -c a.c", "file": "/proj/src/a.c", "directory": "/proj", "output": "a.o"},
		{"command": "cc -c t.c", "file": "/proj/tests/t.c", "directory": "/proj", "output": "t.o"},
		{"command": "cc -c v.c", "file": "/vendor/v.c", "directory": "/proj", "output": "v.o"},
		{"command": "cc -c x.c", "file": "/proj/srcother/x.c", "directory": "/proj", "output": "x.o"}
	]`

	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})
	records, err := loader.LoadFromBytes([]byte(jsonContent))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/proj/src/a.c", records[0].File)
}

func TestLoader_Load_ExclusionFilters(t *testing.T) {
	jsonContent := `[
		{"command": "cc -c a.c", "file": "/proj/src/a.c", "directory": "/proj", "output": "a.o"},
		{"command": "cc -c gen.c", "file": "/proj/src/generated/gen.c", "directory": "/proj", "output": "gen.o"}
	]`

	loader := NewLoader(LoaderOptions{
		SourceRoot: "/proj/src",
		Exclude:    []*regexp.Regexp{regexp.MustCompile(`/generated/`)},
	})
	records, err := loader.LoadFromBytes([]byte(jsonContent))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/proj/src/a.c", records[0].File)
}

func TestLoader_Load_PreservesManifestOrder(t *testing.T) {
	jsonContent := `[
		{"command": "cc -c c.c", "file": "/proj/src/c.c", "directory": "/proj", "output": "c.o"},
		{"command": "cc -c a.c", "file": "/proj/src/a.c", "directory": "/proj", "output": "a.o"},
		{"command": "cc -c b.c", "file": "/proj/src/b.c", "directory": "/proj", "output": "b.o"}
	]`

	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})
	records, err := loader.LoadFromBytes([]byte(jsonContent))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "/proj/src/c.c", records[0].File)
	assert.Equal(t, "/proj/src/a.c", records[1].File)
	assert.Equal(t, "/proj/src/b.c", records[2].File)
}

func TestLoader_Load_EmptyManifest(t *testing.T) {
	loader := NewLoader(LoaderOptions{SourceRoot: "/proj/src"})
	records, err := loader.LoadFromBytes([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, records)
}
