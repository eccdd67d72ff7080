package settings

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

const testHome = "/home/tester"

func openMem(t *testing.T, fs afero.Fs) *Store {
	t.Helper()
	s, err := Open(filepath.Join(testHome, FileName), WithFs(fs), WithHome(testHome))
	require.NoError(t, err)
	return s
}

func TestOpenSeedsDefaultsWhenFileMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	s := openMem(t, fs)

	assert.Equal(t, filepath.Join(testHome, "Pictures")+string(filepath.Separator), s.SaveLocation())
	assert.Equal(t, "jpeg", s.SaveFormat())

	exists, err := afero.Exists(fs, s.Path())
	require.NoError(t, err)
	assert.True(t, exists, "defaults should be persisted on first run")
}

func TestOpenSeeding(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantLocation string
		wantFormat   string
	}{
		{
			name:         "keeps both values when present",
			content:      "savelocation: /out/\nsaveformat: png\n",
			wantLocation: "/out/",
			wantFormat:   "png",
		},
		{
			name:         "seeds empty location only",
			content:      "savelocation: \"\"\nsaveformat: png\n",
			wantLocation: DefaultSaveLocation(testHome),
			wantFormat:   "png",
		},
		{
			name:         "seeds missing format only",
			content:      "savelocation: /out/\n",
			wantLocation: "/out/",
			wantFormat:   "jpeg",
		},
		{
			name:         "falls back to defaults for unreadable file",
			content:      "savelocation: [unclosed\n",
			wantLocation: DefaultSaveLocation(testHome),
			wantFormat:   "jpeg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, filepath.Join(testHome, FileName), []byte(tt.content), 0o644))

			s := openMem(t, fs)

			assert.Equal(t, tt.wantLocation, s.SaveLocation())
			assert.Equal(t, tt.wantFormat, s.SaveFormat())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := openMem(t, fs)

	s.Set(KeySaveLocation, "/data/converted/")
	require.NoError(t, s.Save())

	reopened := openMem(t, fs)
	assert.Equal(t, "/data/converted/", reopened.SaveLocation())
	assert.Equal(t, "jpeg", reopened.SaveFormat())
}

func TestSaveWritesCanonicalKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := openMem(t, fs)

	s.Set(KeySaveFormat, "png")
	require.NoError(t, s.Save())

	data, err := afero.ReadFile(fs, s.Path())
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.Equal(t, map[string]string{
		"saveLocation": DefaultSaveLocation(testHome),
		"saveFormat":   "png",
	}, onDisk)

	entries, err := afero.ReadDir(fs, testHome)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, FileName, entries[0].Name())
}

func TestSetIsNotPersistedUntilSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := openMem(t, fs)

	s.Set(KeySaveLocation, "/pending/")
	assert.Equal(t, "/pending/", s.SaveLocation())

	reopened := openMem(t, fs)
	assert.Equal(t, DefaultSaveLocation(testHome), reopened.SaveLocation())
}

func TestGetUnknownKey(t *testing.T) {
	s := openMem(t, afero.NewMemMapFs())

	_, ok := s.Get("theme")
	assert.False(t, ok)
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", FileName)

	s, err := Open(path, WithHome(dir))
	require.NoError(t, err)
	s.Set(KeySaveLocation, dir+string(filepath.Separator))
	require.NoError(t, s.Save())

	reopened, err := Open(path, WithHome(dir))
	require.NoError(t, err)
	assert.Equal(t, dir+string(filepath.Separator), reopened.SaveLocation())
}

func TestConcurrentAccess(t *testing.T) {
	s := openMem(t, afero.NewMemMapFs())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(KeySaveFormat, "jpeg")
			_ = s.SaveFormat()
			_ = s.SaveLocation()
		}()
	}
	wg.Wait()

	assert.Equal(t, "jpeg", s.SaveFormat())
}

func TestIsKnownKey(t *testing.T) {
	key, ok := IsKnownKey("savelocation")
	assert.True(t, ok)
	assert.Equal(t, KeySaveLocation, key)

	_, ok = IsKnownKey("quality")
	assert.False(t, ok)
}
