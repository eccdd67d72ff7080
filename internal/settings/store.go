// Package settings persists the user's output preferences.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"image-converter/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	KeySaveLocation = "saveLocation"
	KeySaveFormat   = "saveFormat"

	DefaultFormat = "jpeg"
	FileName      = "imageconverter.conf"
)

// Keys lists every key the store seeds and exposes.
var Keys = []string{KeySaveLocation, KeySaveFormat}

// Store is a flat key-value settings file. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	v      *viper.Viper
	fs     afero.Fs
	path   string
	home   string
	logger logger.Logger
}

type Option func(*Store)

func WithFs(fs afero.Fs) Option {
	return func(s *Store) { s.fs = fs }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithHome overrides the directory default paths are derived from.
func WithHome(home string) Option {
	return func(s *Store) { s.home = home }
}

// DefaultPath returns <home>/imageconverter.conf.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// DefaultSaveLocation returns <home>/Pictures/ with a trailing separator.
func DefaultSaveLocation(home string) string {
	return filepath.Join(home, "Pictures") + string(filepath.Separator)
}

// Open loads the store at path, seeding and persisting defaults for any key
// that is missing or empty. A missing file is not an error.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		fs:     afero.NewOsFs(),
		path:   path,
		logger: logger.NoOp{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		s.home = home
	}

	s.v = viper.New()
	s.v.SetFs(s.fs)
	s.v.SetConfigFile(path)
	s.v.SetConfigType("yaml")

	if err := s.v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warning("SettingsStore", "settings file unreadable, using defaults", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		} else {
			s.logger.Debug("SettingsStore", "no settings file yet", map[string]interface{}{
				"path": path,
			})
		}
	}

	seeded, err := s.seed()
	if err != nil {
		return nil, err
	}

	s.logger.Info("SettingsStore", "settings loaded", map[string]interface{}{
		"path":          path,
		"save_location": s.SaveLocation(),
		"save_format":   s.SaveFormat(),
		"seeded":        seeded,
	})

	return s, nil
}

func (s *Store) seed() (bool, error) {
	defaults := map[string]string{
		KeySaveLocation: DefaultSaveLocation(s.home),
		KeySaveFormat:   DefaultFormat,
	}

	seeded := false
	for _, key := range Keys {
		if value, ok := s.Get(key); !ok || value == "" {
			s.Set(key, defaults[key])
			seeded = true
		}
	}
	if !seeded {
		return false, nil
	}
	if err := s.Save(); err != nil {
		return true, fmt.Errorf("persist default settings: %w", err)
	}
	return true, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key and whether it is present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// Set stages a value; call Save to persist it.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, value)
}

// Save writes every known key to disk under its canonical name. The file is
// replaced by rename, so readers never see a partial write.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := make(map[string]string, len(Keys))
	for _, key := range Keys {
		values[key] = s.v.GetString(key)
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("replace settings %s: %w", s.path, err)
	}

	s.logger.Debug("SettingsStore", "settings saved", map[string]interface{}{
		"path": s.path,
	})
	return nil
}

func (s *Store) SaveLocation() string {
	v, _ := s.Get(KeySaveLocation)
	return v
}

func (s *Store) SaveFormat() string {
	v, _ := s.Get(KeySaveFormat)
	return v
}

// IsKnownKey reports whether key is one of Keys, ignoring case.
func IsKnownKey(key string) (string, bool) {
	for _, k := range Keys {
		if strings.EqualFold(k, key) {
			return k, true
		}
	}
	return "", false
}
