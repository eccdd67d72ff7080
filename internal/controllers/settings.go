package controllers

import (
	"fmt"
	"path/filepath"
	"strings"

	"image-converter/internal/logger"
	"image-converter/internal/settings"
)

// Formats offered by the settings window.
var Formats = []string{settings.DefaultFormat}

// SettingsStore is the persisted preference store.
type SettingsStore interface {
	Set(key, value string)
	Save() error
	SaveLocation() string
	SaveFormat() string
}

// SettingsView is the settings window as seen by SettingsController.
type SettingsView interface {
	SetFolder(path string)
	Folder() string
	SetFormats(options []string, selected string)
	PickFolder(onPicked func(dir string))
	ShowError(err error)
	Close()
}

// SettingsController edits the output folder and format.
type SettingsController struct {
	store  SettingsStore
	view   SettingsView
	logger logger.Logger
}

func NewSettingsController(store SettingsStore, log logger.Logger) *SettingsController {
	if log == nil {
		log = logger.NoOp{}
	}
	return &SettingsController{store: store, logger: log}
}

func (sc *SettingsController) SetView(view SettingsView) {
	sc.view = view
}

// Reload fills the view from the store.
func (sc *SettingsController) Reload() {
	sc.view.SetFolder(sc.store.SaveLocation())
	sc.view.SetFormats(Formats, sc.store.SaveFormat())
}

// ChangeFolder lets the user pick a directory. The choice is displayed with
// a trailing separator but not persisted until Save.
func (sc *SettingsController) ChangeFolder() {
	sc.view.PickFolder(func(dir string) {
		if dir == "" {
			return
		}
		sc.view.SetFolder(WithTrailingSeparator(dir))
	})
}

// Save persists the displayed folder. The path is not validated.
func (sc *SettingsController) Save() error {
	folder := sc.view.Folder()
	sc.store.Set(settings.KeySaveLocation, folder)

	if err := sc.persist(); err != nil {
		return err
	}

	sc.logger.Info("SettingsController", "output folder saved", map[string]interface{}{
		"save_location": folder,
	})
	sc.Reload()
	return nil
}

// SaveAndClose is Save followed by closing the window. The window stays
// open when saving fails.
func (sc *SettingsController) SaveAndClose() error {
	if err := sc.Save(); err != nil {
		return err
	}
	sc.view.Close()
	return nil
}

// SelectFormat persists format as the output format.
func (sc *SettingsController) SelectFormat(format string) error {
	if format == "" {
		return nil
	}
	sc.store.Set(settings.KeySaveFormat, format)
	return sc.persist()
}

func (sc *SettingsController) persist() error {
	if err := sc.store.Save(); err != nil {
		sc.logger.Error("SettingsController", err, nil)
		sc.view.ShowError(fmt.Errorf("settings could not be saved: %w", err))
		return err
	}
	return nil
}

// WithTrailingSeparator appends the platform separator when missing.
func WithTrailingSeparator(dir string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(dir, sep) {
		return dir
	}
	return dir + sep
}
