package controllers

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"image-converter/internal/converter"
	"image-converter/internal/logger"
	"image-converter/internal/preview"
)

var ErrBusy = errors.New("conversion already running")

// MainView is the main window as seen by MainController.
type MainView interface {
	SetSourcePath(path string)
	// SetPreview shows img; nil clears the preview.
	SetPreview(img image.Image)
	SetStatus(status string)
	ShowFailure(message string)
	ShowError(err error)
	PickImage(extensions []string, onPicked func(path string))
}

// FolderOpener shows a directory in the platform file manager.
type FolderOpener interface {
	OpenFolder(path string) error
}

// MainController handles source selection, preview and conversion.
type MainController struct {
	service *converter.Service
	view    MainView
	opener  FolderOpener
	logger  logger.Logger

	mu               sync.RWMutex
	currentImagePath string
	converting       bool
}

func NewMainController(service *converter.Service, opener FolderOpener, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOp{}
	}
	return &MainController{
		service: service,
		opener:  opener,
		logger:  log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view MainView) {
	mc.view = view
}

// CurrentImagePath returns the last accepted source, or "".
func (mc *MainController) CurrentImagePath() string {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.currentImagePath
}

// AcceptDroppedImage takes the first dropped local path if it names an image.
// It reports whether the drop was accepted.
func (mc *MainController) AcceptDroppedImage(paths []string) bool {
	if len(paths) == 0 || paths[0] == "" {
		mc.view.SetStatus("Drop an image file from your computer")
		return false
	}

	path := paths[0]
	if !mc.service.IsImage(path) {
		mc.logger.Debug("MainController", "drop ignored", map[string]interface{}{
			"path": path,
		})
		mc.view.SetStatus(fmt.Sprintf("%s is not an image", filepath.Base(path)))
		return false
	}

	mc.setImage(path)
	return true
}

// SelectImage opens the file picker; a picked file is handled like a drop.
func (mc *MainController) SelectImage(extensions []string) {
	mc.view.PickImage(extensions, func(path string) {
		if path == "" {
			return
		}
		mc.setImage(path)
	})
}

func (mc *MainController) setImage(path string) {
	mc.mu.Lock()
	mc.currentImagePath = path
	mc.mu.Unlock()

	mc.view.SetSourcePath(path)
	mc.SetPreview(path)

	mc.logger.Info("MainController", "image selected", map[string]interface{}{
		"path": path,
	})
}

// SetPreview shows a scaled copy of path without altering the file.
func (mc *MainController) SetPreview(path string) {
	img, err := preview.Load(context.Background(), mc.service, path, preview.Width, preview.Height)
	if err != nil {
		mc.logger.Debug("MainController", "preview unavailable", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		mc.view.SetPreview(nil)
		mc.view.SetStatus("Preview not available")
		return
	}

	mc.view.SetPreview(img)
	mc.view.SetStatus("Ready to convert")
}

// Convert converts the current image with the stored preferences. Every
// failure is reported to the user through the same message.
func (mc *MainController) Convert(ctx context.Context) (string, error) {
	mc.mu.Lock()
	if mc.converting {
		mc.mu.Unlock()
		return "", ErrBusy
	}
	mc.converting = true
	src := mc.currentImagePath
	mc.mu.Unlock()

	defer func() {
		mc.mu.Lock()
		mc.converting = false
		mc.mu.Unlock()
	}()

	mc.view.SetStatus("Converting...")

	dst, err := mc.service.Convert(ctx, src)
	if err != nil {
		mc.view.SetStatus("Conversion failed")
		mc.view.ShowFailure(mc.service.FailureMessage())
		return "", err
	}

	mc.view.SetStatus(fmt.Sprintf("Saved %s", dst))
	return dst, nil
}

// OpenSavedFolder shows the configured output folder.
func (mc *MainController) OpenSavedFolder() error {
	location := mc.service.SaveLocation()
	if err := mc.opener.OpenFolder(location); err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{
			"path": location,
		})
		mc.view.ShowError(fmt.Errorf("open folder %s: %w", location, err))
		return err
	}
	return nil
}
