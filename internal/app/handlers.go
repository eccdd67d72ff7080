package app

import (
	"context"

	"image-converter/internal/controllers"
	"image-converter/internal/gui"
	"image-converter/internal/logger"
)

// Handlers binds widget events to controller operations.
type Handlers struct {
	mainCtrl       *controllers.MainController
	settingsCtrl   *controllers.SettingsController
	mainWindow     *gui.MainWindow
	settingsWindow *gui.SettingsWindow
	extensions     []string
	logger         logger.Logger
}

func NewHandlers(
	mainCtrl *controllers.MainController,
	settingsCtrl *controllers.SettingsController,
	mainWindow *gui.MainWindow,
	settingsWindow *gui.SettingsWindow,
	extensions []string,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		mainCtrl:       mainCtrl,
		settingsCtrl:   settingsCtrl,
		mainWindow:     mainWindow,
		settingsWindow: settingsWindow,
		extensions:     extensions,
		logger:         log,
	}
}

func (h *Handlers) Bind() {
	toolbar := h.mainWindow.Toolbar()
	toolbar.SetImageSelectHandler(h.HandleImageSelect)
	toolbar.SetConvertHandler(h.HandleConvert)
	toolbar.SetOpenFolderHandler(h.HandleOpenFolder)
	h.mainWindow.SetDropHandler(h.HandleDrop)

	h.settingsWindow.SetChangeFolderHandler(h.settingsCtrl.ChangeFolder)
	h.settingsWindow.SetSaveHandler(func() { _ = h.settingsCtrl.Save() })
	h.settingsWindow.SetSaveAndCloseHandler(func() { _ = h.settingsCtrl.SaveAndClose() })
	h.settingsWindow.SetFormatHandler(func(format string) { _ = h.settingsCtrl.SelectFormat(format) })
}

func (h *Handlers) HandleDrop(paths []string) {
	h.mainCtrl.AcceptDroppedImage(paths)
}

func (h *Handlers) HandleImageSelect() {
	h.mainCtrl.SelectImage(h.extensions)
}

func (h *Handlers) HandleConvert() {
	h.mainWindow.SetBusy(true)

	go func() {
		defer h.mainWindow.SetBusy(false)

		if _, err := h.mainCtrl.Convert(context.Background()); err != nil {
			h.logger.Debug("Handlers", "conversion finished with error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

func (h *Handlers) HandleOpenFolder() {
	_ = h.mainCtrl.OpenSavedFolder()
}
