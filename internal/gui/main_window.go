package gui

import (
	"errors"
	"image"
	"strings"

	"image-converter/internal/gui/components"
	"image-converter/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// MainWindow renders the drop area and toolbar. Its setters may be called
// from any goroutine.
type MainWindow struct {
	window   fyne.Window
	logger   logger.Logger
	dropArea *components.DropArea
	toolbar  *components.Toolbar

	dropHandler func(paths []string)
}

func NewMainWindow(window fyne.Window, log logger.Logger) *MainWindow {
	mw := &MainWindow{
		window:   window,
		logger:   log,
		dropArea: components.NewDropArea(),
		toolbar:  components.NewToolbar(),
	}

	window.SetOnDropped(mw.onDropped)

	return mw
}

func (mw *MainWindow) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		container.NewPadded(mw.toolbar.GetContainer()),
		nil, nil,
		container.NewPadded(mw.dropArea.GetContainer()),
	)
}

func (mw *MainWindow) Toolbar() *components.Toolbar {
	return mw.toolbar
}

func (mw *MainWindow) SetDropHandler(handler func(paths []string)) {
	mw.dropHandler = handler
}

func (mw *MainWindow) onDropped(_ fyne.Position, uris []fyne.URI) {
	mw.logger.Debug("MainWindow", "items dropped", map[string]interface{}{
		"count": len(uris),
	})
	if mw.dropHandler != nil {
		mw.dropHandler(LocalPaths(uris))
	}
}

// LocalPaths converts file URIs to paths; other schemes map to "".
func LocalPaths(uris []fyne.URI) []string {
	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		if u == nil || u.Scheme() != "file" {
			paths = append(paths, "")
			continue
		}
		paths = append(paths, u.Path())
	}
	return paths
}

func (mw *MainWindow) SetSourcePath(path string) {
	fyne.Do(func() {
		mw.toolbar.SetSource(path)
	})
}

func (mw *MainWindow) SetPreview(img image.Image) {
	fyne.Do(func() {
		mw.dropArea.SetImage(img)
	})
}

func (mw *MainWindow) SetStatus(status string) {
	fyne.Do(func() {
		mw.toolbar.SetStatus(status)
	})
}

func (mw *MainWindow) ShowFailure(message string) {
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), mw.window)
	})
}

func (mw *MainWindow) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mw.window)
	})
}

func (mw *MainWindow) SetBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			mw.toolbar.ConvertButton.Disable()
			mw.toolbar.SelectButton.Disable()
			return
		}
		mw.toolbar.SelectButton.Enable()
		if mw.toolbar.Source() != "" {
			mw.toolbar.ConvertButton.Enable()
		}
	})
}

// PickImage shows the native open dialog filtered to extensions.
func (mw *MainWindow) PickImage(extensions []string, onPicked func(path string)) {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mw.ShowError(err)
			return
		}
		if reader == nil {
			onPicked("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPicked(path)
	}, mw.window)

	if len(extensions) > 0 {
		picker.SetFilter(storage.NewExtensionFileFilter(withUpperCase(extensions)))
	}
	picker.Resize(fyne.NewSize(800, 560))
	picker.Show()
}

// withUpperCase adds the upper-case spelling of every extension.
func withUpperCase(exts []string) []string {
	out := make([]string, 0, len(exts)*2)
	for _, ext := range exts {
		out = append(out, ext, strings.ToUpper(ext))
	}
	return out
}
