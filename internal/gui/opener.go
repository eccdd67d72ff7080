package gui

import (
	"fmt"
	"net/url"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// URLOpener opens folders through the platform URL handler.
type URLOpener struct {
	app fyne.App
}

func NewURLOpener(app fyne.App) *URLOpener {
	return &URLOpener{app: app}
}

func (o *URLOpener) OpenFolder(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	u, err := url.Parse(storage.NewFileURI(path).String())
	if err != nil {
		return fmt.Errorf("build folder url: %w", err)
	}
	return o.app.OpenURL(u)
}
