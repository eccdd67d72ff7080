package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type Toolbar struct {
	container     *fyne.Container
	SelectButton  *widget.Button
	ConvertButton *widget.Button
	FolderButton  *widget.Button
	sourceLabel   *widget.Label
	statusLabel   *widget.Label

	imageSelectHandler func()
	convertHandler     func()
	openFolderHandler  func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.SelectButton = widget.NewButtonWithIcon("Select image", theme.FileImageIcon(), t.onImageSelect)
	t.ConvertButton = widget.NewButtonWithIcon("Convert", theme.DocumentSaveIcon(), t.onConvert)
	t.ConvertButton.Importance = widget.HighImportance
	t.ConvertButton.Disable()
	t.FolderButton = widget.NewButtonWithIcon("Open folder", theme.FolderOpenIcon(), t.onOpenFolder)

	t.sourceLabel = widget.NewLabel("")
	t.sourceLabel.Truncation = fyne.TextTruncateEllipsis
	t.statusLabel = widget.NewLabel("Ready")

	buttons := container.NewHBox(t.SelectButton, t.ConvertButton, t.FolderButton)

	t.container = container.NewVBox(
		t.sourceLabel,
		container.NewBorder(nil, nil, buttons, nil, t.statusLabel),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetImageSelectHandler(handler func()) {
	t.imageSelectHandler = handler
}

func (t *Toolbar) SetConvertHandler(handler func()) {
	t.convertHandler = handler
}

func (t *Toolbar) SetOpenFolderHandler(handler func()) {
	t.openFolderHandler = handler
}

func (t *Toolbar) SetSource(path string) {
	t.sourceLabel.SetText(path)
	if path == "" {
		t.ConvertButton.Disable()
	} else {
		t.ConvertButton.Enable()
	}
}

func (t *Toolbar) Source() string {
	return t.sourceLabel.Text
}

func (t *Toolbar) SetStatus(status string) {
	t.statusLabel.SetText(status)
}

func (t *Toolbar) Status() string {
	return t.statusLabel.Text
}

func (t *Toolbar) onImageSelect() {
	if t.imageSelectHandler != nil {
		t.imageSelectHandler()
	}
}

func (t *Toolbar) onConvert() {
	if t.convertHandler != nil {
		t.convertHandler()
	}
}

func (t *Toolbar) onOpenFolder() {
	if t.openFolderHandler != nil {
		t.openFolderHandler()
	}
}
