package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SettingsWindow edits the output folder and format. Closing it only hides it.
type SettingsWindow struct {
	window       fyne.Window
	folderEntry  *widget.Entry
	formatRadio  *widget.RadioGroup
	changeButton *widget.Button
	saveButton   *widget.Button
	saveExit     *widget.Button

	formatHandler func(string)
}

func NewSettingsWindow(app fyne.App) *SettingsWindow {
	sw := &SettingsWindow{
		window: app.NewWindow("Settings"),
	}

	sw.folderEntry = widget.NewEntry()
	sw.folderEntry.SetPlaceHolder("Output folder")
	sw.formatRadio = widget.NewRadioGroup(nil, sw.onFormatSelected)
	sw.formatRadio.Horizontal = true
	sw.formatRadio.Required = true
	sw.changeButton = widget.NewButton("Change folder", nil)
	sw.saveButton = widget.NewButton("Save", nil)
	sw.saveExit = widget.NewButton("Save & Close", nil)
	sw.saveExit.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Output folder", container.NewBorder(nil, nil, nil, sw.changeButton, sw.folderEntry)),
		widget.NewFormItem("Format", sw.formatRadio),
	)

	sw.window.SetContent(container.NewVBox(
		form,
		container.NewHBox(layout.NewSpacer(), sw.saveButton, sw.saveExit),
	))
	sw.window.Resize(fyne.NewSize(520, 160))
	sw.window.SetCloseIntercept(sw.window.Hide)

	return sw
}

func (sw *SettingsWindow) SetChangeFolderHandler(handler func()) {
	sw.changeButton.OnTapped = handler
}

func (sw *SettingsWindow) SetSaveHandler(handler func()) {
	sw.saveButton.OnTapped = handler
}

func (sw *SettingsWindow) SetSaveAndCloseHandler(handler func()) {
	sw.saveExit.OnTapped = handler
}

func (sw *SettingsWindow) SetFormatHandler(handler func(string)) {
	sw.formatHandler = handler
}

func (sw *SettingsWindow) onFormatSelected(format string) {
	if sw.formatHandler != nil {
		sw.formatHandler(format)
	}
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
	sw.window.RequestFocus()
}

func (sw *SettingsWindow) SetFolder(path string) {
	sw.folderEntry.SetText(path)
}

func (sw *SettingsWindow) Folder() string {
	return sw.folderEntry.Text
}

// SetFormats replaces the options without triggering the format handler.
func (sw *SettingsWindow) SetFormats(options []string, selected string) {
	handler := sw.formatHandler
	sw.formatHandler = nil
	defer func() { sw.formatHandler = handler }()

	sw.formatRadio.Options = options
	sw.formatRadio.SetSelected(selected)
	sw.formatRadio.Refresh()
}

func (sw *SettingsWindow) SelectedFormat() string {
	return sw.formatRadio.Selected
}

func (sw *SettingsWindow) PickFolder(onPicked func(dir string)) {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			sw.ShowError(err)
			return
		}
		if uri == nil {
			onPicked("")
			return
		}
		onPicked(uri.Path())
	}, sw.window)
	picker.Resize(fyne.NewSize(800, 560))
	picker.Show()
}

func (sw *SettingsWindow) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, sw.window)
	})
}

func (sw *SettingsWindow) Close() {
	sw.window.Hide()
}
