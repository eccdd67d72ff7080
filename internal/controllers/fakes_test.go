package controllers

import (
	"errors"
	"image"
)

type fakeMainView struct {
	sourcePath string
	preview    image.Image
	statuses   []string
	failures   []string
	errs       []error
	picked     string
	pickExts   []string
}

func (v *fakeMainView) SetSourcePath(path string)  { v.sourcePath = path }
func (v *fakeMainView) SetPreview(img image.Image) { v.preview = img }
func (v *fakeMainView) SetStatus(status string)    { v.statuses = append(v.statuses, status) }
func (v *fakeMainView) ShowFailure(message string) { v.failures = append(v.failures, message) }
func (v *fakeMainView) ShowError(err error)        { v.errs = append(v.errs, err) }
func (v *fakeMainView) PickImage(extensions []string, onPicked func(string)) {
	v.pickExts = extensions
	onPicked(v.picked)
}

func (v *fakeMainView) lastStatus() string {
	if len(v.statuses) == 0 {
		return ""
	}
	return v.statuses[len(v.statuses)-1]
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) OpenFolder(path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

type fakeSettingsView struct {
	folder   string
	options  []string
	selected string
	picked   string
	closed   bool
	errs     []error
}

func (v *fakeSettingsView) SetFolder(path string) { v.folder = path }
func (v *fakeSettingsView) Folder() string        { return v.folder }
func (v *fakeSettingsView) SetFormats(options []string, selected string) {
	v.options = options
	v.selected = selected
}
func (v *fakeSettingsView) PickFolder(onPicked func(string)) { onPicked(v.picked) }
func (v *fakeSettingsView) ShowError(err error)              { v.errs = append(v.errs, err) }
func (v *fakeSettingsView) Close()                           { v.closed = true }

type memStore struct {
	values  map[string]string
	saved   map[string]string
	saveErr error
}

func newMemStore(location, format string) *memStore {
	return &memStore{
		values: map[string]string{"saveLocation": location, "saveFormat": format},
		saved:  map[string]string{},
	}
}

func (s *memStore) Set(key, value string) { s.values[key] = value }
func (s *memStore) Save() error {
	if s.saveErr != nil {
		return s.saveErr
	}
	for k, v := range s.values {
		s.saved[k] = v
	}
	return nil
}
func (s *memStore) SaveLocation() string { return s.values["saveLocation"] }
func (s *memStore) SaveFormat() string   { return s.values["saveFormat"] }

var errDiskFull = errors.New("disk full")
