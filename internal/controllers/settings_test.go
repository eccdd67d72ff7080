package controllers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsHarness(location string) (*SettingsController, *fakeSettingsView, *memStore) {
	store := newMemStore(location, "jpeg")
	view := &fakeSettingsView{}
	ctrl := NewSettingsController(store, nil)
	ctrl.SetView(view)
	return ctrl, view, store
}

func TestSettingsReload(t *testing.T) {
	ctrl, view, _ := newSettingsHarness("/home/u/Pictures/")

	ctrl.Reload()

	assert.Equal(t, "/home/u/Pictures/", view.folder)
	assert.Equal(t, []string{"jpeg"}, view.options)
	assert.Equal(t, "jpeg", view.selected)
}

func TestChangeFolderAddsSeparatorWithoutPersisting(t *testing.T) {
	ctrl, view, store := newSettingsHarness("/old/")
	ctrl.Reload()
	view.picked = filepath.FromSlash("/new/place")

	ctrl.ChangeFolder()

	assert.Equal(t, filepath.FromSlash("/new/place")+string(filepath.Separator), view.folder)
	assert.Equal(t, "/old/", store.SaveLocation())
	assert.Empty(t, store.saved)
}

func TestChangeFolderCancelled(t *testing.T) {
	ctrl, view, _ := newSettingsHarness("/old/")
	ctrl.Reload()

	ctrl.ChangeFolder()

	assert.Equal(t, "/old/", view.folder)
}

func TestSettingsSave(t *testing.T) {
	ctrl, view, store := newSettingsHarness("/old/")
	ctrl.Reload()
	view.folder = "/not/validated"

	require.NoError(t, ctrl.Save())

	assert.Equal(t, "/not/validated", store.saved["saveLocation"])
	assert.False(t, view.closed)
}

func TestSettingsSaveAndClose(t *testing.T) {
	ctrl, view, store := newSettingsHarness("/old/")
	ctrl.Reload()
	view.folder = "/new/"

	require.NoError(t, ctrl.SaveAndClose())

	assert.Equal(t, "/new/", store.saved["saveLocation"])
	assert.True(t, view.closed)
}

func TestSettingsSaveFailureKeepsWindowOpen(t *testing.T) {
	ctrl, view, store := newSettingsHarness("/old/")
	store.saveErr = errDiskFull
	ctrl.Reload()

	err := ctrl.SaveAndClose()

	assert.ErrorIs(t, err, errDiskFull)
	assert.False(t, view.closed)
	require.Len(t, view.errs, 1)
}

func TestSelectFormatPersists(t *testing.T) {
	ctrl, _, store := newSettingsHarness("/old/")

	require.NoError(t, ctrl.SelectFormat("jpeg"))
	assert.Equal(t, "jpeg", store.saved["saveFormat"])

	require.NoError(t, ctrl.SelectFormat(""))
}

func TestWithTrailingSeparator(t *testing.T) {
	sep := string(filepath.Separator)
	assert.Equal(t, "a"+sep, WithTrailingSeparator("a"))
	assert.Equal(t, "a"+sep, WithTrailingSeparator("a"+sep))
}
