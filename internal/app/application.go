package app

import (
	"context"
	"fmt"

	"image-converter/internal/codec"
	"image-converter/internal/codec/opencv"
	"image-converter/internal/controllers"
	"image-converter/internal/converter"
	"image-converter/internal/gui"
	"image-converter/internal/logger"
	"image-converter/internal/settings"
	"image-converter/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const (
	AppName    = "Image Converter"
	AppID      = "io.github.imageconverter"
	AppVersion = "1.0.0"
)

const aboutText = "Image Converter converts the most common image formats to .jpeg.\n\n" +
	"Drop an image on the window or pick one, then press Convert."

type Application struct {
	fyneApp        fyne.App
	window         fyne.Window
	logger         logger.Logger
	store          *settings.Store
	mainWindow     *gui.MainWindow
	settingsWindow *gui.SettingsWindow
	mainCtrl       *controllers.MainController
	settingsCtrl   *controllers.SettingsController
	lifecycle      *Lifecycle
	shutdown       *shutdown.Manager
}

// NewRegistry returns the codec registry shared by the GUI and the CLI.
func NewRegistry() *codec.Registry {
	registry := codec.NewRegistry()
	opencv.Register(registry)
	return registry
}

func NewApplication(store *settings.Store, log logger.Logger) (*Application, error) {
	if store == nil {
		return nil, fmt.Errorf("settings store is required")
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.SetMaster()

	registry := NewRegistry()
	service := converter.NewService(store, registry, log)

	mainWindow := gui.NewMainWindow(window, log)
	settingsWindow := gui.NewSettingsWindow(fyneApp)

	mainCtrl := controllers.NewMainController(service, gui.NewURLOpener(fyneApp), log)
	mainCtrl.SetMainView(mainWindow)

	settingsCtrl := controllers.NewSettingsController(store, log)
	settingsCtrl.SetView(settingsWindow)

	application := &Application{
		fyneApp:        fyneApp,
		window:         window,
		logger:         log,
		store:          store,
		mainWindow:     mainWindow,
		settingsWindow: settingsWindow,
		mainCtrl:       mainCtrl,
		settingsCtrl:   settingsCtrl,
		lifecycle:      NewLifecycle(store, log),
		shutdown:       shutdown.NewManager(log),
	}

	application.shutdown.Register("window", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	application.shutdown.Register("settings", application.lifecycle)

	handlers := NewHandlers(mainCtrl, settingsCtrl, mainWindow, settingsWindow, registry.Extensions(), log)
	handlers.Bind()
	application.setupMenus()
	settingsCtrl.Reload()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":       AppVersion,
		"settings_file": store.Path(),
		"extensions":    len(registry.Extensions()),
	})

	return application, nil
}

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Settings...", a.showSettings),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About "+AppName, aboutText, a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *Application) showSettings() {
	a.settingsCtrl.Reload()
	a.settingsWindow.Show()
}

func (a *Application) Run() error {
	a.window.SetContent(a.mainWindow.GetMainContainer())
	a.window.SetOnClosed(a.lifecycle.Shutdown)
	a.window.CenterOnScreen()
	a.window.Show()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.shutdown.Listen(ctx)

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
