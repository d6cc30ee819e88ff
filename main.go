package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/patchworksports/patchwork-sports/internal/config"
	"github.com/patchworksports/patchwork-sports/internal/logger"
	"github.com/patchworksports/patchwork-sports/internal/model"
	"github.com/patchworksports/patchwork-sports/internal/ui"
	"github.com/patchworksports/patchwork-sports/internal/video"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.patchworksports.app"
	AppName = "PatchWork Sports"
)

func main() {
	startup, startupErr := config.LoadStartup()
	if startupErr != nil {
		startup = config.DefaultStartup()
	}

	if err := logger.Init(startup.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if startupErr != nil {
		logger.Log.Warnw("invalid startup config, using defaults", "error", startupErr)
	}
	logger.Log.Infow("starting", "app", AppName, "version", version)

	catalog, err := model.DefaultCatalog()
	if err != nil {
		logger.Log.Errorw("failed to load workout catalog", "error", err)
		return
	}

	myApp := app.NewWithID(AppID)
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(float32(startup.WindowWidth), float32(startup.WindowHeight)))

	ui.NewRootUI(myWindow, myApp, catalog, video.NewLocator(startup.VideoHost))

	myWindow.ShowAndRun()
}
