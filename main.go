package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/memegrid/memegrid/internal/board"
	"github.com/memegrid/memegrid/internal/config"
	"github.com/memegrid/memegrid/internal/imageload"
	"github.com/memegrid/memegrid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.memegrid.memegrid"
	AppName = "Meme Grid"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact board theme
	myApp.Settings().SetTheme(ui.NewBoardTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	fileCfg, err := config.LoadFileConfig()
	if err != nil {
		log.Printf("Ignoring config file: %v", err)
	}
	settings.ApplyFileOverrides(fileCfg)

	boardSvc := board.NewService(settings.GetDefaultFontSize())
	fetcher := imageload.NewFetcher()

	// Create and setup UI
	root := ui.NewRootUI(myApp, myWindow, boardSvc, fetcher, settings)
	myWindow.SetContent(root.BuildUI())

	// Show and run
	myWindow.ShowAndRun()
}
