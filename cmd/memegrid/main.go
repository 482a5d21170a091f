package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/memegrid/memegrid/internal/board"
	"github.com/memegrid/memegrid/internal/config"
	"github.com/memegrid/memegrid/internal/imageload"
	"github.com/memegrid/memegrid/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.memegrid.memegrid")
	myWindow := myApp.NewWindow("Meme Grid")
	myWindow.Resize(fyne.NewSize(800, 600))

	settings := config.NewSettings(myApp)
	boardSvc := board.NewService(settings.GetDefaultFontSize())

	// Create and setup UI
	root := ui.NewRootUI(myApp, myWindow, boardSvc, imageload.NewFetcher(), settings)
	myWindow.SetContent(root.BuildUI())

	// Show and run
	myWindow.ShowAndRun()
}
