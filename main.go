package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"nyxshell/internal/autostart"
)

//go:embed all:frontend/dist
var assets embed.FS

func startHidden() bool {
	for _, arg := range os.Args[1:] {
		if arg == autostart.StartHiddenFlag {
			return true
		}
	}
	return false
}

func main() {
	// Create an instance of the app structure
	app := NewApp()

	hidden := startHidden()

	// Create application with options
	err := wails.Run(&options.App{
		Title:     "NYX OS",
		Width:     1280,
		Height:    800,
		MinWidth:  960,
		MinHeight: 600,
		// The shell boots straight into fullscreen for the OS feel.
		Fullscreen:  !hidden,
		StartHidden: hidden,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "nyxshell-desktop-single-instance",
			OnSecondInstanceLaunch: func(second options.SecondInstanceData) {
				app.showMainWindow()
			},
		},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: options.NewRGB(8, 10, 18),
		OnStartup:        app.startup,
		OnBeforeClose:    app.beforeClose,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
