package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/quickbar/internal/bootstrap"
	"github.com/ytget/quickbar/internal/config"
	"github.com/ytget/quickbar/internal/platform"
	"github.com/ytget/quickbar/internal/sidebar"
	"github.com/ytget/quickbar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.quickbar"
	AppName = "Quickbar"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	rt, err := bootstrap.Open(bootstrap.Options{App: myApp})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	settings := config.NewSettings(myApp)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(settings.GetWindowSize())

	// A sidebar hidden in a previous session starts visible again
	rt.Store.Dispatch(sidebar.SetVisible{Visible: true})

	sidebarUI := ui.NewSidebarUI(myWindow, myApp, rt.Store, settings, platform.NewLauncher())
	if desk, ok := myApp.(desktop.App); ok {
		sidebarUI.EnableTray(desk)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := rt.Watch(ctx); err != nil {
			log.Printf("state watcher stopped: %v", err)
		}
	}()

	myWindow.SetOnClosed(func() {
		size := myWindow.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
	})

	myWindow.ShowAndRun()
}
