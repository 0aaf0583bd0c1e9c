package main

import (
	"context"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/sisawaktu/sisawaktu/internal/advice"
	"github.com/sisawaktu/sisawaktu/internal/notify"
	"github.com/sisawaktu/sisawaktu/internal/storage"
	"github.com/sisawaktu/sisawaktu/internal/store"
	"github.com/sisawaktu/sisawaktu/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.sisawaktu.app"
	AppName = "SisaWaktu"

	// APIKeyEnv holds the Gemini key for storage-tip enrichment; the app
	// runs fine without it, items just get no tips.
	APIKeyEnv = "GEMINI_API_KEY"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	gateway := storage.NewGateway(myApp.Preferences())
	sender := notify.NewFyneSender(myApp)

	var provider advice.Provider
	if apiKey := os.Getenv(APIKeyEnv); apiKey != "" {
		p, err := advice.NewGeminiProvider(context.Background(), apiKey)
		if err != nil {
			log.Printf("Advice enrichment disabled: %v", err)
		} else {
			provider = p
		}
	} else {
		log.Printf("Advice enrichment disabled: %s not set", APIKeyEnv)
	}
	adviceSvc := advice.NewService(provider)

	itemStore := store.NewStore(gateway, sender, adviceSvc)
	if err := itemStore.Load(); err != nil {
		// A corrupt items blob is unrecoverable by design; refuse to start
		// rather than silently dropping the user's data.
		log.Fatalf("Failed to load stored state: %v", err)
	}

	// Advice arrivals repaint through the same path as store mutations.
	rootUI := ui.NewRootUI(myWindow, myApp, itemStore)
	adviceSvc.SetUpdateCallback(func(string, string) {
		rootUI.RefreshFromBackground()
	})

	myWindow.ShowAndRun()
}
