package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/arjunrn/binge-go/internal/api"
	"github.com/arjunrn/binge-go/internal/core"
	"github.com/arjunrn/binge-go/internal/jobs"
	"github.com/arjunrn/binge-go/internal/store"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize the core application components
	app, err := core.New()
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}
	defer app.Close()

	// Start the background job scheduler (history retention pruning).
	scheduler := jobs.Start(app.Config, store.New(app.DB))
	defer scheduler.Stop()

	// Setup the API server
	server := api.NewServer(app)
	addr := fmt.Sprintf(":%d", app.Config.Port)
	log.Printf("Starting web server on %s", addr)

	// Start the HTTP server
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
