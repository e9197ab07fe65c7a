package main

import (
	"fmt"
	"os"

	"github.com/gatherle/gatherle-backend/internal/app"
	"github.com/gatherle/gatherle-backend/internal/utils"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Start()

	port := utils.GetEnv("PORT", "8080", a.Log)
	addr := ":" + port
	a.Log.Info("Starting server...", "addr", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("Server exited", "error", err)
		a.Close()
		os.Exit(1)
	}
}
