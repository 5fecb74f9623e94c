package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"viralreel/demo/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	apiURL := flag.String("url", getEnvOrDefault("VIRALREEL_API_URL", "http://localhost:8080"), "viralreel API URL")
	flag.Parse()

	program := tea.NewProgram(tui.NewModel(*apiURL))

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
