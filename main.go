package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rana/chargify/cmd"
	"github.com/rana/chargify/internal/version"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version.Short())
		os.Exit(0)
	}

	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupting...")
		cancel()
		// Second signal forces exit
		<-sigChan
		fmt.Println("\nForce exiting...")
		os.Exit(1)
	}()

	os.Exit(cmd.Execute(ctx, os.Args[1:]))
}
