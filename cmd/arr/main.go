package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cli := NewCLI()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer cancel()

	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		log.Printf("[error] %s", err)
		cancel()
		os.Exit(1)
	}
}
