package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/slashkit/internal/notebot"
)

func main() {
	log.Println("[INFO] Starting notebot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := notebot.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	store, err := notebot.NewStore(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	bot, err := notebot.NewBot(cfg, store)
	if err != nil {
		log.Fatal(err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Bot error:", err)
		}
		cancel()
	}

	log.Println("[INFO] Notebot exited cleanly")
}
