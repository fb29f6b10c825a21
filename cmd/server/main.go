package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wavelength"
	"wavelength/internal/config"
	"wavelength/internal/game"
	"wavelength/internal/handlers"
	"wavelength/internal/store"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Fail fast on a broken catalog rather than at first round start.
	questions, err := game.NewQuestionBank(wavelength.QuestionsYAML)
	if err != nil {
		log.Fatal("Failed to load question catalog: ", err)
	}

	rules := game.Rules{
		MaxPlayers:  cfg.Game.MaxPlayersPerRoom,
		MinPlayers:  cfg.Game.MinPlayersToStart,
		TotalRounds: cfg.Game.TotalRounds,
		InputTime:   cfg.Game.InputTime,
		GuessTime:   cfg.Game.GuessTime,
	}

	s := store.NewMemoryStore(rules, questions, cfg.Game.RoomTimeout)
	s.StartJanitor(cfg.Game.SweepInterval)
	defer s.Stop()

	h := handlers.New(s, cfg)
	r := handlers.SetupRouter(h, cfg, nil)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout, // 0 for SSE support
	}

	go func() {
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server gracefully stopped")
}
