package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tapify_backend/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	// Фоновый движок раундов авиатора
	engine := s.ServiceProvider.Engine(ctx)
	engine.Start()
	defer engine.Stop()

	srv := &http.Server{
		Addr:    s.ServiceProvider.HTTPCfg().Address(),
		Handler: r,
	}

	// Останавливаем сервер и движок по SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("shutting down")
		_ = srv.Shutdown(context.Background())
	}()

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
