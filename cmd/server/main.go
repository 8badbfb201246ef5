package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sharan-555/portfolio-api/internal/ai"
	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/chat"
	"github.com/sharan-555/portfolio-api/internal/config"
	"github.com/sharan-555/portfolio-api/internal/contact"
	"github.com/sharan-555/portfolio-api/internal/db"
	"github.com/sharan-555/portfolio-api/internal/httpapi"
	"github.com/sharan-555/portfolio-api/internal/httpapi/handlers"
	"github.com/sharan-555/portfolio-api/internal/resume"
	"github.com/sharan-555/portfolio-api/internal/store/rabbitmq"
	"github.com/sharan-555/portfolio-api/internal/store/redisstore"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("db handle: %v", err)
	}
	defer sqlDB.Close()

	rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer rds.Close()

	// notification channel is best-effort; the API runs without it
	var notifier handlers.Notifier
	pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Printf("rabbit unavailable, contact notifications disabled: %v", err)
	} else {
		notifier = pub
		defer pub.Close()
	}

	provider := ai.NewOpenAIProvider(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	chatSvc := chat.NewService(chat.NewRepo(gdb), provider, cfg.ChatContextWindowSize)
	contacts := contact.NewRepo(gdb)
	tracker := analytics.NewTracker(analytics.NewRepo(gdb), rds)
	gen := resume.NewGenerator()

	h := handlers.NewHandler(gdb, cfg, chatSvc, contacts, tracker, gen, notifier)
	router := httpapi.NewRouter(h, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Printf("server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
