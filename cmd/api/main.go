package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aurenstar/chat-backend/internal/config"
	"github.com/aurenstar/chat-backend/internal/infra/http/handlers"
	"github.com/aurenstar/chat-backend/internal/infra/http/middleware"
	"github.com/aurenstar/chat-backend/internal/infra/mail"
	"github.com/aurenstar/chat-backend/internal/infra/queue"
	"github.com/aurenstar/chat-backend/internal/infra/storage"
	"github.com/aurenstar/chat-backend/internal/logger"
	"github.com/aurenstar/chat-backend/internal/server"
	"github.com/aurenstar/chat-backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargando configuración: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creando logger: %v", err)
	}
	defer zapLogger.Sync()

	// 1. Company Store (archivos JSON por empresa, sin cache)
	store := storage.NewCompanyStore(cfg.Companies.BaseDir)

	// 2. Notifier (opcional: sin credenciales queda apagado)
	var sender *mail.EmailSender
	if cfg.MailConfigured() {
		sender = mail.NewEmailSender(
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password,
			cfg.Mail.From, store,
		)
	} else {
		zapLogger.Warn("correo sin configurar, notificaciones de órdenes apagadas")
	}

	// 3. Cola (opcional: con AMQP_URL las órdenes se notifican vía worker)
	var events usecase.OrderEventPublisher
	if cfg.Queue.AMQPURL != "" && sender != nil {
		rabbit, err := queue.NewRabbitMQ(cfg.Queue.AMQPURL)
		if err != nil {
			zapLogger.Fatal("conectando a RabbitMQ", zap.Error(err))
		}
		defer rabbit.Close()

		events = queue.NewProducer(rabbit.Conn, rabbit.Ch)

		worker := queue.NewWorker(rabbit.Ch, sender, zapLogger)
		go worker.Start(queue.QueueName)
	}

	// 4. UseCase del chat
	var notifier usecase.OrderNotifier
	if sender != nil {
		notifier = sender
	}
	chatUC := usecase.NewChatUseCase(store, notifier, events, cfg.Payments.DefaultBase, zapLogger)

	// 5. Handlers
	chatHandler := handlers.NewChatHandler(chatUC, zapLogger)
	companyHandler := handlers.NewCompanyHandler(store)
	healthHandler := handlers.NewHealthHandler()
	statusHandler := handlers.NewStatusHandler(cfg.MailConfigured())

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/chat", chatHandler.Handle)
	r.Get("/empresa/{empresaID}/config", companyHandler.HandleGetConfig)
	r.Get("/empresa/{empresaID}/faq", companyHandler.HandleGetFAQ)
	r.Get("/empresa/{empresaID}/promos", companyHandler.HandleGetPromos)
	r.Get("/health", healthHandler.Handle)
	r.Get("/", statusHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	srv := server.New(cfg.Server.Port, r, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("error del servidor", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("señal de apagado recibida")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("el apagado del servidor falló", zap.Error(err))
	}

	zapLogger.Info("servidor detenido")
}
