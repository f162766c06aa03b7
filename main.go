package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "donation-backend/internal/config"
	intdb "donation-backend/internal/db"
	"donation-backend/internal/gateway"
	router "donation-backend/internal/http"
	"donation-backend/internal/http/handlers"
	"donation-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 15*time.Second)
	if err := intdb.EnsureSchema(schemaCtx, db); err != nil {
		cancelSchema()
		log.Fatalf("failed to ensure schema: %v", err)
	}
	cancelSchema()

	hs := &handlers.Handlers{
		Gateway:  gateway.NewRazorpay(env.RazorpayKeyID, env.RazorpayKeySecret),
		Verifier: services.SignatureVerifier{KeySecret: env.RazorpayKeySecret, WebhookSecret: env.RazorpayWebhookSecret},
		Auth: services.AuthService{
			Username:     env.AdminUsername,
			PasswordHash: env.AdminPasswordHash,
			Secret:       []byte(env.JWTSecret),
		},
		OrgName: env.OrgName,
		DB:      db,
	}
	if env.SMTPEnabled() {
		hs.Notifier = services.NewMailNotifier(env.SMTPHost, env.SMTPPort, env.SMTPUser, env.SMTPPass, env.SMTPSender, env.OrgName)
	} else {
		log.Println("SMTP not configured, thank-you emails are disabled")
	}

	r := router.NewRouter(env, hs)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
