package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	CORSAllowedOrigins []string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	SMTPSender string

	OrgName string
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	appAddr := GetEnv("APP_ADDR", ":8080")
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv("APP_ADDR") == "" {
		appAddr = ":" + port
	}

	smtpPort, err := strconv.Atoi(GetEnv("SMTP_PORT", "465"))
	if err != nil || smtpPort <= 0 {
		smtpPort = 465
	}

	env := Env{
		AppAddr:               appAddr,
		GinMode:               GetEnv("GIN_MODE"),
		DBDSN:                 buildDSN(),
		RazorpayKeyID:         GetEnv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     GetEnv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: GetEnv("RAZORPAY_WEBHOOK_SECRET"),
		CORSAllowedOrigins:    splitList(GetEnv("CORS_ALLOWED_ORIGINS", "https://quizitt-funds.vercel.app,http://localhost:5173")),
		JWTSecret:             GetEnv("JWT_SECRET"),
		AdminUsername:         GetEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash:     GetEnv("ADMIN_PASSWORD_HASH"),
		SMTPHost:              GetEnv("SMTP_HOST"),
		SMTPPort:              smtpPort,
		SMTPUser:              GetEnv("SMTP_USER"),
		SMTPPass:              GetEnv("SMTP_PASS"),
		SMTPSender:            GetEnv("SMTP_SENDER"),
		OrgName:               GetEnv("ORG_NAME", "Quizitt Education Fund"),
	}

	if env.RazorpayKeyID == "" || env.RazorpayKeySecret == "" {
		log.Println("RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET not set, order creation will fail")
	}
	if env.JWTSecret == "" {
		log.Println("JWT_SECRET not set, admin routes are disabled")
	}
	return env
}

// GetEnv returns the trimmed value of key, or the first default when unset/empty.
func GetEnv(key string, defaultValue ...string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// SMTPEnabled reports whether thank-you emails can be sent.
func (e Env) SMTPEnabled() bool {
	return e.SMTPHost != "" && e.SMTPSender != ""
}

func buildDSN() string {
	if dsn := GetEnv("DB_DSN"); dsn != "" {
		return dsn
	}
	return GetEnv("DB_USER", "root") + ":" + GetEnv("DB_PASSWORD") +
		"@tcp(" + GetEnv("DB_HOST", "127.0.0.1:3306") + ")/" + GetEnv("DB_NAME", "donations") +
		"?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
