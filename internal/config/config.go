package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	StoreDriver string // "file" (flat documents) or "sqlite"
	DataDir     string
	DBDSN       string
	ImagesDir   string
	LogFile     string

	SMTPAddr     string // host:port for smtp.SendMail
	SMTPHost     string
	FromEmail    string
	FromPassword string
	MailTimeout  time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = "file"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ayurveda.db"
	} // sqlite file in project root
	imagesDir := os.Getenv("IMAGES_DIR")
	if imagesDir == "" {
		imagesDir = "./images"
	}
	logFile := os.Getenv("LOG_FILE") // empty disables file logging

	timeout := 10 * time.Second
	if ms := os.Getenv("MAIL_TIMEOUT_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Millisecond
		}
	}

	cfg := Config{
		Port:         port,
		StoreDriver:  driver,
		DataDir:      dataDir,
		DBDSN:        dsn,
		ImagesDir:    imagesDir,
		LogFile:      logFile,
		SMTPAddr:     os.Getenv("SMTP_ADDRESS"),
		SMTPHost:     os.Getenv("FROM_EMAIL_SMTP"),
		FromEmail:    os.Getenv("FROM_EMAIL"),
		FromPassword: os.Getenv("FROM_EMAIL_PASSWORD"),
		MailTimeout:  timeout,
	}
	log.Printf("[config] PORT=%s STORE_DRIVER=%s DATA_DIR=%s IMAGES_DIR=%s DB_DSN=%s",
		cfg.Port, cfg.StoreDriver, cfg.DataDir, cfg.ImagesDir, cfg.DBDSN)
	return cfg
}
