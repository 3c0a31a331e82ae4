package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	APIBaseURL string // empty means: run the embedded stub backend
	StubAddr   string
	StateDB    string
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	base := os.Getenv("API_BASE_URL") // e.g. https://api.example.com/api/v1
	stubAddr := os.Getenv("STUB_ADDR")
	if stubAddr == "" {
		stubAddr = "127.0.0.1:8091"
	}
	dsn := os.Getenv("STATE_DB")
	if dsn == "" {
		dsn = "shopfront.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shopfront.log"
	}

	cfg := Config{Port: port, APIBaseURL: base, StubAddr: stubAddr, StateDB: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s API_BASE_URL=%s STUB_ADDR=%s STATE_DB=%s LOG_FILE=%s",
		cfg.Port, cfg.APIBaseURL, cfg.StubAddr, cfg.StateDB, cfg.LogFile)
	return cfg
}
