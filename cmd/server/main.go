package main

import (
	"fmt"
	"log"

	"kaamconnect/internal/config"
	"kaamconnect/internal/password"
	"kaamconnect/internal/registry"
	"kaamconnect/internal/server"
	"kaamconnect/internal/session"
	"kaamconnect/internal/store"
)

func main() {
	cfg := config.Load()

	hasher, err := password.New(cfg.PasswordScheme)
	if err != nil {
		log.Fatalf("password scheme: %v", err)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	if err := st.EnsureDefaultAdmin(hasher, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail, cfg.AdminName); err != nil {
		log.Fatalf("seed default admin: %v", err)
	}

	reg := registry.NewService(st, hasher)
	mgr := session.NewManager(cfg.SessionTTL)

	r := server.NewRouter(cfg, reg, mgr)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
