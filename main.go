package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "Mullion/internal/auth"
	batch "Mullion/internal/calc/batch"
	material "Mullion/internal/calc/material"
	mullion "Mullion/internal/calc/mullion"
	report "Mullion/internal/calc/report"
	section "Mullion/internal/calc/section"
	project "Mullion/internal/project"
	repo "Mullion/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authSvc := &auth.Service{JWTKey: []byte(tokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authSvc.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authSvc.RegisterHandler).Methods("POST")

	secureAPI := api.PathPrefix("/user").Subrouter()
	secureAPI.Use(authSvc.AuthMiddleware)

	mullionH := &mullion.Handler{}
	batchH := &batch.Handler{}
	materialH := &material.Handler{}
	sectionH := &section.Handler{}
	reportH := &report.Handler{}
	projectH := &project.Handler{Repo: store}

	secureAPI.HandleFunc("/tools/materials/grades", materialH.Grades).Methods("GET")
	secureAPI.HandleFunc("/tools/mullion/calc", mullionH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/mullion/batch", batchH.Calc).Methods("POST")
	secureAPI.HandleFunc("/tools/sections/match", sectionH.Match).Methods("POST")
	secureAPI.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureAPI.HandleFunc("/tools/report/json", reportH.Export).Methods("POST")

	secureAPI.HandleFunc("/designs", projectH.Save).Methods("POST")
	secureAPI.HandleFunc("/designs", projectH.List).Methods("GET")
	secureAPI.HandleFunc("/designs/{id:[0-9]+}", projectH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	log.Println("Starting server on :443")
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
