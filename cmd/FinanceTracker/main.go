package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	database "github.com/IreshEranga/Finance-Tracker/db"
	"github.com/IreshEranga/Finance-Tracker/internal/auth"
	emailService "github.com/IreshEranga/Finance-Tracker/internal/email"
	"github.com/IreshEranga/Finance-Tracker/internal/finance/application"
	"github.com/IreshEranga/Finance-Tracker/internal/finance/infrastructure"
	"github.com/IreshEranga/Finance-Tracker/internal/finance/interfaces"
	"github.com/IreshEranga/Finance-Tracker/internal/pdf"
	"github.com/IreshEranga/Finance-Tracker/internal/user"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router             *http.ServeMux
	authService        auth.Service
	transactionHandler *interfaces.TransactionHandler
	budgetHandler      *interfaces.BudgetHandler
	reportHandler      *interfaces.ReportHandler
}

func NewServer(
	authService auth.Service,
	transactionHandler *interfaces.TransactionHandler,
	budgetHandler *interfaces.BudgetHandler,
	reportHandler *interfaces.ReportHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authService:        authService,
		transactionHandler: transactionHandler,
		budgetHandler:      budgetHandler,
		reportHandler:      reportHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	authRequired := s.authService.JWTAccessTokenMiddleware()

	mainRouter := http.NewServeMux()
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// TRANSACTIONS API
	mainRouter.Handle("POST /api/transactions",
		authRequired(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mainRouter.Handle("GET /api/transactions",
		authRequired(http.HandlerFunc(s.transactionHandler.GetTransactions)))
	mainRouter.Handle("PUT /api/transactions/{id}",
		authRequired(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mainRouter.Handle("DELETE /api/transactions/{id}",
		authRequired(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// BUDGETS API
	mainRouter.Handle("POST /api/budgets",
		authRequired(http.HandlerFunc(s.budgetHandler.CreateBudget)))
	mainRouter.Handle("GET /api/budgets",
		authRequired(http.HandlerFunc(s.budgetHandler.GetBudgets)))
	mainRouter.Handle("PUT /api/budgets/{id}",
		authRequired(http.HandlerFunc(s.budgetHandler.UpdateBudget)))
	mainRouter.Handle("DELETE /api/budgets/{id}",
		authRequired(http.HandlerFunc(s.budgetHandler.DeleteBudget)))

	// REPORTS API
	mainRouter.Handle("GET /api/reports",
		authRequired(http.HandlerFunc(s.reportHandler.GetReport)))
	mainRouter.Handle("GET /api/reports/email",
		authRequired(http.HandlerFunc(s.reportHandler.EmailReport)))

	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.EnsureSchema(); err != nil {
		log.Fatalf("Could not prepare database schema: %v", err)
	}

	newEmailService, err := emailService.NewEmailService()
	if err != nil {
		log.Fatalf("Could not initialize email service: %v", err)
	}
	renderer := pdf.NewRenderer()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(jwtManager, userService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)

	budgetService := application.NewBudgetService(budgetRepo, transactionRepo)
	transactionService := application.NewTransactionService(transactionRepo, budgetService)
	reportService := application.NewReportService(transactionRepo, budgetRepo, renderer, newEmailService)

	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)
	reportHandler := interfaces.NewReportHandler(reportService, respondJSON, respondError)

	server := NewServer(authService, transactionHandler, budgetHandler, reportHandler)
	server.RegisterRoutes()

	if err := StartReconcileScheduler(budgetService); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// StartReconcileScheduler recomputes every budget on an interval as a safety
// net for recompute triggers missed while the process was down.
func StartReconcileScheduler(budgetService *application.BudgetService) error {
	c := cron.New()
	_, err := c.AddFunc("@every 1h", func() {
		if err := budgetService.ReconcileAll(); err != nil {
			log.Printf("Error reconciling budgets: %v", err)
		} else {
			log.Println("Budgets reconciled successfully.")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
