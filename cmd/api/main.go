package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/config"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/dates"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/handler"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/integrations/banxico"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/ledger"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/middleware"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/repository"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/service"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger, cfg)
	rates := banxico.NewClient(cfg, logger)
	h := handler.NewHandler(svc, rates, logger)

	// Setup router; every route passes the session gate, the allow-list
	// comes from configuration
	r := mux.NewRouter()
	r.Use(middleware.SessionGate(cfg))

	r.HandleFunc("/login", h.Login).Methods("POST").Name("login")
	r.HandleFunc("/register", h.Register).Methods("POST").Name("register")
	r.HandleFunc("/logout", h.Logout).Methods("POST").Name("logout")
	r.HandleFunc("/healthz", h.Healthz).Methods("GET").Name("healthz")

	r.HandleFunc("/clients", h.ListClients).Methods("GET").Name("clients")
	r.HandleFunc("/clients", h.CreateClient).Methods("POST").Name("clients.create")
	r.HandleFunc("/clients/{id:[0-9]+}", h.UpdateClient).Methods("PUT").Name("clients.update")
	r.HandleFunc("/clients/{id:[0-9]+}", h.DeleteClient).Methods("DELETE").Name("clients.delete")

	r.HandleFunc("/credits", h.ListCredits).Methods("GET").Name("credits")
	r.HandleFunc("/credits", h.CreateCredit).Methods("POST").Name("credits.create")
	r.HandleFunc("/credits/report.pdf", h.CreditsReport).Methods("GET").Name("credits.report")
	r.HandleFunc("/credits/{id:[0-9]+}", h.CreditDetail).Methods("GET").Name("credits.detail")
	r.HandleFunc("/credits/{id:[0-9]+}", h.DeleteCredit).Methods("DELETE").Name("credits.delete")
	r.HandleFunc("/credits/{id:[0-9]+}/payments", h.PostPayment).Methods("POST").Name("payments.post")
	r.HandleFunc("/credits/{id:[0-9]+}/payments/{date}", h.ReversePayment).Methods("DELETE").Name("payments.reverse")

	r.HandleFunc("/portfolio/summary", h.PortfolioSummary).Methods("GET").Name("portfolio")
	r.HandleFunc("/treasury", h.UpdateTreasury).Methods("PUT").Name("treasury")
	r.HandleFunc("/rates/reference", h.ReferenceRate).Methods("GET").Name("rates")

	// Schedule the overdue-credit reminder when SMTP is configured
	if cfg.SMTPHost != "" && cfg.ReminderEmail != "" {
		sender := email.NewSender(cfg, logger)
		c := cron.New()
		if _, err := c.AddFunc(cfg.ReminderCron, func() {
			sendOverdueReminder(svc, sender, cfg, logger)
		}); err != nil {
			logger.Fatalf("Failed to schedule reminder job: %v", err)
		}
		c.Start()
		defer c.Stop()
		logger.Infof("Overdue reminder scheduled: %s", cfg.ReminderCron)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}

func sendOverdueReminder(svc *service.Service, sender *email.Sender, cfg *config.Config, logger *logrus.Logger) {
	overdue, err := svc.OverdueCredits()
	if err != nil {
		logger.Errorf("Failed to collect overdue credits: %v", err)
		return
	}
	if len(overdue) == 0 {
		return
	}

	now := time.Now()
	rows := make([]email.OverdueCredit, 0, len(overdue))
	for _, v := range overdue {
		days := 0
		if end, ok := dates.Normalize(v.EndDate); ok {
			days = -ledger.DaysBetween(now, end)
		}
		rows = append(rows, email.OverdueCredit{
			ClientName:  v.ClientName,
			EndDate:     v.EndDate,
			Remaining:   v.Total,
			DaysOverdue: days,
		})
	}
	if err := sender.SendOverdueSummary(cfg.ReminderEmail, now, rows); err != nil {
		logger.Errorf("Failed to send overdue reminder: %v", err)
	}
}
