package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/mkarpinski/fakturnik/internal/logger"
	"github.com/mkarpinski/fakturnik/internal/scanner"
	"github.com/mkarpinski/fakturnik/pkg/types"
)

// Server exposes the Polish validation and formatting helpers over HTTP so
// the invoicing frontend can call them during the migration period instead
// of shipping duplicate client-side implementations.
type Server struct {
	config     *types.Config
	logger     *logger.Logger
	scanner    *scanner.Scanner
	httpServer *http.Server
}

func NewServer(log *logger.Logger, cfg *types.Config) *Server {
	return &Server{
		config:  cfg,
		logger:  log,
		scanner: scanner.NewScanner(log, cfg),
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/validate/nip", s.handleValidateNIP).Methods(http.MethodPost)
	api.HandleFunc("/validate/regon", s.handleValidateREGON).Methods(http.MethodPost)
	api.HandleFunc("/vat/calculate", s.handleCalculateVAT).Methods(http.MethodPost)
	api.HandleFunc("/format/currency", s.handleFormatCurrency).Methods(http.MethodPost)
	api.HandleFunc("/parse/currency", s.handleParseCurrency).Methods(http.MethodPost)
	api.HandleFunc("/parse/date", s.handleParseDate).Methods(http.MethodPost)
	api.HandleFunc("/migration/status", s.handleMigrationStatus).Methods(http.MethodGet)

	router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	return router
}

// Start blocks until the context is cancelled, then shuts the listener down
// gracefully with a five second drain window.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	corsOptions := []handlers.CORSOption{
		handlers.AllowedHeaders([]string{"Accept-Encoding", "Content-Type", "X-Requested-With"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
	}
	if len(s.config.Server.CORSOrigins) > 0 {
		corsOptions = append(corsOptions, handlers.AllowedOrigins(s.config.Server.CORSOrigins))
	}

	handler := handlers.CompressHandler(handlers.CORS(corsOptions...)(s.Router()))
	handler = handlers.CombinedLoggingHandler(os.Stdout, handler)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("server_starting").
		Str("addr", addr).
		Send()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server_started").
			Str("addr", addr).
			Send()
		errChan <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serwer HTTP zakończył się błędem: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server_shutdown_failed").Err(err).Send()
			return fmt.Errorf("nie można zatrzymać serwera HTTP: %w", err)
		}

		s.logger.Info("server_stopped").Send()
		return nil
	}
}
