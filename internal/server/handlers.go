package server

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/mkarpinski/fakturnik/internal/migration"
	"github.com/mkarpinski/fakturnik/pkg/polish"
	"github.com/mkarpinski/fakturnik/pkg/types"
)

type nipRequest struct {
	NIP string `json:"nip"`
}

type nipResponse struct {
	IsValid   bool   `json:"is_valid"`
	Message   string `json:"message,omitempty"`
	Formatted string `json:"formatted,omitempty"`
}

func (s *Server) handleValidateNIP(w http.ResponseWriter, r *http.Request) {
	var req nipRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	result := polish.ValidateNIP(req.NIP)

	response := nipResponse{
		IsValid: result.IsValid,
		Message: result.Message,
	}
	if result.IsValid {
		response.Formatted = polish.FormatNIP(req.NIP)
		s.logger.Debug("nip_valid").Send()
	} else {
		s.logger.Debug("nip_invalid").Str("reason", result.Message).Send()
	}

	s.respondJSON(w, http.StatusOK, response)
}

type regonRequest struct {
	REGON string `json:"regon"`
}

type regonResponse struct {
	IsValid bool `json:"is_valid"`
}

func (s *Server) handleValidateREGON(w http.ResponseWriter, r *http.Request) {
	var req regonRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	valid := polish.ValidateREGON(req.REGON)

	if valid {
		s.logger.Debug("regon_valid").Send()
	} else {
		s.logger.Debug("regon_invalid").Send()
	}

	s.respondJSON(w, http.StatusOK, regonResponse{IsValid: valid})
}

type vatRequest struct {
	Net    float64 `json:"net"`
	Rate   int     `json:"rate"`
	Exempt bool    `json:"exempt"`
}

type vatResponse struct {
	polish.VATBreakdown
	Rate string `json:"rate"`
}

func (s *Server) handleCalculateVAT(w http.ResponseWriter, r *http.Request) {
	var req vatRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	rate := polish.Exempt
	if !req.Exempt {
		var err error
		rate, err = polish.RateOf(req.Rate)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	breakdown := polish.CalculateVAT(req.Net, rate)

	s.logger.Debug("vat_calculated").
		Float64("net", breakdown.Net).
		Str("rate", rate.String()).
		Send()

	s.respondJSON(w, http.StatusOK, vatResponse{
		VATBreakdown: breakdown,
		Rate:         rate.String(),
	})
}

type formatCurrencyRequest struct {
	Amount float64 `json:"amount"`
}

type formatCurrencyResponse struct {
	Formatted string `json:"formatted"`
}

func (s *Server) handleFormatCurrency(w http.ResponseWriter, r *http.Request) {
	var req formatCurrencyRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	s.respondJSON(w, http.StatusOK, formatCurrencyResponse{
		Formatted: polish.FormatCurrency(req.Amount),
	})
}

type parseCurrencyRequest struct {
	Text string `json:"text"`
}

type parseCurrencyResponse struct {
	Amount float64 `json:"amount"`
}

func (s *Server) handleParseCurrency(w http.ResponseWriter, r *http.Request) {
	var req parseCurrencyRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	amount := polish.ParseCurrency(req.Text)
	if math.IsNaN(amount) {
		s.respondError(w, http.StatusBadRequest, "nierozpoznany format kwoty")
		return
	}

	s.respondJSON(w, http.StatusOK, parseCurrencyResponse{Amount: amount})
}

type parseDateRequest struct {
	Text string `json:"text"`
}

type parseDateResponse struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted"`
}

func (s *Server) handleParseDate(w http.ResponseWriter, r *http.Request) {
	var req parseDateRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	parsed, err := polish.ParseDate(req.Text)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, parseDateResponse{
		Date:      parsed.Format("2006-01-02"),
		Formatted: polish.FormatDate(parsed),
	})
}

func (s *Server) handleMigrationStatus(w http.ResponseWriter, r *http.Request) {
	var inventories []*types.Inventory
	for _, dir := range s.config.Inventory.Paths {
		scanned, err := s.scanner.ScanDir(dir)
		if err != nil {
			s.logger.Error("inventory_load_failed").
				Str("dir", dir).
				Err(err).
				Send()
			continue
		}
		inventories = append(inventories, scanned...)
	}

	status := migration.ComputeStatusAll(inventories)

	s.logger.Debug("status_computed").
		Int("total_components", status.TotalComponents).
		Float64("migrated_percent", status.MigratedPercent).
		Send()

	s.respondJSON(w, http.StatusOK, status)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "niepoprawne ciało żądania JSON")
		return false
	}
	return true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("server_response_failed").Err(err).Send()
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}
