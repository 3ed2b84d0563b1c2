package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"B3Advisor/internal/model"
)

const (
	msgUseFII    = "Este código termina com '11' e provavelmente é um Fundo Imobiliário. Use /analise/fii/."
	msgUseEquity = "Este código não termina com '11'. Provavelmente é uma ação. Use /analise/acao/."
	msgNotFound  = "Ticker não encontrado na Brapi."
	msgUpstream  = "Falha ao consultar as fontes de dados. Tente novamente."
)

func (s *Server) handleEquity(w http.ResponseWriter, r *http.Request) {
	s.handleAnalysis(w, r, model.AssetEquity, msgUseFII)
}

func (s *Server) handleFund(w http.ResponseWriter, r *http.Request) {
	s.handleAnalysis(w, r, model.AssetFII, msgUseEquity)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request, want model.AssetClass, mismatchMsg string) {
	setCORS(w)

	ticker := strings.ToUpper(strings.TrimSpace(r.PathValue("ticker")))
	if ticker == "" {
		writeError(w, http.StatusBadRequest, "Informe um ticker.")
		return
	}
	if model.Classify(ticker) != want {
		writeError(w, http.StatusBadRequest, mismatchMsg)
		return
	}
	profile := model.ParseProfile(r.URL.Query().Get("perfil"))

	report, err := s.Analyzer.Analyze(r.Context(), ticker, want, profile)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			writeError(w, http.StatusNotFound, msgNotFound)
		default:
			// Upstream detail goes to the log, never into the body.
			log.Printf("[ERROR] analyze %s: %v", ticker, err)
			writeError(w, http.StatusBadGateway, msgUpstream)
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func handlePreflight(w http.ResponseWriter, _ *http.Request) {
	setCORS(w)
	w.WriteHeader(http.StatusOK)
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"erro": msg})
}
