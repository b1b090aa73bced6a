// Package server exposes the search and history operations over JSON
// HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/epinault/polydict/internal/history"
	"github.com/epinault/polydict/internal/search"
	"github.com/epinault/polydict/internal/wiktionary"
)

// SearchService is the inbound search operation.
type SearchService interface {
	Search(ctx context.Context, word, lang string) (search.Record, error)
}

// Handler serves the HTTP API.
type Handler struct {
	service SearchService
	history history.Repository
}

// NewHandler creates the API handler.
func NewHandler(service SearchService, hist history.Repository) *Handler {
	return &Handler{service: service, history: hist}
}

// Routes returns the route multiplexer for the API.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", h.handleSearch)
	mux.HandleFunc("GET /history", h.handleHistoryList)
	mux.HandleFunc("DELETE /history/{id}", h.handleHistoryDelete)
	mux.HandleFunc("DELETE /history", h.handleHistoryClear)
	return mux
}

type searchRequest struct {
	Word string `json:"word"`
	Lang string `json:"lang"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.service.Search(r.Context(), req.Word, req.Lang)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, record)
	case errors.Is(err, search.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, wiktionary.ErrNotFound):
		writeError(w, http.StatusNotFound, "word not found")
	default:
		slog.Default().Error("search failed",
			slog.String("word", req.Word),
			slog.Any("error", err))
		writeError(w, http.StatusBadGateway, "lookup failed, try again later")
	}
}

func (h *Handler) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.history.List(r.Context(), limit)
	if err != nil {
		slog.Default().Error("history list failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid history id")
		return
	}
	if err := h.history.Delete(r.Context(), id); err != nil {
		slog.Default().Error("history delete failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to delete history entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context()); err != nil {
		slog.Default().Error("history clear failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
