package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"wavelength/internal/game"
)

type joinRequest struct {
	PlayerName  string `json:"playerName"`
	PlayerColor string `json:"playerColor"`
}

type actionRequest struct {
	PlayerID string  `json:"playerId"`
	Clue     string  `json:"clue"`
	Position float64 `json:"position"`
}

// CreateGame creates a room and joins the creator as its host.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.PlayerName) == "" {
		respondMessage(w, http.StatusBadRequest, "playerName is required")
		return
	}

	sess := h.store.CreateSession()
	player, err := sess.Join(req.PlayerName, req.PlayerColor)
	if err != nil {
		respondError(w, err)
		return
	}

	log.Printf("created game %s for %s", sess.ID, player.Name)
	respondJSON(w, http.StatusCreated, map[string]string{
		"gameId":   sess.ID,
		"playerId": player.ID,
	})
}

// JoinGame adds a player to an existing room.
func (h *Handler) JoinGame(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.GetSession(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.PlayerName) == "" {
		respondMessage(w, http.StatusBadRequest, "playerName is required")
		return
	}

	player, err := sess.Join(req.PlayerName, req.PlayerColor)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"playerId": player.ID})
}

// StartGame starts the game; only the host may call it.
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	sess, req, ok := h.sessionAction(w, r)
	if !ok {
		return
	}
	if err := sess.Start(req.PlayerID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "game started"})
}

// SubmitClue records the clue giver's clue.
func (h *Handler) SubmitClue(w http.ResponseWriter, r *http.Request) {
	sess, req, ok := h.sessionAction(w, r)
	if !ok {
		return
	}
	if err := sess.SubmitClue(req.PlayerID, req.Clue); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "clue submitted"})
}

// SubmitGuess records one player's guess.
func (h *Handler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	sess, req, ok := h.sessionAction(w, r)
	if !ok {
		return
	}
	if err := sess.SubmitGuess(req.PlayerID, req.Position); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "guess submitted"})
}

// GameState returns the snapshot as seen by the requesting player.
func (h *Handler) GameState(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.GetSession(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Snapshot(r.URL.Query().Get("playerId")))
}

// sessionAction resolves the addressed session and decodes the common
// action body. On failure it writes the response itself.
func (h *Handler) sessionAction(w http.ResponseWriter, r *http.Request) (*game.Session, actionRequest, bool) {
	var req actionRequest
	sess, err := h.store.GetSession(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return nil, req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return nil, req, false
	}
	return sess, req, true
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondError maps the game's rejection values onto HTTP statuses.
// Every rejection is an expected outcome, so the body is a plain
// user-facing message, never a stack trace.
func respondError(w http.ResponseWriter, err error) {
	respondMessage(w, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrNotHost),
		errors.Is(err, game.ErrWrongPlayer),
		errors.Is(err, game.ErrActivePlayer):
		return http.StatusForbidden
	case errors.Is(err, game.ErrDuplicateGuess):
		return http.StatusConflict
	case errors.Is(err, game.ErrSessionClosed):
		return http.StatusGone
	default:
		return http.StatusBadRequest
	}
}
