package handlers

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	datastar "github.com/starfederation/datastar-go/datastar"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"wavelength/internal/game"
)

// StreamGame pushes snapshot updates for one game to one player.
// The first patch carries the current state so a reconnecting client
// is whole again immediately; every broadcast after that re-filters
// the snapshot for this viewer.
func (h *Handler) StreamGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	playerID := r.URL.Query().Get("playerId")

	sess, err := h.store.GetSession(gameID)
	if err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	snap := sess.Snapshot(playerID)
	if !inGame(snap, playerID) {
		http.Error(w, "Not a player in this game", http.StatusUnauthorized)
		return
	}

	sse := datastar.NewSSE(w, r)

	events := h.eventBus.Subscribe(gameID)
	defer h.eventBus.Unsubscribe(gameID, events)

	if err := sse.MarshalAndPatchSignals(map[string]any{"game": snap}); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			sess, err := h.store.GetSession(gameID)
			if err != nil {
				// Session evicted mid-stream.
				return
			}
			view := sess.Snapshot(playerID)
			if err := sse.MarshalAndPatchSignals(map[string]any{"game": view}); err != nil {
				log.Printf("sse send failed for game %s: %v", gameID, err)
				return
			}
		}
	}
}

func inGame(snap game.Snapshot, playerID string) bool {
	for _, p := range snap.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// JoinQRCode returns a QR code for the room's join link, for showing
// on a shared screen.
func (h *Handler) JoinQRCode(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	if _, err := h.store.GetSession(gameID); err != nil {
		respondError(w, err)
		return
	}

	joinURL := getBaseURL(r) + "/games/" + gameID
	encoded, err := generateQRCode(joinURL)
	if err != nil {
		log.Printf("qr generation failed for game %s: %v", gameID, err)
		respondMessage(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"joinUrl": joinURL,
		"qrCode":  "data:image/png;base64," + encoded,
	})
}

// generateQRCode renders the URL as a base64-encoded PNG.
func generateQRCode(url string) (string, error) {
	qrc, err := qrcode.NewWith(url,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium),
		qrcode.WithEncodingMode(qrcode.EncModeByte),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// The writer only targets files, so render through a temp file.
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("qr_%d.png", time.Now().UnixNano()))

	qw, err := standard.New(tmpFile,
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(8),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create writer: %w", err)
	}

	if err := qrc.Save(qw); err != nil {
		return "", fmt.Errorf("failed to save QR code: %w", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		return "", fmt.Errorf("failed to read QR code file: %w", err)
	}
	os.Remove(tmpFile)

	return base64.StdEncoding.EncodeToString(data), nil
}

func getBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}
