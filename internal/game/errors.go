package game

import "errors"

var (
	ErrRoomFull            = errors.New("room is full")
	ErrAlreadyStarted      = errors.New("game has already started")
	ErrNotHost             = errors.New("only the host can start the game")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrWrongPhase          = errors.New("action not allowed in current phase")
	ErrWrongPlayer         = errors.New("action not allowed for this player")
	ErrActivePlayer        = errors.New("the clue giver cannot guess")
	ErrDuplicateGuess      = errors.New("player has already guessed this round")
	ErrInvalidPosition     = errors.New("guess position must be in [0, 1)")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionClosed       = errors.New("session has been closed")
)
