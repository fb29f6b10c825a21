package game

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// Phase is the coarse state of a round.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseInput    Phase = "input"
	PhaseGuessing Phase = "guessing"
	PhaseReveal   Phase = "reveal"
	PhaseGameOver Phase = "gameOver"
)

// TimeExpiredClue is stored as the round's clue when the clue giver
// runs out of time.
const TimeExpiredClue = "Time's up!"

const tickInterval = time.Second

// Broadcaster receives a snapshot after every successful mutation.
// Notify may be called with the session lock held: implementations must
// hand the snapshot off asynchronously and never call back into the
// session from inside Notify.
type Broadcaster interface {
	Notify(sessionID string, snap Snapshot)
}

// Rules are the per-session gameplay parameters.
type Rules struct {
	MaxPlayers  int
	MinPlayers  int
	TotalRounds int
	InputTime   int // seconds the clue giver has
	GuessTime   int // seconds the guessers have
}

// DefaultRules matches the classic ruleset.
func DefaultRules() Rules {
	return Rules{
		MaxPlayers:  8,
		MinPlayers:  2,
		TotalRounds: 10,
		InputTime:   20,
		GuessTime:   40,
	}
}

// Session is one room's game state machine. It is not safe for
// concurrent use of its fields; every operation serializes on an
// internal mutex, so callers in any goroutine may invoke operations
// directly. A session never outlives its registry entry: eviction
// calls Close, which disarms the clock and rejects everything after.
type Session struct {
	ID string

	mu                sync.Mutex
	players           []*Player
	phase             Phase
	currentRound      int
	activePlayerIndex int
	targetPosition    float64
	clue              string
	guesses           []Guess
	inputRemaining    int
	guessRemaining    int
	category          string
	prompt            string
	scored            bool
	closed            bool
	lastActivity      time.Time

	rules       Rules
	questions   *QuestionBank
	clock       *Clock
	broadcaster Broadcaster
}

// NewSession creates an empty session in the waiting phase.
func NewSession(id string, rules Rules, questions *QuestionBank, b Broadcaster) *Session {
	return &Session{
		ID:           id,
		phase:        PhaseWaiting,
		currentRound: 1,
		rules:        rules,
		questions:    questions,
		clock:        NewClock(),
		broadcaster:  b,
		lastActivity: time.Now(),
	}
}

// Join adds a player while the session is still waiting. The first
// joiner becomes the host. Player IDs are join-order indexes.
func (s *Session) Join(name, color string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Player{}, ErrSessionClosed
	}
	if s.phase != PhaseWaiting {
		return Player{}, ErrAlreadyStarted
	}
	if len(s.players) >= s.rules.MaxPlayers {
		return Player{}, ErrRoomFull
	}

	p := &Player{
		ID:     strconv.Itoa(len(s.players)),
		Name:   name,
		Color:  color,
		IsHost: len(s.players) == 0,
	}
	s.players = append(s.players, p)
	s.touch()
	s.notifyLocked()
	return *p, nil
}

// Start begins the first round. Only the host may start, and only with
// enough players.
func (s *Session) Start(requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.phase != PhaseWaiting {
		return ErrAlreadyStarted
	}
	requester := s.playerByID(requesterID)
	if requester == nil || !requester.IsHost {
		return ErrNotHost
	}
	if len(s.players) < s.rules.MinPlayers {
		return ErrInsufficientPlayers
	}

	s.currentRound = 1
	s.activePlayerIndex = 0
	s.beginRoundLocked()
	s.touch()
	s.notifyLocked()
	return nil
}

// SubmitClue records the clue giver's clue and opens guessing.
func (s *Session) SubmitClue(playerID, clue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.phase != PhaseInput {
		return ErrWrongPhase
	}
	if s.players[s.activePlayerIndex].ID != playerID {
		return ErrWrongPlayer
	}

	s.openGuessingLocked(clue)
	s.touch()
	s.notifyLocked()
	return nil
}

// SubmitGuess records one guess per player per round. A repeat guess is
// rejected, not overwritten. When every guesser has answered, the round
// reveals immediately instead of waiting out the timer.
func (s *Session) SubmitGuess(playerID string, position float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.phase != PhaseGuessing {
		return ErrWrongPhase
	}
	if s.players[s.activePlayerIndex].ID == playerID {
		return ErrActivePlayer
	}
	if s.playerByID(playerID) == nil {
		return ErrWrongPlayer
	}
	if position < 0 || position >= 1 {
		return ErrInvalidPosition
	}
	for _, g := range s.guesses {
		if g.PlayerID == playerID {
			return ErrDuplicateGuess
		}
	}

	s.guesses = append(s.guesses, Guess{PlayerID: playerID, Position: position})
	if len(s.guesses) == len(s.players)-1 {
		s.enterRevealLocked()
	}
	s.touch()
	s.notifyLocked()
	return nil
}

// Tick advances the active countdown by one second and fires the
// timeout transition when it hits zero. It reports whether the clock
// should keep running. The clock invokes it once per second; tests may
// call it directly.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	switch s.phase {
	case PhaseInput:
		s.inputRemaining--
		if s.inputRemaining <= 0 {
			s.openGuessingLocked(TimeExpiredClue)
		}
		s.touch()
		s.notifyLocked()
		return true
	case PhaseGuessing:
		s.guessRemaining--
		done := s.guessRemaining <= 0
		if done {
			s.enterRevealLocked()
		}
		s.touch()
		s.notifyLocked()
		return !done
	default:
		return false
	}
}

// AdvanceRound moves past the reveal, either into the next round or
// into gameOver. The post-reveal display delay is the caller's timer,
// not the session's. Calling it again after gameOver is a no-op, so a
// stray duplicate timer cannot skip a round.
func (s *Session) AdvanceRound() (continued bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrSessionClosed
	}
	if s.phase == PhaseGameOver {
		return false, nil
	}
	if s.phase != PhaseReveal {
		return false, ErrWrongPhase
	}

	if s.currentRound >= s.rules.TotalRounds {
		s.phase = PhaseGameOver
		s.clock.Disarm()
		s.touch()
		s.notifyLocked()
		return false, nil
	}

	s.currentRound++
	s.activePlayerIndex = (s.activePlayerIndex + 1) % len(s.players)
	s.beginRoundLocked()
	s.touch()
	s.notifyLocked()
	return true, nil
}

// Close permanently shuts the session down. Used by registry eviction;
// any clock is cancelled and all later operations fail.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.clock.Disarm()
}

// LastActivity reports when the session last mutated successfully.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Snapshot returns the session state as seen by viewerID. Unknown or
// empty viewer IDs get the most restricted view.
func (s *Session) Snapshot(viewerID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(viewerID, false)
}

// beginRoundLocked resets per-round state and enters input. The clock
// is re-armed; Arm cancels any schedule left over from the previous
// round first.
func (s *Session) beginRoundLocked() {
	s.category, s.prompt = s.questions.Draw()
	s.targetPosition = rand.Float64()
	s.clue = ""
	s.guesses = nil
	s.inputRemaining = s.rules.InputTime
	s.guessRemaining = s.rules.GuessTime
	s.scored = false
	s.phase = PhaseInput
	s.clock.Arm(tickInterval, s.Tick)
}

func (s *Session) openGuessingLocked(clue string) {
	s.clue = clue
	s.guessRemaining = s.rules.GuessTime
	s.phase = PhaseGuessing
}

// enterRevealLocked is the single place the reveal transition happens.
// The scored flag makes the scoring pass idempotent: the all-guessed
// path and the timer path cannot both award points for one round.
func (s *Session) enterRevealLocked() {
	s.phase = PhaseReveal
	if !s.scored {
		s.scored = true
		awards := ScoreRound(s.targetPosition, s.players[s.activePlayerIndex].ID, s.players, s.guesses)
		for _, p := range s.players {
			p.Score += awards[p.ID]
		}
	}
	s.clock.Disarm()
}

func (s *Session) playerByID(id string) *Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Session) touch() {
	s.lastActivity = time.Now()
}

func (s *Session) notifyLocked() {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Notify(s.ID, s.snapshotLocked("", true))
}

func (s *Session) snapshotLocked(viewerID string, omniscient bool) Snapshot {
	snap := Snapshot{
		ID:                s.ID,
		Players:           make([]Player, len(s.players)),
		Phase:             s.phase,
		CurrentRound:      s.currentRound,
		TotalRounds:       s.rules.TotalRounds,
		ActivePlayerIndex: s.activePlayerIndex,
		Category:          s.category,
		Prompt:            s.prompt,
		InputDeadline:     s.inputRemaining,
		GuessDeadline:     s.guessRemaining,
		GameOver:          s.phase == PhaseGameOver,
	}
	for i, p := range s.players {
		snap.Players[i] = *p
	}

	revealed := s.phase == PhaseReveal || s.phase == PhaseGameOver
	inRound := s.phase == PhaseInput || s.phase == PhaseGuessing
	isActive := inRound && s.players[s.activePlayerIndex].ID == viewerID

	if omniscient || revealed || isActive {
		target := s.targetPosition
		snap.TargetPosition = &target
	}
	// The clue only exists once guessing is open, at which point every
	// guesser needs to read it.
	if omniscient || s.phase != PhaseInput {
		snap.Clue = s.clue
	}
	for _, g := range s.guesses {
		if omniscient || revealed || g.PlayerID == viewerID {
			snap.Guesses = append(snap.Guesses, g)
		}
	}
	return snap
}
