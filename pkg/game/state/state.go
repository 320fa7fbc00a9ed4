// Package state holds the level-management session: the current level, where
// the player starts on it and the play statistics difficulty adapts to.
package state

import (
	"errors"
	"fmt"

	"codeberg.org/anaseto/gruid"

	"rogue/pkg/game/balance"
	"rogue/pkg/game/generator"
	"rogue/pkg/game/level"
	"rogue/pkg/game/progression"
)

// ErrFinalLevel is returned by Advance on the final level.
var ErrFinalLevel = errors.New("already on the final level")

// Session represents the level state of a game in progress. Every
// transition generates a new Level; views read it through Current.
type Session struct {
	Level     *level.Level
	Number    int // Current level number, 0 before the first level
	StartRoom int
	Player    gruid.Point

	// Balancer is adapted from Stats between levels. It should be the
	// strategy the generator spawns with; it may be nil.
	Balancer *balance.Balancer
	Stats    balance.Stats

	Messages []string

	gen generator.LevelGenerator
}

// NewSession creates a session that generates its levels with gen.
func NewSession(gen generator.LevelGenerator, b *balance.Balancer) *Session {
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	return &Session{
		Level:     level.New(),
		StartRoom: level.NoRoom,
		Balancer:  b,
		Messages:  make([]string, 0),
		gen:       gen,
	}
}

// Current returns the level in play.
func (s *Session) Current() *level.Level {
	return s.Level
}

// Start generates level number from scratch, replacing the current one.
// On failure the session keeps its previous level untouched.
func (s *Session) Start(number int) error {
	lv := level.New()
	res, err := s.gen.Generate(lv, number)
	if err != nil {
		return fmt.Errorf("failed to start level %d: %w", number, err)
	}
	s.Level = lv
	s.Number = number
	s.StartRoom = res.StartRoom
	s.Player = res.Player
	s.Stats = balance.Stats{Level: number}
	return nil
}

// Advance adapts difficulty to the finished level's statistics, then resets
// and regenerates the level as the next one.
func (s *Session) Advance() error {
	if s.Number != 0 && progression.IsFinal(s.Number) {
		return ErrFinalLevel
	}
	if s.Balancer != nil && s.Number != 0 {
		prev := s.Balancer.Difficulty()
		if s.Balancer.UpdateDifficulty(s.Stats) {
			s.AddMessage(fmt.Sprintf("difficulty %s -> %s", prev, s.Balancer.Difficulty()))
		}
	}
	return s.Start(progression.Next(s.Number))
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
