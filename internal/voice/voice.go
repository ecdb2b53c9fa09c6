// Package voice models the text-to-speech side of the Display/Voice
// boundary: a one-time capability probe at startup, a speaker that shells
// out to an external TTS engine, and the process-wide on/off flag.
package voice

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// Speaker forwards a response string to a speech engine. The core never
// calls this; the transport layer does, and only when the flag is ON.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Capability is the result of the startup probe: either a working Speaker
// or the reason none is available. Callers branch on Available instead of
// checking a nullable Speaker.
type Capability struct {
	speaker Speaker
	reason  string
}

// Probe looks up the configured TTS command once at process start.
// It never returns an error; an absent engine is a recorded reason,
// not a failure.
func Probe(ttsCmd string) Capability {
	if ttsCmd == "" {
		return Capability{reason: "no TTS command configured"}
	}
	path, err := exec.LookPath(ttsCmd)
	if err != nil {
		return Capability{reason: fmt.Sprintf("TTS command %q not found", ttsCmd)}
	}
	return Capability{speaker: &CommandSpeaker{path: path}}
}

// Available reports whether a speaker was found at startup.
func (c Capability) Available() bool {
	return c.speaker != nil
}

// Speaker returns the probed speaker, if any.
func (c Capability) Speaker() (Speaker, bool) {
	return c.speaker, c.speaker != nil
}

// Reason explains an unavailable capability. Empty when available.
func (c Capability) Reason() string {
	return c.reason
}

// CommandSpeaker speaks by invoking an espeak-compatible binary with a
// Spanish voice.
type CommandSpeaker struct {
	path string
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.path, "-v", "es", text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("voice: speak: %w", err)
	}
	return nil
}

// State is the process-wide voice flag. The toggle is a cosmetic flip,
// decoupled from engine health: switching ON does not re-probe the engine.
type State struct {
	mu      sync.Mutex
	enabled bool
}

// NewState creates the flag with its initial value, normally the probe
// result reported at startup.
func NewState(initial bool) *State {
	return &State{enabled: initial}
}

// Enabled reports the current flag value.
func (s *State) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Toggle flips the flag and returns the new value.
func (s *State) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = !s.enabled
	return s.enabled
}
