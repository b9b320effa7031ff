package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"registro/pkg/domain"
)

// sessionState is the on-disk record of the active serving session.
type sessionState struct {
	SessionID int64 `json:"sessionId"`
}

// saveActiveSession writes the active session marker to the state file.
func saveActiveSession(path string, id domain.SessionID) error {
	data, err := json.MarshalIndent(sessionState{SessionID: int64(id)}, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal session state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write session state file: %w", err)
	}

	return nil
}

// loadActiveSession reads the active session marker. It returns 0 when no
// state file exists or the file does not parse.
func loadActiveSession(path string) (domain.SessionID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}

		return 0, fmt.Errorf("could not read session state file: %w", err)
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		// a corrupt state file is treated as no active session
		return 0, nil
	}

	return domain.SessionID(state.SessionID), nil
}

// clearActiveSession removes the state file, ignoring a missing file.
func clearActiveSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not remove session state file: %w", err)
	}

	return nil
}
