package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// snapshotVersion is stamped into every export blob. Import refuses
// snapshots from a different schema rather than guessing.
const snapshotVersion = "1"

// ErrSnapshotVersion is returned by Import for blobs written with an
// unknown schema version.
var ErrSnapshotVersion = errors.New("unsupported analytics snapshot version")

// snapshot is the serialized form of State. The blob is opaque to
// callers; external persistence stores and returns it verbatim.
type snapshot struct {
	Version      string               `json:"version"`
	SessionID    string               `json:"session_id"`
	SessionStart time.Time            `json:"session_start"`
	Total        int                  `json:"total_interceptions"`
	Success      int                  `json:"success_count"`
	Fail         int                  `json:"fail_count"`
	Missing      map[string]int       `json:"missing_tool_counts"`
	Methods      map[string]int       `json:"method_counts"`
	Tools        map[string]ToolStats `json:"tool_stats"`
}

// Export serializes the full state. The round trip through Import is
// lossless for every counter and history entry.
func (s *State) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		Version:      snapshotVersion,
		SessionID:    s.sessionID,
		SessionStart: s.sessionStart,
		Total:        s.total,
		Success:      s.success,
		Fail:         s.fail,
		Missing:      make(map[string]int, len(s.missing)),
		Methods:      make(map[string]int, len(s.methods)),
		Tools:        make(map[string]ToolStats, len(s.tools)),
	}
	for k, v := range s.missing {
		snap.Missing[k] = v
	}
	for k, v := range s.methods {
		snap.Methods[k] = v
	}
	for k, v := range s.tools {
		snap.Tools[k] = *v
	}

	return json.Marshal(snap)
}

// Import replaces the state with a previously exported snapshot.
func (s *State) Import(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode analytics snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: %q", ErrSnapshotVersion, snap.Version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionID = snap.SessionID
	s.sessionStart = snap.SessionStart
	s.total = snap.Total
	s.success = snap.Success
	s.fail = snap.Fail
	s.missing = make(map[string]int, len(snap.Missing))
	for k, v := range snap.Missing {
		s.missing[k] = v
	}
	s.methods = make(map[string]int, len(snap.Methods))
	for k, v := range snap.Methods {
		s.methods[k] = v
	}
	s.tools = make(map[string]*ToolStats, len(snap.Tools))
	for k, v := range snap.Tools {
		stats := v
		s.tools[k] = &stats
	}

	return nil
}
