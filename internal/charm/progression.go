// ABOUTME: Progression state and history persistence for Charm KV storage.
// ABOUTME: States are one key per progression key; history is one blob per key.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/lift/internal/models"
)

// SaveState upserts one progression key's state.
func (c *Client) SaveState(s *models.ProgressionState) error {
	key := StatePrefix + string(s.Key)
	data, err := marshalJSON(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return c.set(key, data)
}

// GetState retrieves one progression key's state.
func (c *Client) GetState(key models.ProgressionKey) (*models.ProgressionState, error) {
	data, err := c.get(StatePrefix + string(key))
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("no state for key %s", key)
	}

	s, err := unmarshalJSON[models.ProgressionState](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return s, nil
}

// LoadStates loads the full progression map.
func (c *Client) LoadStates() (models.StateMap, error) {
	allData, err := c.listByPrefix(StatePrefix)
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}

	states := models.StateMap{}
	for _, data := range allData {
		s, err := unmarshalJSON[models.ProgressionState](data)
		if err != nil {
			continue // Skip invalid entries
		}
		states[s.Key] = s
	}
	return states, nil
}

// DeleteState removes one progression key's state.
func (c *Client) DeleteState(key models.ProgressionKey) error {
	if _, err := c.GetState(key); err != nil {
		return err
	}
	return c.delete(StatePrefix + string(key))
}

// AppendHistory records one applied change in a key's log. Replaying a
// workout already present in the log is a no-op.
func (c *Client) AppendHistory(key models.ProgressionKey, h *models.ExerciseHistory, e models.HistoryEntry) error {
	stored, err := c.GetHistory(key)
	if err != nil {
		stored = &models.ExerciseHistory{
			ExerciseName: h.ExerciseName,
			Tier:         h.Tier,
			Role:         h.Role,
		}
	}

	for _, existing := range stored.Entries {
		if existing.WorkoutID == e.WorkoutID {
			return nil
		}
	}

	stored.Entries = append(stored.Entries, e)
	sort.SliceStable(stored.Entries, func(i, j int) bool {
		return stored.Entries[i].Date.Before(stored.Entries[j].Date)
	})

	data, err := marshalJSON(stored)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return c.set(HistoryPrefix+string(key), data)
}

// GetHistory loads one key's log.
func (c *Client) GetHistory(key models.ProgressionKey) (*models.ExerciseHistory, error) {
	data, err := c.get(HistoryPrefix + string(key))
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("no history for key %s", key)
	}

	h, err := unmarshalJSON[models.ExerciseHistory](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return h, nil
}

// LoadHistory loads all logs keyed by progression key.
func (c *Client) LoadHistory() (models.HistoryMap, error) {
	c.mu.RLock()
	keys, err := c.kv.Keys()
	c.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	histories := models.HistoryMap{}
	for _, key := range keys {
		keyStr := string(key)
		if len(keyStr) <= len(HistoryPrefix) || keyStr[:len(HistoryPrefix)] != HistoryPrefix {
			continue
		}
		progKey := models.ProgressionKey(extractID(keyStr, HistoryPrefix))
		h, err := c.GetHistory(progKey)
		if err != nil {
			continue // Skip invalid entries
		}
		histories[progKey] = h
	}
	return histories, nil
}
