// ABOUTME: Pending change CRUD and lifecycle for Charm KV storage.
// ABOUTME: Status rides alongside the change in a stored wrapper record.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/lift/internal/models"
)

// storedChange wraps a pending change with its review status.
type storedChange struct {
	Change models.PendingChange `json:"change"`
	Status models.ChangeStatus  `json:"status"`
}

// CreatePendingChange stores a new pending change awaiting review.
func (c *Client) CreatePendingChange(ch *models.PendingChange) error {
	key := ChangePrefix + ch.ID.String()
	data, err := marshalJSON(storedChange{Change: *ch, Status: models.StatusPending})
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	return c.set(key, data)
}

// GetPendingChange retrieves a change by ID or ID prefix, any status.
func (c *Client) GetPendingChange(idOrPrefix string) (*models.PendingChange, error) {
	data, err := c.getByIDPrefix(ChangePrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get change: %w", err)
	}

	sc, err := unmarshalJSON[storedChange](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal change: %w", err)
	}
	return &sc.Change, nil
}

// ListPendingChanges retrieves changes with optional status filtering,
// oldest workout first so review follows training order.
func (c *Client) ListPendingChanges(status *models.ChangeStatus) ([]*models.PendingChange, error) {
	allData, err := c.listByPrefix(ChangePrefix)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}

	var changes []*models.PendingChange
	for _, data := range allData {
		sc, err := unmarshalJSON[storedChange](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if status != nil && sc.Status != *status {
			continue
		}
		change := sc.Change
		changes = append(changes, &change)
	}

	sort.SliceStable(changes, func(i, j int) bool {
		if !changes[i].WorkoutDate.Equal(changes[j].WorkoutDate) {
			return changes[i].WorkoutDate.Before(changes[j].WorkoutDate)
		}
		return changes[i].CreatedAt.Before(changes[j].CreatedAt)
	})

	return changes, nil
}

// ResolvePendingChange marks a pending change applied or discarded.
// Already-resolved changes cannot be resolved again.
func (c *Client) ResolvePendingChange(idOrPrefix string, status models.ChangeStatus) error {
	if status != models.StatusApplied && status != models.StatusDiscarded {
		return fmt.Errorf("invalid resolution %q", status)
	}

	data, err := c.getByIDPrefix(ChangePrefix, idOrPrefix)
	if err != nil {
		return fmt.Errorf("resolve change: %w", err)
	}

	sc, err := unmarshalJSON[storedChange](data)
	if err != nil {
		return fmt.Errorf("unmarshal change: %w", err)
	}
	if sc.Status != models.StatusPending {
		return fmt.Errorf("change %s is not pending", idOrPrefix)
	}

	sc.Status = status
	updated, err := marshalJSON(sc)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	return c.set(ChangePrefix+sc.Change.ID.String(), updated)
}
