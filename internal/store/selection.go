package store

import (
	"fmt"

	"nycschools/internal/domain"
)

// Keys under which the selected school is persisted.
const (
	KeySelectedID   = "id"
	KeySelectedName = "name"
)

// LoadSelection returns the persisted selection. Both keys must be present;
// a pair left half-written by an interrupted SaveSelection reads as no
// selection.
func LoadSelection(s domain.SelectionStore) (domain.Selection, bool, error) {
	id, hasID, err := s.Get(KeySelectedID)
	if err != nil {
		return domain.Selection{}, false, fmt.Errorf("load selected id: %w", err)
	}
	name, hasName, err := s.Get(KeySelectedName)
	if err != nil {
		return domain.Selection{}, false, fmt.Errorf("load selected name: %w", err)
	}
	if !hasID || !hasName {
		return domain.Selection{}, false, nil
	}
	return domain.Selection{ID: domain.SchoolID(id), Name: name}, true, nil
}

// SaveSelection overwrites the persisted selection, id first.
func SaveSelection(s domain.SelectionStore, sel domain.Selection) error {
	if err := s.Set(KeySelectedID, sel.ID.String()); err != nil {
		return fmt.Errorf("save selected id: %w", err)
	}
	if err := s.Set(KeySelectedName, sel.Name); err != nil {
		return fmt.Errorf("save selected name: %w", err)
	}
	return nil
}
