package store

import (
	"fmt"
	"strings"
)

// InputType is the answer modality of a checklist item. The wire values
// match the persisted master_checklist.json format.
type InputType string

const (
	InputTypeYesNo    InputType = "Yes/No"
	InputTypeDropdown InputType = "Dropdown"
	InputTypeText     InputType = "Text"
)

func ParseInputType(value string) (InputType, error) {
	switch InputType(strings.TrimSpace(value)) {
	case InputTypeYesNo:
		return InputTypeYesNo, nil
	case InputTypeDropdown:
		return InputTypeDropdown, nil
	case InputTypeText:
		return InputTypeText, nil
	}
	return "", fmt.Errorf("%w: unknown input type %q", ErrValidation, value)
}

// ChecklistItem is one audit question. Item ids are dense 0-based
// ordinals that always equal the item's position in the stored array;
// every delete reindexes the items that follow.
type ChecklistItem struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	InputType InputType `json:"input_type"`
	Options   []string  `json:"options"`
}

// ChecklistStore is the repository over master_checklist.json.
type ChecklistStore struct {
	path string
}

func NewChecklistStore(path string) (*ChecklistStore, error) {
	if err := ensureFile(path, []ChecklistItem{}); err != nil {
		return nil, err
	}
	return &ChecklistStore{path: path}, nil
}

func (s *ChecklistStore) List() ([]ChecklistItem, error) {
	var items []ChecklistItem
	if err := readJSONFile(s.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Append validates and stores a new item at the end of the checklist.
// The new id is always the current length, so ids stay contiguous.
// Options arrive as the raw comma-separated form value; they are only
// retained for dropdown items.
func (s *ChecklistStore) Append(question string, inputType InputType, rawOptions string) (ChecklistItem, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return ChecklistItem{}, fmt.Errorf("%w: question is required", ErrValidation)
	}
	if _, err := ParseInputType(string(inputType)); err != nil {
		return ChecklistItem{}, err
	}

	options := []string{}
	if inputType == InputTypeDropdown {
		options = SplitOptions(rawOptions)
		if len(options) == 0 {
			return ChecklistItem{}, fmt.Errorf("%w: dropdown items need at least one option", ErrValidation)
		}
	}

	items, err := s.List()
	if err != nil {
		return ChecklistItem{}, err
	}
	item := ChecklistItem{
		ID:        len(items),
		Question:  question,
		InputType: inputType,
		Options:   options,
	}
	items = append(items, item)
	if err := writeJSONFile(s.path, items); err != nil {
		return ChecklistItem{}, err
	}
	return item, nil
}

// Delete removes the item at the given ordinal position and reassigns
// every remaining item's id to its new position. It returns the removed
// item so callers can cascade the change into the assignment store.
func (s *ChecklistStore) Delete(index int) (ChecklistItem, error) {
	items, err := s.List()
	if err != nil {
		return ChecklistItem{}, err
	}
	if index < 0 || index >= len(items) {
		return ChecklistItem{}, fmt.Errorf("%w: checklist item %d", ErrNotFound, index)
	}
	removed := items[index]
	items = append(items[:index], items[index+1:]...)
	for i := range items {
		items[i].ID = i
	}
	if err := writeJSONFile(s.path, items); err != nil {
		return ChecklistItem{}, err
	}
	return removed, nil
}

// ReplaceAll overwrites the whole checklist, reindexing the supplied
// items. Used by the bulk spreadsheet import.
func (s *ChecklistStore) ReplaceAll(items []ChecklistItem) error {
	for i := range items {
		items[i].ID = i
		if items[i].Options == nil {
			items[i].Options = []string{}
		}
	}
	return writeJSONFile(s.path, items)
}

// SplitOptions turns a comma-separated form value into trimmed,
// non-empty option strings.
func SplitOptions(raw string) []string {
	options := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		options = append(options, part)
	}
	return options
}
