package store

import "sort"

// AssignmentStore is the repository over assignments.json: a mapping
// from employee username to the checklist item ids that employee must
// answer.
type AssignmentStore struct {
	path string
}

func NewAssignmentStore(path string) (*AssignmentStore, error) {
	if err := ensureFile(path, map[string][]int{}); err != nil {
		return nil, err
	}
	return &AssignmentStore{path: path}, nil
}

func (s *AssignmentStore) All() (map[string][]int, error) {
	var assignments map[string][]int
	if err := readJSONFile(s.path, &assignments); err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = map[string][]int{}
	}
	return assignments, nil
}

// Get returns the assigned item ids for a username, sorted. A username
// with no saved assignment gets an empty set.
func (s *AssignmentStore) Get(username string) ([]int, error) {
	assignments, err := s.All()
	if err != nil {
		return nil, err
	}
	ids := append([]int(nil), assignments[username]...)
	sort.Ints(ids)
	return ids, nil
}

// ReplaceAll overwrites the entire mapping. A manager save always
// supplies every employee's complete set; there is no merge.
func (s *AssignmentStore) ReplaceAll(assignments map[string][]int) error {
	if assignments == nil {
		assignments = map[string][]int{}
	}
	for user, ids := range assignments {
		if ids == nil {
			assignments[user] = []int{}
		}
	}
	return writeJSONFile(s.path, assignments)
}

// ReconcileAfterDelete rewrites every assignment set after the checklist
// item with the given id was deleted: the id itself is dropped and ids
// above it shift down by one, mirroring the checklist reindex so each
// assignment keeps pointing at the same question.
func (s *AssignmentStore) ReconcileAfterDelete(removedID int) error {
	assignments, err := s.All()
	if err != nil {
		return err
	}
	for user, ids := range assignments {
		remapped := []int{}
		for _, id := range ids {
			switch {
			case id == removedID:
				continue
			case id > removedID:
				remapped = append(remapped, id-1)
			default:
				remapped = append(remapped, id)
			}
		}
		assignments[user] = remapped
	}
	return writeJSONFile(s.path, assignments)
}
