package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/revelaction/annodiff/storage"
)

// RunStore keeps one run_<id>.json file per run in its root directory.
type RunStore struct {
	root string
}

var _ storage.RunRepository = (*RunStore)(nil)

// NewRunStore creates a filesystem run store rooted at an existing
// directory.
func NewRunStore(root string) (*RunStore, error) {
	if _, err := os.ReadDir(root); err != nil {
		return nil, err
	}

	return &RunStore{root: root}, nil
}

func (s *RunStore) List() ([]storage.Run, error) {
	ids, err := s.ids()
	if err != nil {
		return nil, err
	}

	runs := []storage.Run{}
	for _, id := range ids {
		run, err := s.Read(id)
		if err != nil {
			return nil, err
		}

		run.Records = nil
		runs = append(runs, run)
	}

	return runs, nil
}

func (s *RunStore) Read(id int) (storage.Run, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return storage.Run{}, fmt.Errorf("no run with id %d: %w", id, err)
	}

	var run storage.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return storage.Run{}, err
	}

	run.Id = id
	return run, nil
}

func (s *RunStore) Write(run storage.Run) (int, error) {
	ids, err := s.ids()
	if err != nil {
		return 0, err
	}

	id := 1
	if len(ids) > 0 {
		id = ids[len(ids)-1] + 1
	}

	run.Id = id
	data, err := json.MarshalIndent(run, "", "\t")
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(s.path(id), data, 0644); err != nil {
		return 0, err
	}

	return id, nil
}

func (s *RunStore) Close() error {
	return nil
}

func (s *RunStore) path(id int) string {
	return filepath.Join(s.root, fmt.Sprintf("run_%d.json", id))
}

// ids returns the run ids present in the root directory, ascending.
func (s *RunStore) ids() ([]int, error) {
	files, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	ids := []int{}
	for _, file := range files {
		name := file.Name()
		if !strings.HasPrefix(name, "run_") || filepath.Ext(name) != ".json" {
			continue
		}

		id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "run_"), ".json"))
		if err != nil {
			continue
		}

		ids = append(ids, id)
	}

	sort.Ints(ids)
	return ids, nil
}
