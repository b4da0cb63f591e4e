package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store loads the game data files from a directory. The files are exported
// straight from the game's data dumps:
//
//	tags.json        - map of tag id to record
//	compatibility.json - nested map of pairwise values
//	genre_pairs.json - nested map of C#-tuple bonuses (Item1=com, Item2=art)
//	starter_whitelist.json - array of tag ids a starter studio owns
type Store struct {
	dataDir string
}

// NewStore creates a store rooted at the given data directory.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

type tagRecord struct {
	Name     string             `json:"name"`
	Category Category           `json:"category"`
	Art      float64            `json:"art"`
	Com      float64            `json:"com"`
	Weights  map[string]float64 `json:"weights"`
}

type pairRecord struct {
	Item1 float64 `json:"Item1"`
	Item2 float64 `json:"Item2"`
}

// LoadCatalog reads and validates tags.json plus the starter whitelist.
// The whitelist file is optional; a missing file means no starter profile.
func (s *Store) LoadCatalog() (*Catalog, error) {
	var raw map[string]tagRecord
	if err := s.readJSON("tags.json", &raw); err != nil {
		return nil, err
	}

	tags := make([]Tag, 0, len(raw))
	for id, rec := range raw {
		if !rec.Category.Valid() {
			return nil, fmt.Errorf("tag %s: unknown category %q", id, rec.Category)
		}
		tags = append(tags, Tag{
			ID:       id,
			Name:     rec.Name,
			Category: rec.Category,
			Art:      rec.Art,
			Com:      rec.Com,
			Weights:  rec.Weights,
		})
	}

	var whitelist []string
	if err := s.readJSON("starter_whitelist.json", &whitelist); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		whitelist = nil
	}

	return New(tags, whitelist), nil
}

// LoadMatrix reads compatibility.json.
func (s *Store) LoadMatrix() (*Matrix, error) {
	var raw map[string]map[string]float64
	if err := s.readJSON("compatibility.json", &raw); err != nil {
		return nil, err
	}
	return NewMatrix(raw), nil
}

// LoadGenrePairs reads genre_pairs.json.
func (s *Store) LoadGenrePairs() (*GenrePairs, error) {
	var raw map[string]map[string]pairRecord
	if err := s.readJSON("genre_pairs.json", &raw); err != nil {
		return nil, err
	}
	pairs := make(map[string]map[string]PairBonus, len(raw))
	for a, row := range raw {
		pairs[a] = make(map[string]PairBonus, len(row))
		for b, rec := range row {
			pairs[a][b] = PairBonus{Com: rec.Item1, Art: rec.Item2}
		}
	}
	return NewGenrePairs(pairs), nil
}

// LoadAll loads the catalog, matrix and genre pair table together.
func (s *Store) LoadAll() (*Catalog, *Matrix, *GenrePairs, error) {
	cat, err := s.LoadCatalog()
	if err != nil {
		return nil, nil, nil, err
	}
	matrix, err := s.LoadMatrix()
	if err != nil {
		return nil, nil, nil, err
	}
	pairs, err := s.LoadGenrePairs()
	if err != nil {
		return nil, nil, nil, err
	}
	return cat, matrix, pairs, nil
}

func (s *Store) readJSON(name string, v interface{}) error {
	path := filepath.Join(s.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
