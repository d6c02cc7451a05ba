// Package weights persists the attack- and defend-role weight vectors
// between training runs.
package weights

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/rs/zerolog/log"
)

const (
	AttackFile = "reflex_attack.bin"
	DefendFile = "reflex_defend.bin"

	// initStdDev is the standard deviation of the Gaussian noise used to
	// initialize fresh weight vectors.
	initStdDev = 1e-2
)

// Store loads and saves the two named weight vectors under one directory.
type Store struct {
	dir string
	rng *rand.Rand
}

func NewStore(dir string, rng *rand.Rand) *Store {
	return &Store{dir: dir, rng: rng}
}

// Load returns the attack and defend weight vectors of length n. A missing
// file is a first run, not an error: the vector falls back to small Gaussian
// noise. A present-but-corrupt file is an error.
func (s *Store) Load(n int) (attack, defend *mat.VecDense, err error) {
	attack, err = s.loadOne(AttackFile, n)
	if err != nil {
		return nil, nil, err
	}
	defend, err = s.loadOne(DefendFile, n)
	if err != nil {
		return nil, nil, err
	}
	return attack, defend, nil
}

// Save writes both vectors, replacing any previous run's files.
func (s *Store) Save(attack, defend *mat.VecDense) error {
	if err := s.saveOne(AttackFile, attack); err != nil {
		return err
	}
	return s.saveOne(DefendFile, defend)
}

func (s *Store) loadOne(name string, n int) (*mat.VecDense, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Info().Str("file", path).Msg("no saved weights, initializing randomly")
		return s.random(n), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()

	var count uint32
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read weights header from %s: %w", path, err)
	}
	if int(count) != n {
		return nil, fmt.Errorf("weights file %s has %d values, want %d", path, count, n)
	}
	data := make([]float64, n)
	if err := binary.Read(f, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("failed to read weights from %s: %w", path, err)
	}
	return mat.NewVecDense(n, data), nil
}

func (s *Store) saveOne(name string, v *mat.VecDense) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create weights directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create weights file: %w", err)
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, uint32(v.Len())); err != nil {
		return fmt.Errorf("failed to write weights header to %s: %w", path, err)
	}
	if err := binary.Write(f, binary.LittleEndian, v.RawVector().Data); err != nil {
		return fmt.Errorf("failed to write weights to %s: %w", path, err)
	}
	return nil
}

func (s *Store) random(n int) *mat.VecDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = s.rng.NormFloat64() * initStdDev
	}
	return mat.NewVecDense(n, data)
}
