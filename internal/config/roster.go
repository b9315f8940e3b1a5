package config

import (
	"fmt"
	"os"

	"github.com/mhartmann/tellersim/internal/types"
	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk shape of a teller roster.
type rosterFile struct {
	Tellers []types.Teller `yaml:"tellers"`
}

// LoadRoster reads the teller roster from a YAML file. An empty path
// returns the built-in two-counter default. The roster defines the
// fixed set of valid teller IDs for record input.
func LoadRoster(path string) ([]types.Teller, error) {
	if path == "" {
		return types.DefaultRoster, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(file.Tellers) == 0 {
		return nil, fmt.Errorf("roster %s defines no tellers", path)
	}

	seen := make(map[types.TellerID]bool, len(file.Tellers))
	for _, teller := range file.Tellers {
		if teller.ID == "" {
			return nil, fmt.Errorf("roster %s contains a teller without an id", path)
		}
		if seen[teller.ID] {
			return nil, fmt.Errorf("roster %s duplicates teller %s", path, teller.ID)
		}
		seen[teller.ID] = true
	}

	return file.Tellers, nil
}
