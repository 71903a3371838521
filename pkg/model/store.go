package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/promptmeter/promptmeter/pkg/encoding"
)

// Store is the document of Model Configs keyed by model identifier,
// persisted at Path. The format (JSON or YAML) is chosen by Path's
// extension: ".yaml"/".yml" round-trips through gopkg.in/yaml.v3, anything
// else (including no extension) uses encoding/json.
type Store struct {
	Path    string
	configs map[string]Config
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadStore reads the persisted Model Config document at path. A missing
// file is not an error: it yields an empty store ready to Put into.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Store{Path: path, configs: map[string]Config{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("model: reading store %s: %w", path, err)
	}
	configs := map[string]Config{}
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &configs); err != nil {
			return nil, fmt.Errorf("model: parsing store %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("model: parsing store %s: %w", path, err)
	}
	return &Store{Path: path, configs: configs}, nil
}

// Get returns the named model's config, validating that its encoding is one
// this process knows how to load.
func (s *Store) Get(modelID string) (Config, error) {
	cfg, ok := s.configs[modelID]
	if !ok {
		return Config{}, fmt.Errorf("model: %q not found in store %s", modelID, s.Path)
	}
	if _, err := encoding.Load(cfg.Encoding); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Put inserts or replaces a model's config in memory; call Save to persist.
func (s *Store) Put(modelID string, cfg Config) {
	if s.configs == nil {
		s.configs = make(map[string]Config)
	}
	s.configs[modelID] = cfg
}

// Models lists the known model identifiers in sorted order.
func (s *Store) Models() []string {
	names := make([]string, 0, len(s.configs))
	for k := range s.configs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Save writes the store back to Path, in the format its extension selects.
func (s *Store) Save() error {
	var data []byte
	var err error
	if isYAMLPath(s.Path) {
		data, err = yaml.Marshal(s.configs)
	} else {
		data, err = json.MarshalIndent(s.configs, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("model: encoding store: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("model: writing store %s: %w", s.Path, err)
	}
	return nil
}
