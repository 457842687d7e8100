package twist

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

// Config is a caller-facing convenience around the Filter contract: rather
// than hand-writing a Filter that inspects PermutationRef.Kind, a caller
// can load a YAML list of the kinds it wants and get a Filter back.
type Config struct {
	EnabledKinds []string `yaml:"enabled_kinds"`
}

// NewConfig reads a Config from a YAML file.
func NewConfig(filePath string) (*Config, error) {
	if !fileutil.FileExists(filePath) {
		return nil, fmt.Errorf("twist: config file %v does not exist", filePath)
	}
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Filter(); err != nil {
		gologger.Error().Msgf("twist: config %v names an unknown kind: %v", filePath, err)
	}
	return &cfg, nil
}

// GenerateSample writes a sample config enabling every kind except the
// reserved CertificateTransparency tag.
func GenerateSample(filePath string) error {
	cfg := Config{EnabledKinds: make([]string, 0, len(orderedKinds))}
	for _, k := range orderedKinds {
		cfg.EnabledKinds = append(cfg.EnabledKinds, k.String())
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// kindFilter accepts only candidates whose kind is in the enabled set.
type kindFilter struct {
	enabled map[PermutationKind]struct{}
}

func (f kindFilter) Accept(ref *PermutationRef) bool {
	_, ok := f.enabled[ref.Kind]
	return ok
}

// Filter builds a Filter that accepts only the kinds named in
// EnabledKinds. It errors if a name does not match any known kind.
func (c Config) Filter() (Filter, error) {
	enabled := make(map[PermutationKind]struct{}, len(c.EnabledKinds))
	for _, name := range c.EnabledKinds {
		found := false
		for _, k := range append(orderedKinds, CertificateTransparency) {
			if k.String() == name {
				enabled[k] = struct{}{}
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("twist: unknown permutation kind %q", name)
		}
	}
	return kindFilter{enabled: enabled}, nil
}
