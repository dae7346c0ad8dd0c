package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/antekerwin/jeki/internal/domain"
	"gopkg.in/yaml.v3"
)

// RulesLoader implements domain.RulesLoader by reading a YAML rule table.
type RulesLoader struct{}

// NewRulesLoader creates a RulesLoader.
func NewRulesLoader() *RulesLoader { return &RulesLoader{} }

// Load reads the rule table at path and overlays it on DefaultRules. Keys the
// file leaves out keep their defaults; lists in the file replace the default
// list entirely. An empty path or a missing file yields DefaultRules.
func (l *RulesLoader) Load(path string) (domain.RuleTable, error) {
	if path == "" {
		return domain.DefaultRules(), nil
	}
	rules, err := l.LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultRules(), nil
	}
	return rules, err
}

// LoadFile is Load for a path the user named explicitly: the file must exist.
func (l *RulesLoader) LoadFile(path string) (domain.RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RuleTable{}, fmt.Errorf("reading %s: %w", path, err)
	}

	rules := domain.DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.RuleTable{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := rules.Validate(); err != nil {
		return domain.RuleTable{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return rules, nil
}

// MarshalRules renders a rule table as YAML in the format Load accepts.
func MarshalRules(rules domain.RuleTable) ([]byte, error) {
	return yaml.Marshal(rules)
}
