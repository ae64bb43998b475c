package policy

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
)

//go:embed policies/*.json
var policiesFS embed.FS

// Loader loads the entity policies compiled into the binary
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadEntityPolicies loads all entity policies and rejects unknown actions or relations
func (l *Loader) LoadEntityPolicies() (map[string]*EntityPolicy, error) {
	policies := make(map[string]*EntityPolicy)

	entries, err := policiesFS.ReadDir("policies")
	if err != nil {
		return nil, fmt.Errorf("failed to read policies directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := policiesFS.ReadFile("policies/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read policy file %s: %w", entry.Name(), err)
		}

		var policy EntityPolicy
		if err := json.Unmarshal(data, &policy); err != nil {
			return nil, fmt.Errorf("failed to parse policy file %s: %w", entry.Name(), err)
		}
		if err := checkPolicy(&policy); err != nil {
			return nil, fmt.Errorf("invalid policy file %s: %w", entry.Name(), err)
		}

		policies[policy.Entity] = &policy
	}

	return policies, nil
}

func checkPolicy(p *EntityPolicy) error {
	if p.Entity == "" {
		return fmt.Errorf("entity is required")
	}
	for action, relations := range p.Actions {
		switch action {
		case ActionRead, ActionWrite, ActionDelete, ActionCreate:
		default:
			return fmt.Errorf("unknown action %q", action)
		}
		if len(relations) == 0 {
			return fmt.Errorf("action %q grants nobody", action)
		}
		for _, rel := range relations {
			if _, ok := relationChecks[rel]; !ok {
				return fmt.Errorf("unknown relation %q for action %q", rel, action)
			}
		}
	}
	return nil
}
