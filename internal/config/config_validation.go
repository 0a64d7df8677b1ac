package config

import (
	"fmt"
	"strings"

	gladeerrors "github.com/alexisbeaulieu97/glade/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire gallery.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return gladeerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	pageIndex := make(map[string]int, len(cfg.Pages))
	for i, page := range cfg.Pages {
		if _, exists := pageIndex[page.ID]; exists {
			return gladeerrors.NewValidationError(fieldForPage(i, "id"), fmt.Sprintf("duplicate page id %q", page.ID), nil)
		}
		pageIndex[page.ID] = i

		seen := make(map[string]struct{}, len(page.Components))
		for j, inst := range page.Components {
			if _, exists := seen[inst.ID]; exists {
				return gladeerrors.NewValidationError(fieldForComponent(i, j, "id"), fmt.Sprintf("duplicate component id %q", inst.ID), nil)
			}
			seen[inst.ID] = struct{}{}
		}
	}

	if cycle := detectCycle(cfg.Theme); len(cycle) > 0 {
		return gladeerrors.NewValidationError("theme", fmt.Sprintf("variable reference cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}
