package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Nested groups resolve
// through their envPrefix tags, so Storage.Files.EvidenceDir is read from
// STORAGE_FILES_EVIDENCE_DIR and comma separated values become slices.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing env configs: %w", err)
	}
	return nil
}
