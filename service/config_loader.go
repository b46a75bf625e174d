package service

import (
	"github.com/ludo-technologies/halide/domain"
	"github.com/ludo-technologies/halide/internal/config"
)

// IodineConfigLoader implements domain.DetectionConfigLoader by delegating
// to internal/config's env/TOML/default merge.
type IodineConfigLoader struct{}

// NewIodineConfigLoader constructs an IodineConfigLoader.
func NewIodineConfigLoader() *IodineConfigLoader {
	return &IodineConfigLoader{}
}

// Load implements domain.DetectionConfigLoader.
func (l *IodineConfigLoader) Load(configPath string) (domain.IodineThresholds, error) {
	cfg, err := config.LoadIodineConfig(configPath)
	if err != nil {
		return domain.IodineThresholds{}, err
	}
	return domain.IodineThresholds{
		MinNodes:      cfg.MinNodes,
		MaxHoles:      cfg.MaxHoles,
		HoleMassLimit: cfg.HoleMassLimit,
		HolesAtLeast:  cfg.HolesPredicate == config.HolesPredicateAtLeast,
	}, nil
}
