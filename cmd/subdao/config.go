package subdao

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/subdao/types"
)

// InstantiateConfig is the file read by the init command.
//
//	owner: neutron1maindaocore
//	timelock_duration: 72h
//	subdao: neutron1subdaocore
type InstantiateConfig struct {
	Owner            string         `yaml:"owner" validate:"required"`
	TimelockDuration types.Duration `yaml:"timelock_duration"`
	Subdao           string         `yaml:"subdao" validate:"required"`
}

// LoadInstantiateConfig reads and validates the config file at path.
func LoadInstantiateConfig(path string) (*InstantiateConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg InstantiateConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// InstantiateMsg converts the config to the message the timelock is instantiated with.
func (c *InstantiateConfig) InstantiateMsg() (types.InstantiateMsg, error) {
	seconds, err := c.TimelockDuration.Seconds()
	if err != nil {
		return types.InstantiateMsg{}, fmt.Errorf("invalid timelock_duration: %w", err)
	}

	return types.InstantiateMsg{Owner: c.Owner, TimelockDuration: seconds}, nil
}

var errSenderRequired = errors.New("sender is required: set --sender or SUBDAO_SENDER")
