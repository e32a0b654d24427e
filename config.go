package keyset

import (
	"fmt"

	"github.com/npillmayer/keyset/bplus"
	"github.com/npillmayer/schuko"
)

// ConfigKeyOrder is the configuration key for the fanout order of sets.
const ConfigKeyOrder = "keyset.order"

// DefaultOrder is the fanout order used if none is configured.
const DefaultOrder = 4

// Config holds the parameters of a Set.
type Config struct {
	Order int // fanout order of the B+ tree, at least bplus.MinOrder
}

// DefaultConfig returns a configuration with DefaultOrder.
func DefaultConfig() Config {
	return Config{Order: DefaultOrder}
}

// ConfigFrom reads a set configuration from an application configuration.
// Keys not set in conf keep their default values.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	if conf == nil {
		return Config{}, ErrNoConfig
	}
	cfg := DefaultConfig()
	if conf.IsSet(ConfigKeyOrder) {
		cfg.Order = conf.GetInt(ConfigKeyOrder)
	}
	T().P("config", ConfigKeyOrder).Debugf("set order is %d", cfg.Order)
	return cfg, cfg.Validate()
}

// Validate checks the configuration. The error returned for an invalid
// order matches both ErrIllegalArguments and bplus.ErrInvalidOrder.
func (cfg Config) Validate() error {
	if err := bplus.ValidateOrder(cfg.Order); err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalArguments, err)
	}
	return nil
}
