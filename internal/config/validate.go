package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/gochess/internal/errors"
)

// Validate reports every invalid setting at once. The returned error
// wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Verbosity < 0 {
		result = multierror.Append(result, fmt.Errorf("verbosity %d is negative", c.Verbosity))
	}
	if c.OutputFile == nil {
		result = multierror.Append(result, fmt.Errorf("no output writer"))
	}
	if c.Game == nil || c.Search == nil || c.Output == nil {
		result = multierror.Append(result, fmt.Errorf("missing sub-configuration"))
		return invalid(result)
	}

	if c.Game.Mode < HumanVsHuman || c.Game.Mode > AIVsAI {
		result = multierror.Append(result, fmt.Errorf("unknown mode %d", c.Game.Mode))
	}
	if c.Game.MaxPlies < 0 {
		result = multierror.Append(result, fmt.Errorf("max plies %d is negative", c.Game.MaxPlies))
	}
	if c.Search.Depth < 1 || c.Search.Depth > MaxSearchDepth {
		result = multierror.Append(result, fmt.Errorf("depth %d outside 1..%d", c.Search.Depth, MaxSearchDepth))
	}
	if c.Search.Workers < 1 {
		result = multierror.Append(result, fmt.Errorf("workers %d must be at least 1", c.Search.Workers))
	}
	if c.Search.Evaluator != PositionalEval && c.Search.Evaluator != MaterialEval {
		result = multierror.Append(result, fmt.Errorf("unknown evaluator %d", c.Search.Evaluator))
	}

	if result.ErrorOrNil() != nil {
		return invalid(result)
	}
	return nil
}

func invalid(result *multierror.Error) error {
	return errors.Wrap(fmt.Errorf("%w: %v", errors.ErrInvalidConfig, result), "config")
}
