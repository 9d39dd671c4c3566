package lints

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config resolves effective lint levels: registry defaults, overridden
// by a global [lints] table, overridden again per scope. A scope is an
// opaque key the walker attaches to findings (usually a module path).
// Config is read-only after Load and safe for concurrent lookups.
type Config struct {
	global map[ID]Level
	scopes map[string]map[ID]Level
	// OverflowChecks promotes arithmetic_overflow findings to hard
	// errors regardless of lint level (build-mode flag).
	OverflowChecks bool
}

type rawConfig struct {
	Lints          map[string]string   `toml:"lints"`
	Scopes         map[string]rawScope `toml:"scope"`
	OverflowChecks bool                `toml:"overflow_checks"`
}

type rawScope struct {
	Lints map[string]string `toml:"lints"`
}

// DefaultConfig returns a Config with no overrides.
func DefaultConfig() *Config {
	return &Config{
		global: map[ID]Level{},
		scopes: map[string]map[ID]Level{},
	}
}

// LoadConfig reads lint levels from a TOML file:
//
//	overflow_checks = true
//
//	[lints]
//	unsafe_op_in_unsafe_fn = "deny"
//
//	[scope."core/ffi".lints]
//	ffi_unwind_call = "allow"
func LoadConfig(path string) (*Config, error) {
	var raw rawConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return buildConfig(raw)
}

// ParseConfig reads lint levels from TOML text, used by tests and
// virtual inputs.
func ParseConfig(text string) (*Config, error) {
	var raw rawConfig
	if _, err := toml.Decode(text, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return buildConfig(raw)
}

func buildConfig(raw rawConfig) (*Config, error) {
	cfg := DefaultConfig()
	cfg.OverflowChecks = raw.OverflowChecks

	for name, levelStr := range raw.Lints {
		id := ID(name)
		if _, ok := Get(id); !ok {
			return nil, fmt.Errorf("unknown lint %q", name)
		}
		level, err := ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("lint %q: %w", name, err)
		}
		cfg.global[id] = level
	}

	for scope, table := range raw.Scopes {
		for name, levelStr := range table.Lints {
			id := ID(name)
			if _, ok := Get(id); !ok {
				return nil, fmt.Errorf("scope %q: unknown lint %q", scope, name)
			}
			level, err := ParseLevel(levelStr)
			if err != nil {
				return nil, fmt.Errorf("scope %q, lint %q: %w", scope, name, err)
			}
			cfg.SetScopeLevel(scope, id, level)
		}
	}
	return cfg, nil
}

// Level returns the effective level for a lint within a scope.
func (c *Config) Level(id ID, scope string) Level {
	if byScope, ok := c.scopes[scope]; ok {
		if level, ok := byScope[id]; ok {
			return level
		}
	}
	if level, ok := c.global[id]; ok {
		return level
	}
	if l, ok := Get(id); ok {
		return l.DefaultLevel
	}
	return LevelAllow
}

// UnsafeOpInUnsafeFnAllowed reports whether the policy permits unsafe
// operations inside an unsafe function without an explicit block, for
// the given scope. This is the classifier's policy input.
func (c *Config) UnsafeOpInUnsafeFnAllowed(scope string) bool {
	return c.Level(UnsafeOpInUnsafeFn, scope) == LevelAllow
}

// SetScopeLevel records a per-scope override. Exposed for the driver,
// which translates walker-provided scope attributes into overrides.
func (c *Config) SetScopeLevel(scope string, id ID, level Level) {
	byScope, ok := c.scopes[scope]
	if !ok {
		byScope = map[ID]Level{}
		c.scopes[scope] = byScope
	}
	byScope[id] = level
}
