// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config holds the inputs the capture driver feeds each callable.
package config

import (
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/iotaledger/hive.go/ierrors"

	"code.hybscloud.com/capture"
)

// ErrInvalid is returned for a scenario the driver cannot run.
var ErrInvalid = ierrors.New("invalid scenario config")

// Scenario is the set of captured values and call-time arguments.
type Scenario struct {
	Message  string
	Name     string
	Argument string
	Counter  uint32
	Delta    uint32
	Calls    int
	Values   []uint32
}

// Default returns the canonical scenario.
func Default() Scenario {
	return Scenario{
		Message:  "Hi",
		Name:     "Binboy",
		Argument: "You are awesome!",
		Counter:  0,
		Delta:    2,
		Calls:    3,
		Values:   []uint32{0, 1, 2, 3, 4, 5},
	}
}

type fileConfig struct {
	Message  string   `toml:"message"`
	Name     string   `toml:"name"`
	Argument string   `toml:"argument"`
	Counter  uint32   `toml:"counter"`
	Delta    uint32   `toml:"delta"`
	Calls    int      `toml:"calls"`
	Values   []uint32 `toml:"values"`
}

// Load reads a TOML file and overrides Default with the keys it defines.
func Load(path string) (Scenario, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Scenario{}, ierrors.Wrapf(err, "load scenario %s", path)
	}
	return apply(Default(), raw, meta)
}

// Parse is Load for in-memory TOML.
func Parse(data string) (Scenario, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Scenario{}, ierrors.Wrap(err, "parse scenario")
	}
	return apply(Default(), raw, meta)
}

func apply(cfg Scenario, raw fileConfig, meta toml.MetaData) (Scenario, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Scenario{}, ierrors.Wrapf(ErrInvalid, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if meta.IsDefined("message") {
		cfg.Message = raw.Message
	}
	if meta.IsDefined("name") {
		cfg.Name = raw.Name
	}
	if meta.IsDefined("argument") {
		cfg.Argument = raw.Argument
	}
	if meta.IsDefined("counter") {
		cfg.Counter = raw.Counter
	}
	if meta.IsDefined("delta") {
		cfg.Delta = raw.Delta
	}
	if meta.IsDefined("calls") {
		cfg.Calls = raw.Calls
	}
	if meta.IsDefined("values") {
		cfg.Values = raw.Values
	}
	if err := Validate(cfg); err != nil {
		return Scenario{}, err
	}
	return cfg, nil
}

// Validate rejects scenarios the driver cannot run.
func Validate(cfg Scenario) error {
	if cfg.Calls < 1 {
		return ierrors.Wrapf(ErrInvalid, "calls must be at least 1, got %d", cfg.Calls)
	}
	if final := uint64(cfg.Counter) + uint64(cfg.Delta)*uint64(cfg.Calls); final > math.MaxUint32 {
		return ierrors.Wrapf(ErrInvalid, "counter would reach %d after %d calls, above uint32", final, cfg.Calls)
	}
	var sum uint64
	for _, v := range cfg.Values {
		if sum += capture.DoubleFactor * uint64(v); sum > math.MaxUint32 {
			return ierrors.Wrap(ErrInvalid, "doubled sum of values exceeds uint32")
		}
	}
	return nil
}
