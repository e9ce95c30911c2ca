// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command capture runs every callable once through its invocation modes
// and prints what each one produced.
package main

import (
	"os"

	"github.com/spf13/pflag"

	"code.hybscloud.com/capture/internal/config"
	"code.hybscloud.com/capture/internal/demo"
	"code.hybscloud.com/capture/internal/logging"
)

func main() {
	flags := pflag.NewFlagSet("capture", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "TOML scenario file overriding the default inputs")
	calls := flags.IntP("calls", "n", 0, "number of Counter mutate-calls (overrides the scenario)")
	level := flags.String("log-level", "", "log level: trace, debug, info, warn, error, off")
	_ = flags.Parse(os.Args[1:])

	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	logging.ApplyEnv(&logCfg, os.Getenv)
	var levelErr error
	if flags.Changed("log-level") {
		levelErr = logCfg.SetLevel(*level)
	}
	logger := logCfg.Logger(os.Stderr, "capture")
	if levelErr != nil {
		logger.Fatal().Err(levelErr).Msg("parse --log-level")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("load config")
		}
		cfg = loaded
	}
	if flags.Changed("calls") {
		cfg.Calls = *calls
	}

	if _, err := demo.Run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("run scenario")
	}
}
