// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "KFCA"
	configFileName = "kfca"

	keyConfig      = "config"
	keyPivot       = "pivot"
	keyMethod      = "method"
	keyWorkers     = "workers"
	keyMaxConcepts = "max-concepts"
	keyRankDir     = "rankdir"
	keyVerbose     = "verbose"
	keyNoColor     = "no-color"
	keyMetrics     = "metrics"
	keyDOT         = "dot"
	keySVG         = "svg"
	keyPNG         = "png"
)

// loadConfig layers flags over KFCA_* environment variables over an
// optional YAML file. An explicit --config path must exist; otherwise
// ./kfca.yaml is read when present.
func loadConfig(cmd *cobra.Command, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
