package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable configurations.
const EnvPrefix = "TONADDR"

// FileName is the name of the config file, without extension.
const FileName = "tonaddr"

// EnvName returns the environment variable bound to a flag,
// e.g. --log-level is TONADDR_LOG_LEVEL.
func EnvName(flag string) string {
	return fmt.Sprintf("%s_%s", EnvPrefix, strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
}

// BindFlagSet glues cobra and viper together via FlagSets
func BindFlagSet(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindEnv(f.Name, EnvName(f.Name))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			_ = flags.Set(f.Name, fmt.Sprintf("%v", val))
		}
	})
}

// Load reads an optional tonaddr.yml from the given directories into v.
// A missing file is not an error.
func Load(v *viper.Viper, dirs ...string) error {
	v.SetConfigName(FileName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}
