package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/trio/pkg/day"
)

// Config supplies the store's tunables.
type Config interface {
	BasePath() string
	OverflowOrder() day.Order
}

// LoadConfig reads .trio config (yaml implicit) from the working directory or
// TRIO_CONFIG_PATH, falling back to env vars and defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.trio")
	viper.SetDefault("overflow_order", "prepend")
	viper.SetConfigName(".trio") // .yaml is implicit
	viper.SetEnvPrefix("TRIO")
	viper.AutomaticEnv()

	if override := os.Getenv("TRIO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path:  path,
		Order: viper.GetString("overflow_order"),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Order string `json:"overflow_order"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) OverflowOrder() day.Order {
	return day.ParseOrder(f.Order)
}
