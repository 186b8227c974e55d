package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the database path from a .prep config file or the
// PREP_PATH environment variable, defaulting to ~/.prep.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.prep.db")
	viper.SetConfigName(".prep") // .yaml is implicit
	viper.SetEnvPrefix("PREP")
	viper.AutomaticEnv()

	if override := os.Getenv("PREP_CONFIG_PATH"); override != "" {
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

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
