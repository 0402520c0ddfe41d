package configuration

import (
	"os"
	"strings"

	"nexus-tube/infrastructure/logger"

	"github.com/spf13/viper"
)

// envFiles are read before the config is built; variables already set win
var envFiles = []string{"config.env", ".env"}

// LoadEnvFromFile exports the KEY=VALUE pairs of each readable dotenv file
// and returns how many variables it set. Keys are exported upper case.
func LoadEnvFromFile(paths ...string) int {
	set := 0
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		v := viper.New()
		v.SetConfigFile(p)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			logger.GetLogger().WithField("error", err).WithField("file", p).Warn("Skipping unreadable env file")
			continue
		}
		for _, key := range v.AllKeys() {
			name := strings.ToUpper(key)
			if _, exists := os.LookupEnv(name); exists {
				continue
			}
			if err := os.Setenv(name, v.GetString(key)); err == nil {
				set++
			}
		}
	}
	return set
}
