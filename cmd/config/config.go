package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/nbc/pkg/service"
)

var cfgFile string

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "nbc")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NBC")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "nbc"))
	viper.SetDefault("search_limit", 50)
	viper.SetDefault("debug", false)

	_ = viper.ReadInConfig()
}

func InitService() (*service.Service, error) {
	return service.New(&service.Config{
		DataDir:     viper.GetString("data_dir"),
		SearchLimit: viper.GetInt("search_limit"),
		Debug:       viper.GetBool("debug"),
	})
}

// RegisterFlags attaches the global config flag to the root command.
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/nbc/config.yaml)")
}
