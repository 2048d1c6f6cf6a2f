package configloader

import (
	"path/filepath"

	"faunascan.dev/launcher/common"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind launcher parameters
type Config struct {
	LogLevel    string `mapstructure:"LOG_LEVEL"`   // logrus library log level to be assigned
	EntryPoint  string `mapstructure:"ENTRY_POINT"` // application script started as the child process
	Interpreter string `mapstructure:"INTERPRETER"` // interpreter running the entry point, empty to execute it directly
}

// Initialize default parameters values. The defaults make the launcher work
// with no configuration file and no environment at all.
func initDefaultConfiguration() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ENTRY_POINT", common.DEFAULT_ENTRY_POINT)
	viper.SetDefault("INTERPRETER", common.DEFAULT_INTERPRETER)
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	initDefaultConfiguration()

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		viper.AddConfigPath(filepath.Join(root, "etc", applicationName))
		viper.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		viper.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	viper.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := viper.ReadInConfig(); configError != nil {
		logrus.Debug(configError.Error())
	}
	err = viper.Unmarshal(&config)

	return
}
