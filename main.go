package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"runtime/debug"

	"faunascan.dev/launcher/common"
	"faunascan.dev/launcher/internal/bootstrap"
	"faunascan.dev/launcher/internal/configloader"
	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "faunascan"

func main() {
	os.Exit(run())
}

func run() int {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
	flag.Parse()
	// Loading launcher configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("Failed to read build information")
	}
	logrus.Debug("Launching faunascan v.", bi.Main.Version)

	instance := bootstrap.NewBootstrap(configuration.EntryPoint, configuration.Interpreter)
	instance.StateChangedEventEmitter.Subscribe(func(state bootstrap.State) {
		logrus.Debug("Bootstrap state: ", state.String())
	})

	exitCode, err := instance.Run(context.Background())
	if err != nil {
		logrus.Errorf("%+v", err)
		return launcherExitCode(err)
	}
	return exitCode
}

// launcherExitCode maps a failed bootstrap step to the launcher exit status.
// These codes are only reachable while the child process is not running yet.
func launcherExitCode(err error) int {
	var pathResolutionError *bootstrap.PathResolutionError
	var directoryChangeError *bootstrap.DirectoryChangeError
	var launchError *bootstrap.LaunchError
	switch {
	case errors.As(err, &pathResolutionError):
		return common.EXIT_PATH_RESOLUTION
	case errors.As(err, &directoryChangeError):
		return common.EXIT_DIRECTORY_CHANGE
	case errors.As(err, &launchError):
		return common.EXIT_LAUNCH
	}
	return 1
}
