package bootstrap

import "fmt"

// PathResolutionError reports that the running environment cannot tell the
// launcher where its own executable lives
type PathResolutionError struct {
	Cause error
}

func (pathResolutionError *PathResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve the launcher directory: %v", pathResolutionError.Cause)
}

func (pathResolutionError *PathResolutionError) Unwrap() error {
	return pathResolutionError.Cause
}

// DirectoryChangeError reports that the launcher directory exists but cannot
// become the process working directory
type DirectoryChangeError struct {
	Path  string
	Cause error
}

func (directoryChangeError *DirectoryChangeError) Error() string {
	return fmt.Sprintf("cannot change the working directory to %s: %v", directoryChangeError.Path, directoryChangeError.Cause)
}

func (directoryChangeError *DirectoryChangeError) Unwrap() error {
	return directoryChangeError.Cause
}

// LaunchError reports that the application entry point could not be found or
// started. It is never returned once the child process is running.
type LaunchError struct {
	EntryPoint string
	Cause      error
}

func (launchError *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch the entry point %s: %v", launchError.EntryPoint, launchError.Cause)
}

func (launchError *LaunchError) Unwrap() error {
	return launchError.Cause
}
