package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"faunascan.dev/launcher/common"
	"faunascan.dev/launcher/pkg/eventemitter"
	"github.com/sirupsen/logrus"
)

// Bootstrap prepares the execution context of the application and delegates to
// its entry point. The working directory is always set to the launcher
// directory before the child process starts, since the entry point resolves
// its own resources through relative paths.
type Bootstrap struct {
	// EntryPoint is the application script launched as the only child process,
	// resolved relative to the launcher directory
	EntryPoint string
	// Interpreter runs the entry point. An empty interpreter makes the entry
	// point be executed directly.
	Interpreter string
	// StatusWriter receives the single status line
	StatusWriter io.Writer
	// Executable reports the path of the running launcher executable
	Executable func() (string, error)

	state State

	// Event emitters
	StateChangedEventEmitter *eventemitter.EventEmitter[State]
}

func NewBootstrap(entryPoint string, interpreter string) (instance *Bootstrap) {
	instance = &Bootstrap{
		EntryPoint:               entryPoint,
		Interpreter:              interpreter,
		StatusWriter:             os.Stdout,
		Executable:               os.Executable,
		state:                    StateStarting,
		StateChangedEventEmitter: &eventemitter.EventEmitter[State]{},
	}
	return
}

// State returns the current bootstrap state
func (bootstrap *Bootstrap) State() State {
	return bootstrap.state
}

func (bootstrap *Bootstrap) setState(state State) {
	bootstrap.state = state
	bootstrap.StateChangedEventEmitter.Emit(state)
}

// ResolveSelfDirectory returns the absolute directory containing the launcher
// executable, with symbolic links resolved
func (bootstrap *Bootstrap) ResolveSelfDirectory() (directoryPath string, err error) {
	var executablePath string
	if executablePath, err = bootstrap.Executable(); err != nil {
		return "", &PathResolutionError{Cause: err}
	}
	if executablePath, err = filepath.EvalSymlinks(executablePath); err != nil {
		return "", &PathResolutionError{Cause: err}
	}
	if directoryPath, err = filepath.Abs(filepath.Dir(executablePath)); err != nil {
		return "", &PathResolutionError{Cause: err}
	}
	return
}

// SetWorkingDirectory moves the process working directory to directoryPath.
// The change is process-wide and lasts until the process exits.
func (bootstrap *Bootstrap) SetWorkingDirectory(directoryPath string) (err error) {
	if err = os.Chdir(directoryPath); err != nil {
		return &DirectoryChangeError{Path: directoryPath, Cause: err}
	}
	return
}

// ReportStatus writes the status line. Best effort: an unavailable output
// stream must not stop the launch.
func (bootstrap *Bootstrap) ReportStatus() {
	fmt.Fprintln(bootstrap.StatusWriter, common.STATUS_MESSAGE)
}

// LaunchAndWait starts the entry point as a child process with the current
// working directory as context and the launcher standard streams attached,
// then blocks until it terminates and returns its exit code. Failures before
// the child starts are launch errors; after a successful start only the child
// exit code is reported.
func (bootstrap *Bootstrap) LaunchAndWait(ctx context.Context) (exitCode int, err error) {
	if _, err = os.Stat(bootstrap.EntryPoint); err != nil {
		return 0, &LaunchError{EntryPoint: bootstrap.EntryPoint, Cause: err}
	}

	var command *exec.Cmd
	if bootstrap.Interpreter != "" {
		var interpreterPath string
		if interpreterPath, err = exec.LookPath(bootstrap.Interpreter); err != nil {
			return 0, &LaunchError{EntryPoint: bootstrap.EntryPoint, Cause: err}
		}
		command = exec.CommandContext(ctx, interpreterPath, bootstrap.EntryPoint)
	} else {
		var entryPointPath string
		if entryPointPath, err = filepath.Abs(bootstrap.EntryPoint); err != nil {
			return 0, &LaunchError{EntryPoint: bootstrap.EntryPoint, Cause: err}
		}
		command = exec.CommandContext(ctx, entryPointPath)
	}
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	if err = command.Start(); err != nil {
		return 0, &LaunchError{EntryPoint: bootstrap.EntryPoint, Cause: err}
	}
	bootstrap.setState(StateChildRunning)
	logrus.Debug("Waiting for the entry point ", bootstrap.EntryPoint)

	if err = command.Wait(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return exitError.ExitCode(), nil
		}
		return 0, &LaunchError{EntryPoint: bootstrap.EntryPoint, Cause: err}
	}
	return 0, nil
}

// Run walks the bootstrap steps in order: directory resolution, working
// directory change, status report, child launch. The first failing step moves
// the bootstrap to the failed state and aborts the remaining ones.
func (bootstrap *Bootstrap) Run(ctx context.Context) (exitCode int, err error) {
	bootstrap.setState(StateStarting)

	var directoryPath string
	if directoryPath, err = bootstrap.ResolveSelfDirectory(); err != nil {
		bootstrap.setState(StateFailed)
		return
	}
	bootstrap.setState(StateDirResolved)
	logrus.Debug("Launcher directory is ", directoryPath)

	if err = bootstrap.SetWorkingDirectory(directoryPath); err != nil {
		bootstrap.setState(StateFailed)
		return
	}
	bootstrap.setState(StateCwdSet)

	bootstrap.ReportStatus()
	bootstrap.setState(StateAnnounced)

	if exitCode, err = bootstrap.LaunchAndWait(ctx); err != nil {
		bootstrap.setState(StateFailed)
		return
	}
	bootstrap.setState(StateDone)
	return
}
