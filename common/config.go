package common

// Entry point defaults. The entry point is resolved relative to the launcher
// directory, which becomes the working directory before the launch.
const DEFAULT_ENTRY_POINT = "main.py"
const DEFAULT_INTERPRETER = "python"

// Status line written to the standard output before the application starts
const STATUS_MESSAGE = "Starting the application and checking the environment..."

// Launcher exit codes, reported only when the child process never started.
// Once the child is running its own exit code is propagated instead.
const EXIT_PATH_RESOLUTION = 2
const EXIT_DIRECTORY_CHANGE = 3
const EXIT_LAUNCH = 4
