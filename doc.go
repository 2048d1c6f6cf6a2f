/*
Package main implements the faunascan bootstrap launcher. The launcher prepares
the execution context of the faunascan application and delegates to its entry
point: it resolves the directory containing its own executable, moves the
process working directory there, announces the start on the standard output and
runs the application entry point as a single child process, exiting with the
child exit code.

The project has three main source packages:
`common`: Constants shared by every package.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications
*/
package main
