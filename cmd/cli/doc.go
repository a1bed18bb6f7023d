// Package cli constructs the pubready command-line interface, wiring the
// Cobra root command, configuration loader, and structured logging
// primitives. It exposes helpers to build reusable application instances and
// to execute the readiness report as a reusable library.
package cli
