// Package readiness audits a Dart or Flutter package directory for
// publishing-readiness signals.
//
// It exposes CommandBuilder for wiring the pubready Cobra command, Service for
// driving the report programmatically, pure parsers over toolchain output, and
// supporting abstractions for the toolchain executor collaborator.
package readiness
