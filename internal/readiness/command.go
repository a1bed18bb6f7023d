package readiness

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pubready/pubready/internal/execshell"
	"github.com/pubready/pubready/internal/ui"
	"github.com/pubready/pubready/internal/utils"
	pathutils "github.com/pubready/pubready/internal/utils/path"
)

const (
	commandUseConstant              = "pubready <package-directory>"
	commandShortDescriptionConstant = "Audit a Dart or Flutter package for publishing readiness"
	commandLongDescriptionConstant  = "pubready inspects a package directory for documentation, analyzer and formatter cleanliness, dependency freshness, and platform support, then prints a human-readable report."
	usageMessageConstant            = "usage: pubready <package-directory>"
	expectedArgumentCountConstant   = 1
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the readiness cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ToolchainExecutor            ToolchainExecutor
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	CommandEventsObserver        execshell.CommandEventObserver
}

// Build constructs the cobra command driving the readiness report.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  builder.validateArguments,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) validateArguments(command *cobra.Command, arguments []string) error {
	if len(arguments) != expectedArgumentCountConstant {
		return errors.New(usageMessageConstant)
	}
	return nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	packageDirectory := pathutils.NewPackagePathSanitizer().Sanitize(arguments[0])
	if len(packageDirectory) == 0 {
		return errors.New(usageMessageConstant)
	}

	logger := builder.resolveLogger()
	eventObserver := builder.CommandEventsObserver
	if eventObserver == nil && builder.humanReadableLoggingEnabled() {
		eventObserver = ui.NewConsoleCommandEventLogger(logger)
	}
	executor, executorError := ResolveToolchainExecutor(builder.ToolchainExecutor, logger, eventObserver)
	if executorError != nil {
		return executorError
	}

	service := NewService(
		executor,
		builder.resolveConfiguration().ReportConfiguration(),
		utils.NewFlushingWriter(command.OutOrStdout()),
		command.ErrOrStderr(),
	)
	return service.Run(command.Context(), CommandOptions{PackageDirectory: packageDirectory})
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}
