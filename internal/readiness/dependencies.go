package readiness

import (
	"context"

	"go.uber.org/zap"

	"github.com/pubready/pubready/internal/execshell"
)

// ToolchainExecutor exposes the subset of shell execution used by the readiness report.
type ToolchainExecutor interface {
	ExecuteDart(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecuteFlutter(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ResolveToolchainExecutor returns the provided executor or constructs a shell-backed default.
func ResolveToolchainExecutor(existing ToolchainExecutor, logger *zap.Logger, eventObserver execshell.CommandEventObserver) (ToolchainExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}
	if eventObserver != nil {
		shellExecutor.SetCommandEventObserver(eventObserver)
	}
	return shellExecutor, nil
}
