package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	analyzeSubcommandNameConstant     = "analyze"
	formatSubcommandNameConstant      = "format"
	pubSubcommandNameConstant         = "pub"
	pubOutdatedSubcommandNameConstant = "outdated"
	pubAddSubcommandNameConstant      = "add"
	runSubcommandNameConstant         = "run"
)

const (
	analyzeStartTemplateConstant            = "Analyzing package sources in %s"
	analyzeSuccessTemplateConstant          = "Static analysis finished for %s"
	analyzeFailureTemplateConstant          = "Static analysis reported findings for %s (exit code %d%s)"
	analyzeExecutionFailureTemplateConstant = "Could not analyze %s: %s"

	formatStartTemplateConstant            = "Checking formatting in %s"
	formatSuccessTemplateConstant          = "Formatting check finished for %s"
	formatFailureTemplateConstant          = "Formatting check reported findings for %s (exit code %d%s)"
	formatExecutionFailureTemplateConstant = "Could not check formatting in %s: %s"

	pubOutdatedStartTemplateConstant            = "Listing outdated dependencies in %s"
	pubOutdatedSuccessTemplateConstant          = "Listed outdated dependencies in %s"
	pubOutdatedFailureTemplateConstant          = "Failed to list outdated dependencies in %s (exit code %d%s)"
	pubOutdatedExecutionFailureTemplateConstant = "Unable to list outdated dependencies in %s: %s"

	pubAddStartTemplateConstant            = "Adding dependency %s in %s"
	pubAddSuccessTemplateConstant          = "Added dependency %s in %s"
	pubAddFailureTemplateConstant          = "Failed to add dependency %s in %s (exit code %d%s)"
	pubAddExecutionFailureTemplateConstant = "Unable to add dependency %s in %s: %s"

	runStartTemplateConstant            = "Running %s in %s"
	runSuccessTemplateConstant          = "Completed %s in %s"
	runFailureTemplateConstant          = "%s reported findings in %s (exit code %d%s)"
	runExecutionFailureTemplateConstant = "Unable to run %s in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing a command that could not be started.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandDart, CommandFlutter:
		return formatter.describeToolchainMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeToolchainMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case analyzeSubcommandNameConstant:
		return formatter.describeAnalyzeMessage(command, result, failure, stage)
	case formatSubcommandNameConstant:
		return formatter.describeFormatMessage(command, result, failure, stage)
	case pubSubcommandNameConstant:
		return formatter.describePubMessage(command, result, failure, stage)
	case runSubcommandNameConstant:
		return formatter.describeRunMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeAnalyzeMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(analyzeStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(analyzeSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(analyzeFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(analyzeExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeFormatMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(formatStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(formatSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(formatFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(formatExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describePubMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	if len(arguments) < 2 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch strings.TrimSpace(arguments[1]) {
	case pubOutdatedSubcommandNameConstant:
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(pubOutdatedStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(pubOutdatedSuccessTemplateConstant, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(pubOutdatedFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(pubOutdatedExecutionFailureTemplateConstant, workingDirectory, formatter.describeFailure(failure))
		}
	case pubAddSubcommandNameConstant:
		dependencyName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(arguments[2:]))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(pubAddStartTemplateConstant, dependencyName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(pubAddSuccessTemplateConstant, dependencyName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(pubAddFailureTemplateConstant, dependencyName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		case messageStageExecutionFailure:
			return fmt.Sprintf(pubAddExecutionFailureTemplateConstant, dependencyName, workingDirectory, formatter.describeFailure(failure))
		}
	}

	return formatter.buildGenericMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeRunMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	executableName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(command.Details.Arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(runStartTemplateConstant, executableName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(runSuccessTemplateConstant, executableName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(runFailureTemplateConstant, executableName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(runExecutionFailureTemplateConstant, executableName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) extractFirstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}
