package main

import (
	"os"

	"github.com/loykin/demosync/internal/common"
)

// ExitHandler provides a testable way to handle program termination
type ExitHandler interface {
	Exit(code int)
	LogFatalError(err error, msg string, keyvals ...any)
}

// DefaultExitHandler logs through the current default logger and exits the process.
type DefaultExitHandler struct {
	exit func(int)
}

func NewDefaultExitHandler() *DefaultExitHandler {
	return &DefaultExitHandler{exit: os.Exit}
}

func (h *DefaultExitHandler) Exit(code int) {
	h.exit(code)
}

// LogFatalError logs err with keyvals and exits with status 1.
func (h *DefaultExitHandler) LogFatalError(err error, msg string, keyvals ...any) {
	logger := common.GetLogger().WithComponent("main")
	logger.Error(msg, append([]any{"error", err}, keyvals...)...)
	h.Exit(1)
}

var exitHandler ExitHandler = NewDefaultExitHandler()
