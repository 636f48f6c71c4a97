package core

import (
	"errors"

	"github.com/xh3b4sd/tracer"
)

var RejectedExecution = &tracer.Error{
	Kind: "rejectedExecution",
	Desc: "RejectedExecution is the error returned by Submit when work is handed to an executor after Shutdown has been requested. The rejected task is never executed. Callers racing an executor's shutdown should treat this error as an expected outcome and either drop the work or route it elsewhere.",
}

func IsRejectedExecution(err error) bool {
	return errors.Is(err, RejectedExecution)
}

var FlushInterrupted = &tracer.Error{
	Kind: "flushInterrupted",
	Desc: "FlushInterrupted is the error returned by Flush when the supplied context is cancelled before the barrier task has run. Tasks submitted before the Flush call may still execute afterwards.",
}

func IsFlushInterrupted(err error) bool {
	return errors.Is(err, FlushInterrupted)
}
