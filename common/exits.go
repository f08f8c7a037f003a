package common

const (
	EXIT_SUCCESS        = 0
	EXIT_COMMON_FAILURE = 1
	EXIT_INVALID_ARGS   = 2

	// ops
	EXIT_OPERATION_FAILED   = 5
	EXIT_OPERATION_CANCELED = 6

	// reports io
	EXIT_REPORT_WRITE_FAILURE = 10

	// configuration
	EXIT_CONFIGURATION_LOAD_FAILURE = 20

	EXIT_STATE_LOAD_FAILURE = 30

	EXIT_UNHANDLED_ERROR = 100
)

type PanicStatus struct {
	ExitCode int
	Error    error
	Message  string
}
