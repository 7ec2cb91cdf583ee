package dismiss_cancellation

type CancellationUseCase interface {
	Dismiss(token string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
