package port

// Fields - структурированные данные для записи в лог.
type Fields map[string]interface{}

// LoggerPort абстрагирует ядро от конкретной реализации логгера.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	// Error записывает ошибку вместе с объектом error.
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields возвращает логгер с добавленным контекстом (use_case, component, trace_id).
	WithFields(fields Fields) LoggerPort
}
