package dbmetrics

import "context"

type executorContextKey struct{}

// WithExecutor кладёт активный executor (обычно транзакцию) в контекст
// Репозитории достают его через GetExecutor и выполняют запросы внутри транзакции
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorContextKey{}, executor)
}

// GetExecutor возвращает executor из контекста, если он там есть,
// иначе возвращает переданный по умолчанию
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorContextKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorContextKey{}).(DBExecutor)
	return ok
}
