package contextkeys

// ContextKey - тип ключей для context
type ContextKey string

const (
	// DBContextKey - ключ, под которым DBMiddleware кладет *gorm.DB
	// (пул или внешнюю транзакцию) в контекст запроса
	DBContextKey ContextKey = "db"
)
