package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/explorio/booking-service/pkg/metrics"
)

// DBExecutor интерфейс исполнителя запросов
// Реализуется *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс исполнителя запросов внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey struct{}

// WithExecutor кладет исполнитель (обычно транзакцию) в контекст
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor возвращает исполнитель из контекста, если он там есть,
// иначе переданный по умолчанию
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return executor
	}
	return def
}

// DB обёртка над *sql.DB, записывающая метрики длительности запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB для сбора метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый сбор метрик
// connection pool. Сбор останавливается закрытием stopCh.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBOpenConns.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
				m.DBIdleConns.WithLabelValues(dbName).Set(float64(stats.Idle))
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// ExecContext выполняет запрос без результата, записывая метрику длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start)
	return res, err
}

// QueryContext выполняет запрос с множественным результатом
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start)
	return rows, err
}

// QueryRowContext выполняет запрос с единственной строкой результата
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start)
	return row
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return d.db.BeginTx(ctx, opts)
}

func (d *DB) observe(query string, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.DBQueryDuration.
		WithLabelValues(queryOperation(query)).
		Observe(time.Since(start).Seconds())
}

// queryOperation извлекает тип операции (SELECT/INSERT/...) из текста запроса
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
