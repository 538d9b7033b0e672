// Package dbmetrics оборачивает *sql.DB для сбора метрик запросов и пула соединений.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/eklokale/RoomBookingService/pkg/metrics"
)

// DBExecutor минимальный интерфейс выполнения запросов.
// Реализуется и *sql.DB, и обёрткой *dbmetrics.DB.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// DB обёртка над *sql.DB с таймингом запросов
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
}

// Wrap создает обёртку без фонового сбора статистики пула
func Wrap(db *sql.DB, collector *metrics.Metrics) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault создает обёртку и запускает фоновый сбор статистики пула.
// Горутина останавливается при закрытии stopCh.
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

// QueryRowContext выполняет запрос одной строки с таймингом
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start)
	return row
}

// QueryContext выполняет запрос с таймингом
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start)
	return rows, err
}

// ExecContext выполняет запрос без результата с таймингом
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start)
	return res, err
}

func (d *DB) observe(operation string, start time.Time) {
	if d.collector == nil {
		return
	}
	d.collector.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// collectPoolStats периодически публикует состояние пула соединений
func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.collector.DBPoolOpen.Set(float64(stats.OpenConnections))
			d.collector.DBPoolIdle.Set(float64(stats.Idle))
			d.collector.DBPoolInUse.Set(float64(stats.InUse))
		}
	}
}
