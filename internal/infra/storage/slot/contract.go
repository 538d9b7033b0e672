package slot

import "github.com/eklokale/RoomBookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics.
// Реализуется и *sql.DB, и обёрткой с метриками.
type DBExecutor = dbmetrics.DBExecutor
