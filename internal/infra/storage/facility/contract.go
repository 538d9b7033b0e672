package facility

import "github.com/eklokale/RoomBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
