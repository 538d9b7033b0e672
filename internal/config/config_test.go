package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 5
rate_limit_rps = 10.0
rate_limit_burst = 20

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "rooms"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/service.log"
level = "debug"

[metrics]
enabled = true
service_name = "room-booking"
path = "/metrics"

[user_service]
url = "http://localhost:8081"
timeout = 5

[booking]
max_daily_minutes = 180
default_slot_minutes = 45
single_room_per_day = true
timezone = "Europe/Copenhagen"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=booking password=secret dbname=rooms sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 180, cfg.Booking.MaxDailyMinutes)
	assert.Equal(t, 45, cfg.Booking.DefaultSlotMinutes)
	assert.True(t, cfg.Booking.SingleRoomPerDay)
	assert.Equal(t, "Europe/Copenhagen", cfg.Booking.Timezone)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[database]
host = "localhost"
dbname = "rooms"

[user_service]
url = "http://localhost:8081"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 240, cfg.Booking.MaxDailyMinutes)
	assert.Equal(t, 60, cfg.Booking.DefaultSlotMinutes)
	assert.Equal(t, "Europe/Copenhagen", cfg.Booking.Timezone)
}

func TestLoad_MissingDatabase(t *testing.T) {
	_, err := Load(writeConfig(t, `
[user_service]
url = "http://localhost:8081"
`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
