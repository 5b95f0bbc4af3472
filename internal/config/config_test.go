package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapshotd.cfg.json"), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"retroarch": { "host": "10.0.0.1", "port": 50000 },
		"db": { "host": "10.0.0.2", "port": "5433" }
	}`)

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, "10.0.0.1", viper.GetString("retroarch.host"))
	assert.Equal(t, 50000, viper.GetInt("retroarch.port"))
	assert.Equal(t, "10.0.0.2", viper.GetString("db.host"))
	assert.Equal(t, "5433", viper.GetString("db.port"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./snaplogs", viper.GetString("logsDir"))
	assert.Equal(t, "127.0.0.1", viper.GetString("retroarch.host"))
	assert.Equal(t, 55355, viper.GetInt("retroarch.port"))
	assert.Equal(t, 30, viper.GetInt("sampler.cadence"))
	assert.Equal(t, "firered-us-rev0", viper.GetString("sampler.layout"))
	assert.Equal(t, false, viper.GetBool("sampler.trackDexIds"))
	assert.Equal(t, "./game_state.json", viper.GetString("output.path"))
	assert.Equal(t, true, viper.GetBool("api.enabled"))
	assert.Equal(t, ":8077", viper.GetString("api.listen"))
	assert.Equal(t, "localhost", viper.GetString("db.host"))
	assert.Equal(t, "5432", viper.GetString("db.port"))
	assert.Equal(t, "postgres", viper.GetString("db.username"))
	assert.Equal(t, "firered", viper.GetString("db.database"))
	assert.Equal(t, true, viper.GetBool("influx.enabled"))
	assert.Equal(t, "snapshot-metrics", viper.GetString("influx.org"))
	assert.Equal(t, false, viper.GetBool("otel.enabled"))
	assert.Equal(t, "snapshotd", viper.GetString("otel.serviceName"))
	assert.Equal(t, "5s", viper.GetString("otel.batchTimeout"))
	assert.Equal(t, true, viper.GetBool("otel.insecure"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetRetroArchConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"retroarch": { "host": "emu.local", "port": 51000, "timeout": "1s" }
	}`)
	require.NoError(t, Load(dir))

	rc := GetRetroArchConfig()
	assert.Equal(t, "emu.local", rc.Host)
	assert.Equal(t, 51000, rc.Port)
	assert.Equal(t, time.Second, rc.Timeout)
}

func TestGetSamplerConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"sampler": { "cadence": 60, "trackDexIds": true }
	}`)
	require.NoError(t, Load(dir))

	sc := GetSamplerConfig()
	assert.Equal(t, 60, sc.Cadence)
	assert.Equal(t, "firered-us-rev0", sc.Layout)
	assert.Equal(t, true, sc.TrackDexIDs)
}

func TestGetOTelConfig_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"otel": {
			"enabled": true,
			"serviceName": "my-service",
			"batchTimeout": "30s",
			"endpoint": "localhost:4317",
			"insecure": false
		}
	}`)
	require.NoError(t, Load(dir))

	oc := GetOTelConfig()
	assert.Equal(t, true, oc.Enabled)
	assert.Equal(t, "my-service", oc.ServiceName)
	assert.Equal(t, 30*time.Second, oc.BatchTimeout)
	assert.Equal(t, "localhost:4317", oc.Endpoint)
	assert.Equal(t, false, oc.Insecure)
}

func TestGetString(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")
	assert.Equal(t, "testValue", GetString("testKey"))
}

func TestGetInt(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testInt", 42)
	assert.Equal(t, 42, GetInt("testInt"))
}

func TestGetBool(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testBool", true)
	assert.Equal(t, true, GetBool("testBool"))
}
