package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// conf.Parse reads os.Args; the test binary's own flags must not leak in.
	oldArgs := os.Args
	os.Args = []string{"shopops"}
	t.Cleanup(func() { os.Args = oldArgs })

	require.NoError(t, os.WriteFile("config.yaml", []byte(body), 0o644))
}

func TestNewConfigYamlOverridesDefaults(t *testing.T) {
	writeConfig(t, `
server_port: ":9999"
db_username: "postgres"
db_password: "postgres"
db_host: "localhost"
db_port: "5432"
db_name: "shopops"
jwt_key: "secret"
timezone_offset_hours: 9
meal_allowance_amount: 75
ipintel_base_url: "https://intel.example.test"
ipintel_timeout_secs: 10
ipintel_cache_ttl_mins: 5
`)

	c, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", c.ServerPort)
	assert.Equal(t, 9, c.TimezoneOffsetHours)
	assert.Equal(t, 75, c.MealAllowanceAmount)
	assert.Equal(t, "https://intel.example.test", c.IPIntelBaseUrl)
	assert.Equal(t, 10, c.IPIntelTimeoutSecs)
	assert.Equal(t, 5, c.IPIntelCacheTTLMins)
}

func TestNewConfigDefaultsWhenYamlOmits(t *testing.T) {
	writeConfig(t, `
db_username: "postgres"
db_password: "postgres"
db_host: "localhost"
db_port: "5432"
db_name: "shopops"
jwt_key: "secret"
`)

	c, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.ServerPort)
	assert.Equal(t, 7, c.TimezoneOffsetHours)
	assert.Equal(t, 50, c.MealAllowanceAmount)
	assert.Equal(t, "https://ipinfo.io", c.IPIntelBaseUrl)
	assert.Equal(t, 3, c.IPIntelTimeoutSecs)
	assert.Equal(t, 60, c.IPIntelCacheTTLMins)
}

func TestNewConfigRejectsMissingDatabase(t *testing.T) {
	writeConfig(t, `
jwt_key: "secret"
`)

	_, err := NewConfig()
	require.Error(t, err)
}
