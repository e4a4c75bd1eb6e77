package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type storeConfig struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

func TestReadConfigMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "store.json5"),
		[]byte(`{country: "nl", language: "nl"}`),
		0600,
	)
	require.NoError(t, err)
	err = os.WriteFile(
		filepath.Join(dir, "store.local.json5"),
		[]byte(`{country: "gb"}`),
		0600,
	)
	require.NoError(t, err)

	config, err := ReadConfig[storeConfig](filepath.Join(dir, "store.json5"))
	require.NoError(t, err)
	require.Equal(t, "gb", config.Country)
	require.Equal(t, "nl", config.Language)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadConfig[storeConfig](filepath.Join(dir, "store.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "store.local.json5"),
		[]byte(`{country: "us", language: "en"}`),
		0600,
	)
	require.NoError(t, err)

	config, err := ReadConfig[storeConfig](filepath.Join(dir, "store.json5"))
	require.NoError(t, err)
	require.Equal(t, "us", config.Country)
	require.Equal(t, "en", config.Language)
}
