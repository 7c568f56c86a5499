package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	orig := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, AudioBackendFS, cfg.AudioBackend)
	assert.Equal(t, "audio_files", cfg.AudioDir)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.InferenceEndpoint)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, []string{"app",
		"-a", ":9090",
		"-d", "postgres://u:p@localhost:5432/x",
		"-s", "topsecret",
		"-t", "48",
		"-k", "s3",
		"-b", "voices",
	})

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "postgres://u:p@localhost:5432/x", cfg.DatabaseDSN)
	assert.Equal(t, "topsecret", cfg.SecretKey)
	assert.Equal(t, 48*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, AudioBackendS3, cfg.AudioBackend)
	assert.Equal(t, "voices", cfg.S3Bucket)
}

func TestLoadConfig_UnknownFlagsIgnored(t *testing.T) {
	withArgs(t, []string{"app", "-z", "whatever", "-a", ":7070"})

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.EndpointAddr)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf-*.json")
	require.NoError(t, err)

	_, err = f.WriteString(`{
		"endpoint_addr": ":6060",
		"database_dsn": "postgres://json",
		"secret_key": "fromjson",
		"token_validity_duration": "12h",
		"inference_endpoint": "http://model:9000/",
		"tts_endpoint": "http://tts:9001/",
		"asr_endpoint": "http://asr:9002/",
		"audio_backend": "fs",
		"audio_dir": "blobs",
		"s3_root_user": "root",
		"s3_root_password": "pw",
		"s3_bucket": "b",
		"s3_region": "r",
		"s3_base_endpoint": "http://minio:9000/"
	}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	withArgs(t, []string{"app", "-c", f.Name()})

	cfg := LoadConfig()

	assert.Equal(t, ":6060", cfg.EndpointAddr)
	assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
	assert.Equal(t, "fromjson", cfg.SecretKey)
	assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, "blobs", cfg.AudioDir)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf-*.json")
	require.NoError(t, err)

	_, err = f.WriteString(`{"endpoint_addr": ":6060", "secret_key": "fromjson", "token_validity_duration": "12h"}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	withArgs(t, []string{"app", "-c", f.Name(), "-a", ":5050"})

	cfg := LoadConfig()

	assert.Equal(t, ":5050", cfg.EndpointAddr)
	assert.Equal(t, "fromjson", cfg.SecretKey)
}
