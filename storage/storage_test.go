package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/cfg/softfilter", 0755))
	return New(fs, "/cfg/softfilter"), fs
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 1, config.Version)
	assert.Equal(t, "super2xsai", config.Video.Filter)
	assert.Equal(t, "xrgb8888", config.Video.Format)
	assert.Equal(t, 1, config.Video.Threads)
	assert.Equal(t, 1024, config.Window.Width)
	assert.Equal(t, 768, config.Window.Height)
	assert.Nil(t, config.Window.X)
}

func TestLoadConfig_Missing(t *testing.T) {
	s, _ := newTestStore(t)

	config, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestSaveLoadConfig(t *testing.T) {
	s, fs := newTestStore(t)

	x := 40
	config := DefaultConfig()
	config.Video.Filter = "supereagle"
	config.Video.Format = "rgb565"
	config.Video.Threads = 4
	config.Window.X = &x
	require.NoError(t, s.SaveConfig(config))

	exists, err := afero.Exists(fs, "/cfg/softfilter/config.json")
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestAtomicWriteJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/data/test.json"
	require.NoError(t, fs.MkdirAll("/data", 0755))

	data := struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}{Name: "test", Value: 42}

	require.NoError(t, AtomicWriteJSON(fs, path, data))

	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	require.NoError(t, ReadJSON(fs, path, &result))
	assert.Equal(t, data.Name, result.Name)
	assert.Equal(t, data.Value, result.Value)

	exists, err := afero.Exists(fs, path+".tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file was not cleaned up")
}

func TestLoadConfig_Corrupt(t *testing.T) {
	s, fs := newTestStore(t)
	require.NoError(t, afero.WriteFile(fs, s.ConfigPath(), []byte("{not json"), 0644))

	_, err := s.LoadConfig()
	assert.ErrorIs(t, err, ErrCorruptConfig)
}

func TestConfigMigration(t *testing.T) {
	s, fs := newTestStore(t)
	old := `{"video":{"filter":"hq4x","format":"yuv","threads":-2}}`
	require.NoError(t, afero.WriteFile(fs, s.ConfigPath(), []byte(old), 0644))

	config, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1, config.Version)
	assert.Equal(t, "super2xsai", config.Video.Filter)
	assert.Equal(t, "xrgb8888", config.Video.Format)
	assert.Equal(t, 1, config.Video.Threads)
	assert.Equal(t, 1024, config.Window.Width)
	assert.Equal(t, 768, config.Window.Height)
}

func TestConfigMigration_KeepsValidValues(t *testing.T) {
	s, fs := newTestStore(t)
	cfg := `{"version":1,"video":{"filter":"SuperEagle","format":"565","threads":3},"window":{"width":640,"height":480}}`
	require.NoError(t, afero.WriteFile(fs, s.ConfigPath(), []byte(cfg), 0644))

	config, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "SuperEagle", config.Video.Filter)
	assert.Equal(t, "565", config.Video.Format)
	assert.Equal(t, 3, config.Video.Threads)
	assert.Equal(t, 640, config.Window.Width)
}

func TestCreateAndDeleteConfig(t *testing.T) {
	s, fs := newTestStore(t)

	require.NoError(t, s.CreateConfigIfMissing())
	exists, _ := afero.Exists(fs, s.ConfigPath())
	assert.True(t, exists)

	// Existing file is left alone.
	require.NoError(t, afero.WriteFile(fs, s.ConfigPath(), []byte(`{"version":1,"video":{"filter":"epx"}}`), 0644))
	require.NoError(t, s.CreateConfigIfMissing())
	config, err := s.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "epx", config.Video.Filter)

	require.NoError(t, s.DeleteConfig())
	require.NoError(t, s.DeleteConfig())
	exists, _ = afero.Exists(fs, s.ConfigPath())
	assert.False(t, exists)
}

func TestLoadConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0755))
	require.NoError(t, afero.WriteFile(fs, "/tmp/view.json", []byte(`{"video":{"filter":"scale3x"}}`), 0644))

	config, err := LoadConfigFile(fs, "/tmp/view.json")
	require.NoError(t, err)
	assert.Equal(t, "scale3x", config.Video.Filter)
	assert.Equal(t, "xrgb8888", config.Video.Format)

	_, err = LoadConfigFile(fs, "/tmp/missing.json")
	assert.Error(t, err)
}
