package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "localhost:8080", cfg.Listen)
	assert.Equal(t, 60, cfg.FrameRate)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
listen: ":9000"
frame_rate: 30
max_call_depth: 64
verbose: true
level: |
  ####
  #S.#
  ####
`))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 64, cfg.MaxCallDepth)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)

	level, err := cfg.LevelText()
	require.NoError(t, err)
	assert.Equal(t, "####\n#S.#\n####\n", level)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown key", "port: 80", "field port not found"},
		{"frame rate", "frame_rate: -1", "frame_rate"},
		{"call depth", "max_call_depth: -2", "max_call_depth"},
		{"both levels", "level: \"#S#\"\nlevel_file: x.txt", "mutually exclusive"},
		{"bad type", "frame_rate: fast", "cannot unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadResolvesLevelFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.txt"), []byte("###\n#S#\n###\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blockly.yaml"), []byte("level_file: level.txt\n"), 0o644))

	cfg, err := Load(filepath.Join(dir, "blockly.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "level.txt"), cfg.LevelFile)

	level, err := cfg.LevelText()
	require.NoError(t, err)
	assert.Equal(t, "###\n#S#\n###\n", level)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load("")
	assert.Error(t, err)
}
