package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"blockly/internal/config"
	"blockly/pkg/color"
	"blockly/pkg/interpreter"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "blockly.yaml", "listen: \":9000\"\nframe_rate: 120\n")

	a := &App{ConfigFile: cfgFile, Listen: ":7000", Verbose: true}
	cfg, err := a.Config()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, 120, cfg.FrameRate)
	assert.True(t, cfg.Verbose)

	a = &App{}
	cfg, err = a.Config()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultListen, cfg.Listen)
}

func TestSetupAppliesConfigLogging(t *testing.T) {
	defer log.SetDefault(log.Default())
	defer color.EnableColor(color.IsColorEnabled())

	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "blockly.yaml", "verbose: true\nno_color: true\n")
	color.EnableColor(true)

	cfg, err := (&App{ConfigFile: cfgFile}).setup()
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.False(t, color.IsColorEnabled())

	_, err = (&App{}).setup()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func runProgram(t *testing.T, level, program string) (string, error) {
	t.Helper()
	defer color.EnableColor(color.IsColorEnabled())
	color.EnableColor(false)

	dir := t.TempDir()
	cfg := config.Default()
	cfg.FrameRate = 500
	cfg.Level = level

	var out bytes.Buffer
	a := &App{ProgramFile: writeFile(t, dir, "program.txt", program), Out: &out}

	rt, err := a.build(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go rt.world.Drive(ctx, cfg.FrameRate)

	err = a.runFile(ctx, rt)
	return out.String(), err
}

func TestRunFile(t *testing.T) {
	out, err := runProgram(t, "#####\n#S..#\n#####", `
		int schritte = 0;
		solange (!WandRechts()) {
		rechts();
		schritte = schritte + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "OK: hero at 3,1\nschritte = 2\n", out)
}

func TestRunFileFailure(t *testing.T) {
	out, err := runProgram(t, "", "int x = 1;\nfehlt();")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProgramFailed)
	assert.ErrorIs(t, err, interpreter.ErrUndefinedFunction)
	assert.Equal(t, "Anweisung: fehlt();\nFehlermeldung: Function fehlt is not defined\nx = 1\n", out)
}

func TestBuildRejectsBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Level = "###\n#.#\n###"

	_, err := (&App{}).build(cfg)
	assert.ErrorContains(t, err, "level")
}
