package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSimplify(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "curve.csv")
	csv := "0,0\n1,0\n2,0.2\n3,0\n4,0\n5,0\n6,-0.3\n7,0\n8,0\n9,0\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))
	pngPath := filepath.Join(dir, "curve.png")

	command, err := app.Parse([]string{"simplify", input, "0.2", "0", "--quiet", "--png", pngPath})
	require.NoError(t, err)
	require.Equal(t, simplifyCmd.FullCommand(), command)
	require.NoError(t, runSimplify())

	output, err := os.ReadFile(input + "_out")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	assert.Equal(t, []string{
		"Line:    0.00,    0.00  --    2.00,    0.20",
		" Line:    2.00,    0.20  --    6.00,   -0.30",
		" Line:    6.00,   -0.30  --    9.00,    0.00",
	}, lines)

	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRunSimplify_BadConfigKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "curve.csv")
	require.NoError(t, os.WriteFile(input, []byte("0,0\n1,0.5\n2,0\n"), 0o644))
	previous := []byte(" Line:    0.00,    0.00  --    2.00,    0.00\n")
	require.NoError(t, os.WriteFile(input+"_out", previous, 0o644))
	cfgPath := filepath.Join(dir, "rdp.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"xml\"\n"), 0o644))

	t.Cleanup(func() { *configPath = "" })
	_, err := app.Parse([]string{"--config", cfgPath, "simplify", input, "0.2", "0", "--quiet"})
	require.NoError(t, err)
	assert.ErrorContains(t, runSimplify(), "xml")

	output, err := os.ReadFile(input + "_out")
	require.NoError(t, err)
	assert.Equal(t, previous, output)
}
