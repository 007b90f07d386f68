package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/stego"
	"lsbsteg/test"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd, a := newRootCommand()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	require.NoError(t, a.teardown())
	return stdout.String(), err
}

func writeSourceImage(t *testing.T, dir string, width, height int) string {
	t.Helper()
	path, err := imageio.Save(filepath.Join(dir, "source.png"), test.GenerateRandomImage(width, height), imageio.Options{})
	require.NoError(t, err)
	return path
}

func TestEmbedExtractPSNR(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceImage(t, dir, 40, 30)

	out, err := run(t, "", "embed", "--image", source, "--output", filepath.Join(dir, "stego.jpg"), "--message", "hello from the cli")
	require.NoError(t, err)
	stegoPath := filepath.Join(dir, "stego.jpg.png")
	assert.Contains(t, out, "Generated "+stegoPath)

	out, err = run(t, "", "extract", "--image", stegoPath)
	require.NoError(t, err)
	assert.Equal(t, "hello from the cli\n", out)

	out, err = run(t, "", "psnr", "--original", source, "--modified", stegoPath)
	require.NoError(t, err)
	assert.Contains(t, out, "PSNR: ")
	assert.Contains(t, out, "Verdict: excellent")

	out, err = run(t, "", "psnr", "--original", source, "--modified", source, "--json")
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "inf", report["psnr"])
	assert.Equal(t, "identical", report["verdict"])
}

func TestEmbedFromMessageFileAndStdin(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceImage(t, dir, 30, 30)
	messageFile := filepath.Join(dir, "message.txt")
	require.NoError(t, os.WriteFile(messageFile, []byte("línea uno\nline two"), 0o644))

	_, err := run(t, "", "embed", "--image", source, "--output", filepath.Join(dir, "from-file.bmp"), "--message-file", messageFile)
	require.NoError(t, err)
	extractedFile := filepath.Join(dir, "extracted.txt")
	_, err = run(t, "", "extract", "--image", filepath.Join(dir, "from-file.bmp"), "--output", extractedFile)
	require.NoError(t, err)
	extracted, err := os.ReadFile(extractedFile)
	require.NoError(t, err)
	assert.Equal(t, "línea uno\nline two", string(extracted))

	_, err = run(t, "piped secret", "embed", "--image", source, "--output", filepath.Join(dir, "from-stdin"), "--message-file", "-", "--format", "tiff")
	require.NoError(t, err)
	out, err := run(t, "", "extract", "--image", filepath.Join(dir, "from-stdin.tiff"))
	require.NoError(t, err)
	assert.Equal(t, "piped secret\n", out)
}

func TestEmbedErrors(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceImage(t, dir, 10, 10)

	_, err := run(t, "", "embed", "--image", source, "--output", filepath.Join(dir, "out.png"), "--message", strings.Repeat("x", 34))
	assert.ErrorIs(t, err, stego.ErrTooLarge)
	_, statErr := os.Stat(filepath.Join(dir, "out.png"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)

	_, err = run(t, "", "embed", "--image", source, "--output", filepath.Join(dir, "out.png"))
	assert.Error(t, err)

	_, err = run(t, "", "embed", "--image", source, "--output", filepath.Join(dir, "out"), "--message", "hi", "--format", "jpeg")
	assert.ErrorIs(t, err, imageio.ErrUnsupportedFormat)
}

func TestCapacityCommand(t *testing.T) {
	out, err := run(t, "", "capacity", "--image", writeSourceImage(t, t.TempDir(), 10, 10))
	require.NoError(t, err)
	assert.Contains(t, out, "300 bits")
	assert.Contains(t, out, "(33 bytes)")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "capacity", "--image", "whatever.png")
	assert.Error(t, err)
}

func TestProfilers(t *testing.T) {
	dir := t.TempDir()
	source := writeSourceImage(t, dir, 10, 10)
	cpuProfile := filepath.Join(dir, "cpu.prof")
	memProfileDir := filepath.Join(dir, "mem")

	err := Execute(context.Background(), []string{"--cpu-profile", cpuProfile, "--mem-profile-dir", memProfileDir, "capacity", "--image", source})
	require.NoError(t, err)

	assert.FileExists(t, cpuProfile)
	assert.FileExists(t, filepath.Join(memProfileDir, "mem-0.mprof"))
}
