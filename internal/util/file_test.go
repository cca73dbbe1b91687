package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp")
	require.NoError(t, os.WriteFile(path, []byte("36999\n"), 0644))

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 36999, value)
}

func TestReadIntFromFile_Negative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp")
	require.NoError(t, os.WriteFile(path, []byte("  -1500 "), 0644))

	value, err := ReadIntFromFile(path)

	assert.NoError(t, err)
	assert.Equal(t, -1500, value)
}

func TestReadIntFromFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp")
	require.NoError(t, os.WriteFile(path, []byte(" \n"), 0644))

	_, err := ReadIntFromFile(path)

	assert.ErrorContains(t, err, "file is empty")
}

func TestReadIntFromFile_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp")
	require.NoError(t, os.WriteFile(path, []byte("hot"), 0644))

	_, err := ReadIntFromFile(path)

	assert.ErrorContains(t, err, "\"hot\"")
}

func TestReadIntFromFile_Missing(t *testing.T) {
	_, err := ReadIntFromFile(filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteIntToFileSynced(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "pwm")
	require.NoError(t, os.WriteFile(path, []byte("255"), 0644))

	// WHEN
	err := WriteIntToFileSynced(7, path)

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "7", string(data))
}

func TestWriteIntToFileSynced_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pwm")

	err := WriteIntToFileSynced(7, path)

	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "fanboi.toml")

	// WHEN
	err := WriteFileAtomic(path, []byte("minimumDuty = 50\n"))

	// THEN
	assert.NoError(t, err)
	text, err := ReadTextFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "minimumDuty = 50", text)
}

func TestFindFilesMatching(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	for _, name := range []string{"pwm2", "pwm1", "pwm1_enable"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("0"), 0644))
	}

	// WHEN
	result, err := FindFilesMatching(filepath.Join(dir, "pwm[0-9]"), filepath.Join(dir, "pwm1"))

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "pwm1"), filepath.Join(dir, "pwm2")}, result)
}

func TestExpandPath(t *testing.T) {
	result, err := ExpandPath("/sys/class/thermal/thermal_zone0/temp")

	assert.NoError(t, err)
	assert.Equal(t, "/sys/class/thermal/thermal_zone0/temp", result)
}
