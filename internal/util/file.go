package util

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/atomic"
)

// ReadIntFromFile reads the whole file at path and parses its trimmed content as a signed integer.
func ReadIntFromFile(path string) (value int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	value, err = strconv.Atoi(text)
	if err != nil {
		return -1, fmt.Errorf("unable to parse %q from %s: %w", text, path, err)
	}
	return value, nil
}

// WriteIntToFileSynced writes a single integer as decimal text to path and
// syncs the file before returning.
func WriteIntToFileSynced(value int, path string) error {
	evaluatedPath, err := resolvePath(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err = file.WriteString(strconv.Itoa(value)); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteFileAtomic replaces the file at path with data, without ever exposing a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// ExpandPath resolves a leading "~" to the home directory of the current user.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

// FileExists reports whether something exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadTextFromFile returns the trimmed content of the file at path.
func ReadTextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// FindFilesMatching returns all files matching any of the given glob patterns, sorted and deduplicated.
func FindFilesMatching(patterns ...string) ([]string, error) {
	seen := map[string]bool{}
	var result []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			result = append(result, match)
		}
	}
	SortSlice(result)
	return result, nil
}

func resolvePath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
