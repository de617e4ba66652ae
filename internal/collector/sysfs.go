package collector

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readSysfsString returns the trimmed contents of a pseudo-file.
func readSysfsString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}

func readSysfsInt(path string) (int64, error) {
	value, err := readSysfsString(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return n, nil
}

func readSysfsUint(path string) (uint64, error) {
	value, err := readSysfsString(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return n, nil
}

// readFirstSysfsInt tries each candidate in order and returns the first
// that exists. The returned path is the last one attempted so a failure
// names the fallback that was tried.
func readFirstSysfsInt(paths ...string) (int64, string, error) {
	var (
		path string
		err  error
	)
	for _, path = range paths {
		if _, statErr := os.Stat(path); statErr != nil {
			err = statErr
			continue
		}
		var n int64
		n, err = readSysfsInt(path)
		return n, path, err
	}
	return 0, path, err
}
