package main

import (
	"os"
	"path/filepath"
)

// detectStaticRoot picks the directory holding the chat front end's
// index.html. An explicit override always wins.
func detectStaticRoot(override string) string {
	if override != "" {
		return override
	}

	startDir, err := os.Getwd()
	if err != nil {
		return "."
	}

	candidates := []string{
		startDir,
		filepath.Dir(startDir),
		filepath.Dir(filepath.Dir(startDir)),
	}

	for _, dir := range candidates {
		if fileExists(filepath.Join(dir, "index.html")) {
			return dir
		}
	}

	return startDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
