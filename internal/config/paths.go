package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment describes where a platform keeps per-user browser data.
type Environment struct {
	GOOS   string
	Home   string
	Getenv func(string) string
}

// CurrentEnvironment describes the running process.
func CurrentEnvironment() Environment {
	home, _ := os.UserHomeDir()
	return Environment{GOOS: runtime.GOOS, Home: home, Getenv: os.Getenv}
}

// DefaultPathPatterns returns glob patterns for the bookmark stores browsers
// keep on env.GOOS, in the order they should be processed.
func DefaultPathPatterns(env Environment) []string {
	getenv := env.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	switch env.GOOS {
	case "darwin":
		if env.Home == "" {
			return nil
		}
		support := filepath.Join(env.Home, "Library", "Application Support")
		return []string{
			filepath.Join(env.Home, "Library", "Safari", "Bookmarks.plist"),
			filepath.Join(support, "Firefox", "Profiles", "*", "places.sqlite"),
			filepath.Join(support, "Google", "Chrome", "*", "Bookmarks"),
			filepath.Join(support, "Chromium", "*", "Bookmarks"),
			filepath.Join(support, "Microsoft Edge", "*", "Bookmarks"),
		}
	case "windows":
		var patterns []string
		if appData := getenv("APPDATA"); appData != "" {
			patterns = append(patterns, filepath.Join(appData, "Mozilla", "Firefox", "Profiles", "*", "places.sqlite"))
		}
		if local := getenv("LOCALAPPDATA"); local != "" {
			patterns = append(patterns,
				filepath.Join(local, "Google", "Chrome", "User Data", "*", "Bookmarks"),
				filepath.Join(local, "Chromium", "User Data", "*", "Bookmarks"),
				filepath.Join(local, "Microsoft", "Edge", "User Data", "*", "Bookmarks"),
			)
		}
		profile := getenv("USERPROFILE")
		if profile == "" {
			profile = env.Home
		}
		if profile != "" {
			patterns = append(patterns, filepath.Join(profile, "Favorites"))
		}
		return patterns
	default:
		if env.Home == "" {
			return nil
		}
		configHome := getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			configHome = filepath.Join(env.Home, ".config")
		}
		return []string{
			filepath.Join(env.Home, ".mozilla", "firefox", "*", "places.sqlite"),
			filepath.Join(env.Home, "snap", "firefox", "common", ".mozilla", "firefox", "*", "places.sqlite"),
			filepath.Join(configHome, "google-chrome", "*", "Bookmarks"),
			filepath.Join(configHome, "chromium", "*", "Bookmarks"),
			filepath.Join(configHome, "microsoft-edge", "*", "Bookmarks"),
		}
	}
}

// DefaultPaths expands DefaultPathPatterns and keeps the paths that exist.
func DefaultPaths(env Environment) []string {
	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range DefaultPathPatterns(env) {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			if _, err := os.Stat(match); err != nil {
				continue
			}
			seen[match] = true
			paths = append(paths, match)
		}
	}

	return paths
}
