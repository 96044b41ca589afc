package chromecapture

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ChromePathEnv names the environment variable consulted for the browser binary.
const ChromePathEnv = "CHROME_PATH"

// ResolveChromePath resolves the Chrome executable in order: explicitPath,
// the CHROME_PATH environment variable, then platform defaults (Chromium
// before Chrome). It returns "" when nothing is found.
func ResolveChromePath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	if envPath := os.Getenv(ChromePathEnv); envPath != "" {
		return envPath
	}
	for _, candidate := range systemCandidates() {
		if path := resolveExecutable(candidate); path != "" {
			return path
		}
	}
	return ""
}

func systemCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		}
	case "linux":
		return []string{
			"chromium",
			"chromium-browser",
			"google-chrome-stable",
			"google-chrome",
		}
	case "windows":
		var candidates []string
		for _, env := range []string{"PROGRAMFILES", "PROGRAMFILES(X86)", "LOCALAPPDATA"} {
			base := os.Getenv(env)
			if base == "" {
				continue
			}
			candidates = append(candidates,
				filepath.Join(base, "Chromium", "Application", "chrome.exe"),
				filepath.Join(base, "Google", "Chrome", "Application", "chrome.exe"),
			)
		}
		return candidates
	}
	return nil
}

// resolveExecutable returns nameOrPath if it is an existing absolute path,
// or its PATH lookup result if it is a bare command name.
func resolveExecutable(nameOrPath string) string {
	if filepath.IsAbs(nameOrPath) {
		if _, err := os.Stat(nameOrPath); err == nil {
			return nameOrPath
		}
		return ""
	}
	if path, err := exec.LookPath(nameOrPath); err == nil {
		return path
	}
	return ""
}
