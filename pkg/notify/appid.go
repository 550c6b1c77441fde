package notify

import (
	"os"
	"path/filepath"
	"strings"
)

// appID returns the application identity tag to attach to a
// notification, or the empty string for unpackaged dev builds.
func appID(identifier string) string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return appIDFor(identifier, exe)
}

// appIDFor detects executables built and run in place rather than
// installed: anything under a go-build cache directory or a Temp
// directory. Matching whole path elements keeps directories that
// merely contain the markers, like Tempered, out of it.
func appIDFor(identifier, exe string) string {
	dir := filepath.Dir(exe)
	for _, elem := range strings.Split(dir, string(filepath.Separator)) {
		if elem == "Temp" || strings.HasPrefix(elem, "go-build") {
			return ""
		}
	}
	return identifier
}

// toastAppID picks the identity tag a toast is delivered under: the
// computed AppID for installed builds, falling back to the raw
// identifier so dev builds still render.
func toastAppID(req Request) string {
	if req.AppID != "" {
		return req.AppID
	}
	return req.Identifier
}
