package tray

import "github.com/spf13/afero"

// Icon is a tray icon. The closed set of variants is FileIcon and
// RawIcon: Linux backends take a file path, Windows and macOS
// backends take raw image bytes.
type Icon interface {
	isIcon()
}

// FileIcon is a path-backed icon. Required on Linux, rejected
// elsewhere.
type FileIcon struct {
	Path string
}

func (FileIcon) isIcon() {}

// RawIcon is a bytes-backed icon. Required on Windows and macOS,
// rejected on Linux.
type RawIcon struct {
	Data []byte
}

func (RawIcon) isIcon() {}

// CheckIcon validates an icon variant against a platform, named by
// its GOOS value. Backends call this before touching the native
// layer.
func CheckIcon(icon Icon, goos string) error {
	switch icon.(type) {
	case FileIcon:
		if goos != "linux" {
			return &UnsupportedError{Feature: "file-backed tray icon", Platform: goos}
		}
	case RawIcon:
		if goos == "linux" {
			return &UnsupportedError{Feature: "bytes-backed tray icon", Platform: goos}
		}
	}
	return nil
}

// ReadIcon loads a file-backed icon's bytes through fs.
func ReadIcon(fs afero.Fs, path string) (RawIcon, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return RawIcon{}, err
	}
	return RawIcon{Data: data}, nil
}

// NativeImage names a system-provided image usable on macOS menu
// items.
type NativeImage string

const (
	NativeImageStatusAvailable          NativeImage = "NSImageNameStatusAvailable"
	NativeImageStatusUnavailable        NativeImage = "NSImageNameStatusUnavailable"
	NativeImageStatusPartiallyAvailable NativeImage = "NSImageNameStatusPartiallyAvailable"
	NativeImageStatusNone               NativeImage = "NSImageNameStatusNone"
	NativeImageRefresh                  NativeImage = "NSImageNameRefreshTemplate"
	NativeImageStopProgress             NativeImage = "NSImageNameStopProgressTemplate"
)
