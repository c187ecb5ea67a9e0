package upload

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// BuildKey maps an original filename plus caller naming options to the object
// key the file is stored under.
//
// Filename precedence: customFileName when non-empty, then originalFileName
// when preserveFilename is set, otherwise a freshly generated UUID carrying the
// original file's extension. The chosen name is sanitized for characters that
// are illegal in a file system name.
//
// The key is assembled as [prefix/][folder/]fileName with surrounding slashes
// trimmed from prefix and folder. The configured prefix is always the
// outermost segment — a caller-supplied folder can never escape above it.
// Nested folders ("a/b/c") are kept as-is after trimming.
func BuildKey(originalFileName, folder, customFileName string, preserveFilename bool, prefix string) string {
	fileName := resolveFileName(originalFileName, customFileName, preserveFilename)

	segments := make([]string, 0, 3)
	if p := strings.Trim(prefix, "/"); p != "" {
		segments = append(segments, p)
	}
	if f := strings.Trim(folder, "/"); f != "" {
		segments = append(segments, f)
	}
	segments = append(segments, fileName)

	return strings.Join(segments, "/")
}

func resolveFileName(original, custom string, preserve bool) string {
	if custom != "" {
		return sanitizeFileName(custom)
	}
	if preserve {
		if name := sanitizeFileName(original); name != "" {
			return name
		}
	}
	return uuid.NewString() + path.Ext(original)
}

// sanitizeFileName replaces every character that is not legal in a local file
// system name with an underscore.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
