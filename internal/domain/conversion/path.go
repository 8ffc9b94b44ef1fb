package conversion

import (
	"errors"
	"path"
	"strings"
)

// OutputExt is the extension of every produced drawing.
const OutputExt = ".dxf"

// OutputFileName builds the artifact name for a job. The requested name is a
// user-supplied hint; the job id fragment keeps concurrent conversions of
// the same input from colliding.
func OutputFileName(requested, jobID string) string {
	base := sanitizeBaseName(requested)
	if base == "" {
		base = "conversion"
	}
	suffix := jobID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return base + "-" + suffix + OutputExt
}

func sanitizeBaseName(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.ReplaceAll(value, "\\", "/")
	value = path.Base(value)
	value = strings.TrimSuffix(value, path.Ext(value))

	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// NormalizeDownloadName validates a requested artifact file name. Only plain
// DXF file names are served; anything path-like is rejected.
func NormalizeDownloadName(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.New("invalid file name")
	}

	value = strings.ReplaceAll(value, "\\", "/")
	cleaned := path.Clean("/" + value)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(cleaned, "/") {
		return "", errors.New("invalid file name")
	}

	if !strings.EqualFold(path.Ext(cleaned), OutputExt) {
		return "", errors.New("unsupported file type")
	}

	return cleaned, nil
}
