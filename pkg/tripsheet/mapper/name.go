package mapper

import "strings"

// FormatMemberName rewrites "Given Names Surname" as "Surname, Given Names".
// Names that already contain a comma, or that are a single token, are
// returned unchanged.
func FormatMemberName(raw string) string {
	if raw == "" || strings.Contains(raw, ",") || !strings.Contains(raw, " ") {
		return raw
	}

	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return raw
	}

	last := strings.TrimSuffix(parts[len(parts)-1], ",")
	return last + ", " + strings.Join(parts[:len(parts)-1], " ")
}
