package formmap

import (
	"strings"
	"unicode"

	"directorybolt/pkg/domain"
)

// Compare lists what changed between two captures, in a fixed order.
func Compare(prev, cur *domain.FormSnapshot) []domain.FormChangeType {
	if prev == nil || cur == nil {
		return nil
	}

	var changes []domain.FormChangeType
	if prev.DOMChecksum != cur.DOMChecksum {
		changes = append(changes, domain.FormChangeDOM)
	}
	if prev.FormSignature != cur.FormSignature {
		changes = append(changes, domain.FormChangeForms)
	}
	if prev.HasCaptcha != cur.HasCaptcha {
		changes = append(changes, domain.FormChangeCaptcha)
	}
	if prev.LikelyMultiStep != cur.LikelyMultiStep {
		changes = append(changes, domain.FormChangeStepHint)
	}
	if prev.ResolvedURL != cur.ResolvedURL {
		changes = append(changes, domain.FormChangeURL)
	}

	return changes
}

// SanitizeSiteID turns an arbitrary name into a path-safe site id.
func SanitizeSiteID(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}

	id := strings.Trim(b.String(), "-_")
	for strings.Contains(id, "--") {
		id = strings.ReplaceAll(id, "--", "-")
	}
	if id == "" {
		return "site"
	}

	return id
}
