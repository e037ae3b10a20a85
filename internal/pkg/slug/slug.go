package slug

import (
	"regexp"
	"strings"
)

// FallbackCode is used when nothing usable survives sanitizing a name.
const FallbackCode = "provider"

var codePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// brandPreset maps well-known loyalty brands to a clean fixed code, in
// both Latin and Japanese spellings. Order matters: first match wins.
type brandPreset struct {
	pattern *regexp.Regexp
	code    string
}

var brandPresets = []brandPreset{
	{regexp.MustCompile(`paypay|ペイペイ`), "paypay"},
	{regexp.MustCompile(`rakuten|楽天`), "rakuten"},
	{regexp.MustCompile(`dポイント|dpoint|docomo|ドコモ`), "dpoint"},
	{regexp.MustCompile(`ponta|ポンタ`), "ponta"},
	{regexp.MustCompile(`vポイント|tポイント|vpoint|tpoint`), "vpoint"},
	{regexp.MustCompile(`waon|ワオン`), "waon"},
	{regexp.MustCompile(`nanaco|ナナコ`), "nanaco"},
	{regexp.MustCompile(`line\s*point|lineポイント|ラインポイント`), "linepoint"},
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9_]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// IsValid reports whether code satisfies the provider code grammar
// (lowercase ASCII letters, digits, underscore; non-empty).
func IsValid(code string) bool {
	return codePattern.MatchString(code)
}

// Base derives a provider code from a display name. Brand presets are
// tried first; otherwise the name is stripped down to the allowed
// alphabet. The result always satisfies IsValid.
func Base(name string) string {
	lower := strings.ToLower(name)

	for _, p := range brandPresets {
		if p.pattern.MatchString(lower) {
			return p.code
		}
	}

	base := whitespaceRun.ReplaceAllString(lower, "_")
	base = invalidChars.ReplaceAllString(base, "")
	base = underscoreRun.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")

	if base == "" {
		return FallbackCode
	}
	return base
}
