package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// MaxCategoryName is measured in runes, not bytes.
const MaxCategoryName = 64

// sanitizeText trims and strips control characters and angle brackets
// before a value is validated or stored. Output escaping still happens
// at the template layer; this keeps markup out of the stored values.
func sanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) || r == '<' || r == '>' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// CategoryName sanitizes and checks a category name. The sanitized value
// is returned even on failure so callers can echo it back into the form.
func CategoryName(s string) (string, bool) {
	s = sanitizeText(s)
	if s == "" || utf8.RuneCountInString(s) > MaxCategoryName {
		return s, false
	}
	return s, true
}

// ImgName sanitizes the optional image token. Empty is allowed; no
// extension or existence check is done, the token is a lookup key only.
func ImgName(s string) string {
	return sanitizeText(s)
}

// CategoryID parses a surrogate key; only positive integers are valid.
func CategoryID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a length window for login attempts; the real check
// is the bcrypt comparison.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}
