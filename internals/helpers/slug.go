// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")

	// guard tambahan: tidak ada "--" beruntun
	reDash := regexp.MustCompile(`-+`)
	out = reDash.ReplaceAllString(out, "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// EnsureUniqueSlug cek keunikan slug pada tabel tertentu; kalau sudah dipakai,
// coba suffix -2, -3, dst.
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = "item"
	}
	candidate := slug
	for i := 2; ; i++ {
		var n int64
		if err := db.Table(table).Where(fmt.Sprintf("%s = ?", column), candidate).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
		if i > 50 {
			return "", fmt.Errorf("gagal menemukan slug unik untuk %q", base)
		}
	}
}
