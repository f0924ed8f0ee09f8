// file: internals/helpers/slug.go
package helper

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const slugSuffixLen = 6

var slugChars = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

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
	out = regexp.MustCompile(`-+`).ReplaceAllString(out, "-")
	return out
}

// RandomSlugSuffix menghasilkan 6 karakter acak [a-z0-9] untuk resolusi bentrok slug.
func RandomSlugSuffix() string {
	b := make([]rune, slugSuffixLen)
	max := big.NewInt(int64(len(slugChars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// rand.Reader hampir tidak pernah gagal; fallback deterministik
			b[i] = slugChars[i%len(slugChars)]
			continue
		}
		b[i] = slugChars[n.Int64()]
	}
	return string(b)
}

// EnsureUniqueSlug mengecek slug di tabel; kalau sudah dipakai,
// tempelkan suffix acak 6 karakter ("judul-baru" → "judul-baru-k3x9qa").
// excludeID opsional: abaikan baris dengan PK tsb (untuk update).
func EnsureUniqueSlug(db *gorm.DB, table, column, base string, excludeColumn string, excludeID any) (string, error) {
	if table == "" || column == "" {
		return "", errors.New("slug: table/column required")
	}
	slug := base

	q := db.Table(table).Where(fmt.Sprintf("%s = ?", column), slug)
	if excludeColumn != "" && excludeID != nil {
		q = q.Where(fmt.Sprintf("%s <> ?", excludeColumn), excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return slug, nil
	}
	return slug + "-" + RandomSlugSuffix(), nil
}
