package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation mendeteksi pelanggaran unique constraint Postgres
// (kode 23505), dengan fallback pencocokan string untuk driver lain.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
