// file: internals/helpers/validation.go
package helper

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	// Pola MSISDN Nigeria: +234/234/0 lalu prefix operator lalu 8 digit
	msisdnRegex = regexp.MustCompile(`^(\+234|234|0)(70|80|81|90|91)\d{8}$`)
)

// Validate mengembalikan instance validator tunggal dengan custom rule terdaftar.
func Validate() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Pakai nama json tag untuk pesan error, bukan nama field Go
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation("nigerian_msisdn", func(fl validator.FieldLevel) bool {
			return msisdnRegex.MatchString(fl.Field().String())
		})

		_ = validate.RegisterValidation("password_complexity", func(fl validator.FieldLevel) bool {
			return PasswordMeetsComplexity(fl.Field().String())
		})

		// Dipakai untuk tanggal lahir: harus sebelum hari ini
		_ = validate.RegisterValidation("past_date", func(fl validator.FieldLevel) bool {
			return IsPastDate(fl.Field().String(), time.Now())
		})
	})
	return validate
}

// PasswordMeetsComplexity: minimal ada huruf kecil, huruf besar, angka, dan simbol.
// Panjang minimum dicek lewat tag min=8.
func PasswordMeetsComplexity(pwd string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range pwd {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*#?&", r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// IsValidMsisdn dipakai di luar validator (mis. cek manual di controller).
func IsValidMsisdn(tel string) bool {
	return msisdnRegex.MatchString(tel)
}

// IsPastDate true kalau value (format 2006-01-02) jatuh sebelum tanggal now.
// Format salah dianggap tidak valid; tag datetime yang kasih pesan formatnya.
func IsPastDate(value string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

// ValidationErrorsToMap mengubah validator.ValidationErrors menjadi
// map field → daftar pesan untuk response 422.
func ValidationErrorsToMap(err error) map[string][]string {
	if err == nil {
		return nil
	}
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = strings.ToLower(fe.StructField())
		}
		out[field] = append(out[field], messageForTag(fe))
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "required_without":
		return "this field is required when " + strings.ToLower(fe.Param()) + " is not present"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must not be greater than " + fe.Param() + " characters"
	case "eqfield":
		return "must match " + strings.ToLower(fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "nigerian_msisdn":
		return "must be a valid Nigerian phone number"
	case "password_complexity":
		return "must contain lowercase, uppercase, number and symbol"
	case "past_date":
		return "must be a date before today"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}
