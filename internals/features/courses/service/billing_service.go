package service

import (
	"errors"
	"math"
	"time"

	"tutorhub_backend/internals/features/courses/model"
)

var ErrUnknownBillingCycle = errors.New("unknown billing cycle")

// Siklus lebih panjang memakai pembagi 0.95: harganya dinaikkan ~5.26%
// lalu jadi basis diskon kampanye di sisi klien. Jangan disederhanakan.
const multiCycleDivisor = 0.95

// ComputeCost menghitung biaya enrollment dari harga dasar bulanan.
func ComputeCost(basePrice float64, cycle string) (float64, error) {
	switch cycle {
	case model.BillingCycleMonthly:
		return Round2(basePrice), nil
	case model.BillingCycleQuarterly:
		return Round2(basePrice * 3 / multiCycleDivisor), nil
	case model.BillingCycleSemiAnnual:
		return Round2(basePrice * 6 / multiCycleDivisor), nil
	case model.BillingCycleAnnual:
		return Round2(basePrice * 12 / multiCycleDivisor), nil
	default:
		return 0, ErrUnknownBillingCycle
	}
}

// ComputeEndDate menghitung tanggal berakhir enrollment dari tanggal mulai.
func ComputeEndDate(start time.Time, cycle string) (time.Time, error) {
	switch cycle {
	case model.BillingCycleMonthly:
		return start.AddDate(0, 1, 0), nil
	case model.BillingCycleQuarterly:
		return start.AddDate(0, 3, 0), nil
	case model.BillingCycleSemiAnnual:
		return start.AddDate(0, 6, 0), nil
	case model.BillingCycleAnnual:
		return start.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, ErrUnknownBillingCycle
	}
}

// Round2 membulatkan ke 2 desimal (setara satuan kobo).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
