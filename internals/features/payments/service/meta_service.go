package service

import (
	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

// MergeMeta menggabungkan metadata baru ke payment_meta tanpa menghapus
// key lama (union, key baru menang saat bentrok).
func MergeMeta(existing datatypes.JSON, updates map[string]any) (datatypes.JSON, error) {
	merged := map[string]any{}
	if len(existing) > 0 {
		if err := sonic.Unmarshal(existing, &merged); err != nil {
			return nil, err
		}
	}
	for k, v := range updates {
		merged[k] = v
	}
	out, err := sonic.Marshal(merged)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}
