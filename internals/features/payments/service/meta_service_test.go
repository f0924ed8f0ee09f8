package service

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func decodeMeta(t *testing.T, raw datatypes.JSON) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &out))
	return out
}

func TestMergeMetaFromEmpty(t *testing.T) {
	merged, err := MergeMeta(nil, map[string]any{"channel": "card"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"channel": "card"}, decodeMeta(t, merged))
}

func TestMergeMetaPreservesExistingKeys(t *testing.T) {
	existing := datatypes.JSON([]byte(`{"channel":"card","attempt":1}`))

	merged, err := MergeMeta(existing, map[string]any{"gateway_transaction_id": "trx-1"})
	require.NoError(t, err)

	got := decodeMeta(t, merged)
	assert.Equal(t, "card", got["channel"])
	assert.Equal(t, float64(1), got["attempt"])
	assert.Equal(t, "trx-1", got["gateway_transaction_id"])
}

func TestMergeMetaNewKeyWinsOnConflict(t *testing.T) {
	existing := datatypes.JSON([]byte(`{"status_note":"old"}`))

	merged, err := MergeMeta(existing, map[string]any{"status_note": "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", decodeMeta(t, merged)["status_note"])
}

func TestMergeMetaInvalidExisting(t *testing.T) {
	existing := datatypes.JSON([]byte(`{bukan json`))
	_, err := MergeMeta(existing, map[string]any{"k": "v"})
	assert.Error(t, err)
}
