package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osbbhub/complex-service/internal/models"
)

func TestNormalizeStorageStatus(t *testing.T) {
	aptID := uuid.New()

	// Attached rooms are always occupied, whatever the caller claims.
	require.Equal(t, models.StorageOccupied, normalizeStorageStatus(models.StorageFree, &aptID))
	require.Equal(t, models.StorageOccupied, normalizeStorageStatus("", &aptID))

	// Detached rooms default to free but keep an explicit status.
	require.Equal(t, models.StorageFree, normalizeStorageStatus("", nil))
	require.Equal(t, models.StorageOccupied, normalizeStorageStatus(models.StorageOccupied, nil))
}
