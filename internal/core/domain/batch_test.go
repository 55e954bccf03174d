package domain_test

import (
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchAccumulator_Admit(t *testing.T) {
	acc := domain.NewBatchAccumulator(domain.DefaultBatchLimits[domain.MediaKindImage])

	assert.NoError(t, acc.Admit(20))
	assert.ErrorIs(t, acc.Admit(21), domain.ErrFileCountExceeded)
	assert.ErrorIs(t, acc.Admit(0), domain.ErrMissingFile)
}

func TestBatchAccumulator_Add(t *testing.T) {
	t.Run("accumulates sizes", func(t *testing.T) {
		// Arrange
		acc := domain.NewBatchAccumulator(domain.BatchLimits{MaxFiles: 5, MaxTotalBytes: 100})

		// Act
		first, err := acc.Add(40)
		require.NoError(t, err)
		second, err := first.Add(60)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(100), second.TotalBytes)
		assert.Equal(t, 2, second.Files)
		assert.Equal(t, int64(0), acc.TotalBytes, "receiver must not change")
	})

	t.Run("rejects what exceeds the total", func(t *testing.T) {
		// Arrange
		acc := domain.NewBatchAccumulator(domain.DefaultBatchLimits[domain.MediaKindImage])
		first, err := acc.Add(60 << 20)
		require.NoError(t, err)

		// Act
		next, err := first.Add(41 << 20)

		// Assert
		assert.ErrorIs(t, err, domain.ErrBatchSizeExceeded)
		assert.Equal(t, first, next)
	})

	t.Run("depends only on the prior total and the new size", func(t *testing.T) {
		limits := domain.BatchLimits{MaxTotalBytes: 10}
		a := domain.BatchAccumulator{Limits: limits, Files: 3, TotalBytes: 6}
		b := domain.BatchAccumulator{Limits: limits, Files: 1, TotalBytes: 6}

		_, errA := a.Add(5)
		_, errB := b.Add(5)

		assert.ErrorIs(t, errA, domain.ErrBatchSizeExceeded)
		assert.ErrorIs(t, errB, domain.ErrBatchSizeExceeded)
	})
}

func TestPartialFailureError(t *testing.T) {
	err := &domain.PartialFailureError{
		Uploaded:   []domain.UploadResult{{OriginalFilename: "a.jpg"}},
		FailedFile: "b.jpg",
		Err:        domain.ErrBatchSizeExceeded,
	}

	assert.ErrorIs(t, err, domain.ErrBatchSizeExceeded)
	assert.Contains(t, err.Error(), "b.jpg")
}
