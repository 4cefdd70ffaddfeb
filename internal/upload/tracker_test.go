// internal/upload/tracker_test.go
package upload

import (
	"context"
	"testing"
	"time"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================================
// Test fixtures
// ==========================================

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return NewTracker(Config{
		TickInterval: time.Millisecond,
		TickPercent:  25,
	}, logger.NewTestLogger(t))
}

func pdfFile(name string, sizeMB int64) models.FileInfo {
	return models.FileInfo{
		Name:      name,
		Size:      sizeMB * 1024 * 1024,
		MediaType: "application/pdf",
	}
}

// ==========================================
// Successful transfers
// ==========================================

func TestTrack_RunsToCompletion(t *testing.T) {
	tracker := newTestTracker(t)

	var seen []Progress
	final, err := tracker.Track(context.Background(), "nationalId", pdfFile("id-card.pdf", 1), func(p Progress) {
		seen = append(seen, p)
	})

	require.NoError(t, err)
	assert.Equal(t, 100, final.Percent)
	assert.True(t, final.Done)
	assert.Equal(t, "nationalId", final.SlotID)
	assert.Equal(t, "id-card.pdf", final.FileName)

	// 25% per tick means exactly four observations, the last one terminal.
	require.Len(t, seen, 4)
	assert.Equal(t, []int{25, 50, 75, 100}, []int{seen[0].Percent, seen[1].Percent, seen[2].Percent, seen[3].Percent})
	assert.False(t, seen[2].Done)
	assert.True(t, seen[3].Done)
}

func TestTrack_ClampsOverstep(t *testing.T) {
	tracker := NewTracker(Config{
		TickInterval: time.Millisecond,
		TickPercent:  30,
	}, logger.NewTestLogger(t))

	final, err := tracker.Track(context.Background(), "nationalId", pdfFile("id-card.pdf", 1), nil)

	require.NoError(t, err)
	assert.Equal(t, 100, final.Percent)
}

func TestTrack_NilCallbackIsAllowed(t *testing.T) {
	tracker := newTestTracker(t)

	final, err := tracker.Track(context.Background(), "proofOfAddress", pdfFile("lease.pdf", 1), nil)

	require.NoError(t, err)
	assert.True(t, final.Done)
}

// ==========================================
// Rejections
// ==========================================

func TestTrack_UnknownSlot(t *testing.T) {
	tracker := newTestTracker(t)

	_, err := tracker.Track(context.Background(), "taxClearance", pdfFile("tax.pdf", 1), nil)

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeUploadRejected))

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Contains(t, stdErr.Details, "taxClearance")
}

func TestTrack_RejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name string
		slot string
		file models.FileInfo
	}{
		{
			name: "wrong type for pdf-only slot",
			slot: "attestationOfNonConviction",
			file: models.FileInfo{Name: "attestation.docx", Size: 1024, MediaType: "application/msword"},
		},
		{
			name: "oversized file",
			slot: "nationalId",
			file: pdfFile("id-card.pdf", 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := newTestTracker(t)

			called := false
			_, err := tracker.Track(context.Background(), tt.slot, tt.file, func(Progress) { called = true })

			require.Error(t, err)
			assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeUploadRejected))
			assert.False(t, called, "a rejected file must never start transferring")
		})
	}
}

// ==========================================
// Cancellation
// ==========================================

func TestTrack_CancelMidTransfer(t *testing.T) {
	tracker := NewTracker(Config{
		TickInterval: time.Millisecond,
		TickPercent:  10,
	}, logger.NewTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	progress, err := tracker.Track(ctx, "nationalId", pdfFile("id-card.pdf", 1), func(p Progress) {
		if p.Percent >= 30 {
			cancel()
		}
	})

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeUploadCancelled))
	// Partial state is discarded, not reported.
	assert.Equal(t, Progress{}, progress)
}

func TestTrack_AlreadyCancelledContext(t *testing.T) {
	tracker := newTestTracker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tracker.Track(ctx, "nationalId", pdfFile("id-card.pdf", 1), nil)

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeUploadCancelled))
}
