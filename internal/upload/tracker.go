// internal/upload/tracker.go
package upload

import (
	"context"
	"strings"
	"time"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"
	"business-registry/internal/validation"
)

// Config carries the simulated transfer tunables.
type Config struct {
	TickInterval time.Duration
	TickPercent  int
}

// Progress is one observed point of a simulated transfer.
type Progress struct {
	SlotID   string `json:"slotId"`
	FileName string `json:"fileName"`
	Percent  int    `json:"percent"`
	Done     bool   `json:"done"`
}

// Tracker simulates document uploads. No bytes move; the tracker validates
// the file against its slot requirement and then advances a percentage on a
// fixed tick until it reaches 100 or the context is cancelled. The ticker is
// always stopped before Track returns, so an abandoned upload never leaks a
// timer.
type Tracker struct {
	cfg    Config
	logger logger.Logger
}

func NewTracker(cfg Config, log logger.Logger) *Tracker {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	if cfg.TickPercent <= 0 || cfg.TickPercent > 100 {
		cfg.TickPercent = 10
	}
	return &Tracker{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "upload"}),
	}
}

// Track validates the file for the named slot and drives the simulated
// transfer, reporting each step through onProgress. It returns the final
// progress point on success. Cancelling the context aborts the transfer and
// returns an UPLOAD_CANCELLED error; the partial state is discarded.
func (t *Tracker) Track(ctx context.Context, slotID string, file models.FileInfo, onProgress func(Progress)) (Progress, error) {
	req, ok := models.RequirementByID(slotID)
	if !ok {
		return Progress{}, stderrors.NewUploadRejectedError("unknown document slot: " + slotID)
	}

	if result := validation.ValidateFile(file, req); result != nil && !result.Valid {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, e.Message)
		}
		t.logger.Warn("upload rejected", map[string]interface{}{
			"slot": slotID,
			"file": file.Name,
		})
		return Progress{}, stderrors.NewUploadRejectedError(strings.Join(msgs, "; "))
	}

	ticker := time.NewTicker(t.cfg.TickInterval)
	defer ticker.Stop()

	p := Progress{SlotID: slotID, FileName: file.Name}
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("upload cancelled", map[string]interface{}{
				"slot":    slotID,
				"file":    file.Name,
				"percent": p.Percent,
			})
			return Progress{}, stderrors.NewUploadCancelledError(file.Name)
		case <-ticker.C:
			p.Percent += t.cfg.TickPercent
			if p.Percent >= 100 {
				p.Percent = 100
				p.Done = true
			}
			if onProgress != nil {
				onProgress(p)
			}
			if p.Done {
				return p, nil
			}
		}
	}
}
