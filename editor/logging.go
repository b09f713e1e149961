package editor

import (
	"errors"
	"log/slog"

	"github.com/lokito-h/outpost/habitat"
)

// logPlaced records a successful placement.
func logPlaced(m habitat.PlacedModule) {
	slog.Info("module placed",
		"id", m.ID,
		"type", m.TypeID,
		"x", m.X,
		"y", m.Y,
	)
}

// logMoved records a committed reposition.
func logMoved(id int, x, y float64) {
	slog.Info("module moved",
		"id", id,
		"x", x,
		"y", y,
	)
}

// logRemoved records a removal.
func logRemoved(id int) {
	slog.Info("module removed", "id", id)
}

// logRejected records a validation failure with its enumerated reason.
func logRejected(err error) {
	var verr *habitat.ValidationError
	if errors.As(err, &verr) {
		slog.Warn("placement rejected",
			"reason", string(verr.Reason),
			"type", verr.TypeID,
		)
		return
	}
	slog.Warn("placement rejected", "error", err)
}
