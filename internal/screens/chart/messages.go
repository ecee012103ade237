package chart

import (
	"time"

	"github.com/xpchart/xpchart/internal/dataset"
	"github.com/xpchart/xpchart/internal/tracker"
)

// fetchDoneMsg carries the outcome of one fetch back to the UI goroutine,
// where it is applied to the tracker.
type fetchDoneMsg struct {
	Ticket  tracker.Ticket
	Dataset *dataset.Dataset
	Err     error
}

// spinnerTickMsg is sent at short intervals to animate the fetch spinner.
type spinnerTickMsg time.Time
