package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/natefinch/atomic"

	"github.com/webbmaffian/go-smallvec/alloc"
	"github.com/webbmaffian/go-smallvec/internal/config"
)

type Report struct {
	Config        config.Config    `json:"config"`
	Started       time.Time        `json:"started"`
	Seconds       float64          `json:"seconds"`
	Ops           int64            `json:"ops"`
	OpsPerSec     float64          `json:"ops_per_sec"`
	Spills        int64            `json:"spills"`
	Returns       int64            `json:"returns"`
	AllocFailures int64            `json:"alloc_failures"`
	MaxCap        int              `json:"max_cap"`
	Interrupted   bool             `json:"interrupted"`
	Mmap          *alloc.MmapStats `json:"mmap,omitempty"`
	Workers       []WorkerReport   `json:"workers"`
}

// WorkerReport counts what happened to a single vector. Spills are moves from
// inline to heap storage, returns the opposite.
type WorkerReport struct {
	ID            int   `json:"id"`
	Ops           int   `json:"ops"`
	Spills        int64 `json:"spills"`
	Returns       int64 `json:"returns"`
	AllocFailures int64 `json:"alloc_failures"`
	MaxCap        int   `json:"max_cap"`
	FinalLen      int   `json:"final_len"`
	FinalCap      int   `json:"final_cap"`
}

// writeReport replaces the file at path with r as indented JSON. Readers see
// either the old file or the complete new one.
func writeReport(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")

	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
