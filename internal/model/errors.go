package model

import (
	"errors"
	"fmt"
)

// ErrEmptyText is returned when there is no feedback text to analyze.
var ErrEmptyText = errors.New("feedback text is empty")

// ErrNotFound is returned when a stored record does not exist.
var ErrNotFound = errors.New("record not found")

// MissingDatasetError is returned when the default dataset file does not exist.
type MissingDatasetError struct {
	Path string
	Err  error
}

func (e *MissingDatasetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dataset %s not found: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("dataset %s not found", e.Path)
}

func (e *MissingDatasetError) Unwrap() error { return e.Err }

// MalformedTableError is returned when a dataset cannot be parsed or lacks a required column.
type MalformedTableError struct {
	Reason string
	Line   int
	Err    error
}

func (e *MalformedTableError) Error() string {
	msg := "malformed feedback table: " + e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedTableError) Unwrap() error { return e.Err }

// IsMalformedTable reports whether err is or wraps a MalformedTableError.
func IsMalformedTable(err error) bool {
	var target *MalformedTableError
	return errors.As(err, &target)
}

// IsMissingDataset reports whether err is or wraps a MissingDatasetError.
func IsMissingDataset(err error) bool {
	var target *MissingDatasetError
	return errors.As(err, &target)
}
