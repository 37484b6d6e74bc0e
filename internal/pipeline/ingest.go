package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"feedback-dashboard/internal/model"
	"feedback-dashboard/pkg/utils"
)

// Loader reads feedback tables from disk or from uploaded bytes.
type Loader struct {
	LabelColumn string
}

// NewLoader returns a loader that expects the label in labelColumn.
func NewLoader(labelColumn string) *Loader {
	if labelColumn == "" {
		labelColumn = model.DefaultLabelColumn
	}
	return &Loader{LabelColumn: labelColumn}
}

// ------------------- Default dataset -------------------

// LoadDefault reads the dataset shipped with the dashboard. A missing file is
// reported as MissingDatasetError; callers treat it as fatal.
func (l *Loader) LoadDefault(path string) (model.FeedbackTable, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.FeedbackTable{}, &model.MissingDatasetError{Path: path, Err: err}
		}
		return model.FeedbackTable{}, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	table, err := l.parse(file)
	if err != nil {
		return model.FeedbackTable{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return table, nil
}

// ------------------- Uploaded dataset -------------------

// LoadReplacement parses uploaded CSV bytes with the same schema as the default dataset.
func (l *Loader) LoadReplacement(data []byte) (model.FeedbackTable, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.FeedbackTable{}, &model.MalformedTableError{Reason: "file is empty"}
	}
	return l.parse(bytes.NewReader(data))
}

// ------------------- CSV parsing -------------------
func (l *Loader) parse(r io.Reader) (model.FeedbackTable, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	// Short rows are kept; their missing cells count as missing labels.
	// Long rows are rejected below.
	csvReader.FieldsPerRecord = -1

	rawHeader, err := csvReader.Read()
	if err == io.EOF {
		return model.FeedbackTable{}, &model.MalformedTableError{Reason: "no header row"}
	} else if err != nil {
		return model.FeedbackTable{}, &model.MalformedTableError{Reason: "failed to read CSV header", Line: 1, Err: err}
	}

	header := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		header[i] = utils.CleanHeader(h)
	}

	labelIdx, err := validateHeader(header, l.LabelColumn)
	if err != nil {
		return model.FeedbackTable{}, err
	}

	table := model.FeedbackTable{Header: header, Records: make([]model.FeedbackRecord, 0)}
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return model.FeedbackTable{}, &model.MalformedTableError{Reason: "CSV read error", Line: line, Err: err}
		}

		line, _ := csvReader.FieldPos(0)
		if len(row) > len(header) {
			return model.FeedbackTable{}, &model.MalformedTableError{
				Reason: fmt.Sprintf("too many fields: expected %d, saw %d", len(header), len(row)),
				Line:   line,
			}
		}
		table.Records = append(table.Records, buildRecord(header, row, labelIdx, line))
	}

	return table, nil
}

func buildRecord(header, row []string, labelIdx, line int) model.FeedbackRecord {
	fields := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(row) {
			fields[h] = row[i]
		}
	}

	label := model.MissingLabel
	if labelIdx < len(row) && row[labelIdx] != "" {
		label = row[labelIdx]
	}

	return model.FeedbackRecord{SentimentLabel: label, Fields: fields, Line: line}
}
