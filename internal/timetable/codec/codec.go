// Package codec reads and writes schedules as JSON.
//
// A schedule may be the whole document or live under a path inside a larger
// document, such as an API response envelope. Paths use gjson syntax
// ("data.timetable.schedule").
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/ttedit/internal/timetable"
)

// Errors returned by the codec.
var (
	// ErrPathNotFound indicates the JSON path does not exist in the document.
	ErrPathNotFound = errors.New("schedule path not found")

	// ErrInvalidJSON indicates the document is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON document")
)

// Decode parses a schedule from data. An empty jsonPath decodes the whole
// document.
func Decode(data []byte, jsonPath string) (timetable.Schedule, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	raw := data
	if jsonPath != "" {
		result := gjson.GetBytes(data, jsonPath)
		if !result.Exists() {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, jsonPath)
		}
		raw = []byte(result.Raw)
	}

	var schedule timetable.Schedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, fmt.Errorf("decoding schedule: %w", err)
	}
	if schedule == nil {
		schedule = make(timetable.Schedule)
	}
	return schedule, nil
}

// Encode renders a schedule as indented JSON.
func Encode(schedule timetable.Schedule) ([]byte, error) {
	if schedule == nil {
		schedule = make(timetable.Schedule)
	}
	data, err := json.Marshal(schedule)
	if err != nil {
		return nil, fmt.Errorf("encoding schedule: %w", err)
	}
	return pretty.Pretty(data), nil
}

// EncodeInto stores a schedule at jsonPath inside doc and returns the updated
// document. Other content of doc is preserved. An empty doc starts from an
// empty object; an empty jsonPath replaces the whole document.
func EncodeInto(doc []byte, jsonPath string, schedule timetable.Schedule) ([]byte, error) {
	encoded, err := Encode(schedule)
	if err != nil {
		return nil, err
	}
	if jsonPath == "" {
		return encoded, nil
	}

	if len(doc) == 0 {
		doc = []byte("{}")
	}
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidJSON
	}

	updated, err := sjson.SetRawBytes(doc, jsonPath, pretty.Ugly(encoded))
	if err != nil {
		return nil, fmt.Errorf("writing schedule at %s: %w", jsonPath, err)
	}
	return pretty.Pretty(updated), nil
}

// ReadFile loads a schedule from a JSON file.
func ReadFile(path, jsonPath string) (timetable.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule %s: %w", path, err)
	}
	schedule, err := Decode(data, jsonPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schedule, nil
}

// WriteFile saves a schedule to a JSON file. When jsonPath is set and the
// file already exists, the schedule replaces the value at that path and the
// rest of the document is kept.
func WriteFile(path, jsonPath string, schedule timetable.Schedule) error {
	var doc []byte
	if jsonPath != "" {
		existing, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc = existing
	}

	data, err := EncodeInto(doc, jsonPath, schedule)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schedule %s: %w", path, err)
	}
	return nil
}
