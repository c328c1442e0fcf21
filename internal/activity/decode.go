package activity

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fchimpan/gh-kusa-map/internal/calendar"
	"github.com/fchimpan/gh-kusa-map/internal/intensity"
)

type Format string

const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatGitHub Format = "github"
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatAuto, FormatJSON, FormatCSV, FormatGitHub}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatAuto, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected auto, json, csv or github)", s)
}

// Decode reads observations from r.
//
//   - json: [{"date": "2023-01-01", "count": 3}, ...]
//   - csv: date,count rows, an optional header row is skipped
//   - github: a GitHub contribution calendar (see decodeGitHubCalendar)
//
// FormatAuto picks github or json for input starting with '{' or '[' and csv otherwise.
func Decode(r io.Reader, f Format) ([]Observation, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if f == FormatAuto {
		f = sniff(raw)
	}

	switch f {
	case FormatJSON:
		return decodeJSON(raw)
	case FormatCSV:
		return decodeCSV(raw)
	case FormatGitHub:
		cal, err := decodeGitHubCalendar(raw)
		if err != nil {
			return nil, &ParseError{Format: FormatGitHub, cause: err}
		}
		return cal.Observations()
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

var utf8BOM = []byte("\ufeff")

func sniff(raw []byte) Format {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatJSON
	}
	switch trimmed[0] {
	case '{':
		return FormatGitHub
	case '[':
		return FormatJSON
	}
	return FormatCSV
}

type jsonValue struct {
	Date  string       `json:"date"`
	Count *json.Number `json:"count"`
}

func decodeJSON(raw []byte) ([]Observation, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var values []jsonValue
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, &ParseError{Format: FormatJSON, cause: err}
	}

	out := make([]Observation, 0, len(values))
	for i, v := range values {
		if v.Count == nil {
			return nil, &ParseError{Format: FormatJSON, Record: i + 1, cause: errors.New("missing count")}
		}
		o, err := newObservation(v.Date, v.Count.String())
		if err != nil {
			return nil, &ParseError{Format: FormatJSON, Record: i + 1, cause: err}
		}
		out = append(out, o)
	}
	return out, nil
}

func decodeCSV(raw []byte) ([]Observation, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	var out []Observation
	for rec := 1; ; rec++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Format: FormatCSV, Record: rec, cause: err}
		}
		if len(fields) < 2 {
			return nil, &ParseError{Format: FormatCSV, Record: rec, cause: fmt.Errorf("expected date,count got %d field(s)", len(fields))}
		}
		if rec == 1 && isHeader(fields) {
			continue
		}
		o, err := newObservation(fields[0], fields[1])
		if err != nil {
			return nil, &ParseError{Format: FormatCSV, Record: rec, cause: err}
		}
		out = append(out, o)
	}
	return out, nil
}

func isHeader(fields []string) bool {
	return strings.EqualFold(strings.TrimSpace(fields[0]), "date")
}

func newObservation(date, count string) (Observation, error) {
	t, err := parseDate(date)
	if err != nil {
		return Observation{}, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return Observation{}, fmt.Errorf("invalid count %q", count)
	}
	if n < 0 {
		return Observation{}, &intensity.InvalidCountError{Count: n}
	}
	return Observation{Date: t, Count: n}, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339 timestamps. Timestamps keep their
// own calendar day, regardless of offset.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return calendar.Day(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
}
