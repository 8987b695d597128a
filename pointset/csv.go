package pointset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Sentinel errors for CSV ingestion.
var (
	// ErrMissingColumn indicates a required named column is absent from
	// the CSV header.
	ErrMissingColumn = errors.New("pointset: required column missing from header")

	// ErrBadRecord indicates a CSV record that failed to parse.
	ErrBadRecord = errors.New("pointset: malformed record")
)

// Default column names, matching the census extracts this library grew
// up on.
const (
	DefaultLonColumn    = "LONGITUDE"
	DefaultLatColumn    = "LATITUDE"
	DefaultWeightColumn = "POPULATION"
)

// CSVOptions names the three required columns. Column matching is
// exact (case-sensitive); extra columns are ignored.
type CSVOptions struct {
	LonColumn    string
	LatColumn    string
	WeightColumn string
}

// DefaultCSVOptions returns CSVOptions with the census column names:
// LONGITUDE, LATITUDE, POPULATION.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		LonColumn:    DefaultLonColumn,
		LatColumn:    DefaultLatColumn,
		WeightColumn: DefaultWeightColumn,
	}
}

// ReadCSV parses point data from r. The first record is the header;
// each required column must appear there or ErrMissingColumn is
// returned before any data is read. Records with unparseable numbers
// or negative weights fail with ErrBadRecord and the 1-based line
// number. opts may be nil for defaults.
// Complexity: O(rows) time and memory.
func ReadCSV(r io.Reader, opts *CSVOptions) (*Set, error) {
	o := DefaultCSVOptions()
	if opts != nil {
		o = *opts
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrBadRecord, err)
	}
	lonIdx, latIdx, weightIdx := -1, -1, -1
	for i, name := range header {
		switch name {
		case o.LonColumn:
			lonIdx = i
		case o.LatColumn:
			latIdx = i
		case o.WeightColumn:
			weightIdx = i
		}
	}
	for _, col := range []struct {
		name string
		idx  int
	}{
		{o.LonColumn, lonIdx},
		{o.LatColumn, latIdx},
		{o.WeightColumn, weightIdx},
	} {
		if col.idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col.name)
		}
	}

	s := &Set{}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		lon, err := strconv.ParseFloat(record[lonIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: longitude %q", ErrBadRecord, line, record[lonIdx])
		}
		lat, err := strconv.ParseFloat(record[latIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: latitude %q", ErrBadRecord, line, record[latIdx])
		}
		weight, err := strconv.ParseFloat(record[weightIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q", ErrBadRecord, line, record[weightIdx])
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: line %d: negative weight %g", ErrBadRecord, line, weight)
		}
		s.Lon = append(s.Lon, lon)
		s.Lat = append(s.Lat, lat)
		s.Weight = append(s.Weight, weight)
	}

	return s, nil
}

// LoadCSV reads point data from the file at path. See ReadCSV.
func LoadCSV(path string, opts *CSVOptions) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f, opts)
}
