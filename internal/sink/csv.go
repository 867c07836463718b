package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"date", "time", "type", "tracking",
	"option_id", "symbol", "side", "code",
	"price", "volume", "aux_price", "aux_volume",
	"ref", "new_ref", "aux_ref", "new_aux_ref",
	"cross_number", "match_number",
}

// CSVSink writes normalized records as CSV rows. The feed date, when
// known, is repeated in the first column of every row so files from
// different sessions can be concatenated.
type CSVSink struct {
	cw   *csv.Writer
	date string
}

// NewCSVSink writes the header row and returns a sink bound to w.
func NewCSVSink(w io.Writer, feedDate string) (*CSVSink, error) {
	s := &CSVSink{
		cw:   csv.NewWriter(w),
		date: feedDate,
	}
	if err := s.cw.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return s, nil
}

// Write appends one row for the record.
func (s *CSVSink) Write(rec Record) error {
	row := []string{
		s.date,
		FormatTimestamp(rec.Timestamp),
		rec.Type,
		strconv.FormatUint(uint64(rec.Tracking), 10),
		strconv.FormatUint(uint64(rec.OptionID), 10),
		rec.Symbol,
		charColumn(rec.Side),
		charColumn(rec.Code),
		FormatPrice(rec.Price),
		strconv.FormatUint(uint64(rec.Volume), 10),
		FormatPrice(rec.AuxPrice),
		strconv.FormatUint(uint64(rec.AuxVolume), 10),
		strconv.FormatUint(rec.Ref, 10),
		strconv.FormatUint(rec.NewRef, 10),
		strconv.FormatUint(rec.AuxRef, 10),
		strconv.FormatUint(rec.NewAuxRef, 10),
		strconv.FormatUint(uint64(rec.CrossNumber), 10),
		strconv.FormatUint(uint64(rec.MatchNumber), 10),
	}
	if err := s.cw.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Flush drains buffered rows to the underlying writer.
func (s *CSVSink) Flush() error {
	s.cw.Flush()
	return s.cw.Error()
}

func charColumn(c byte) string {
	if c == 0 {
		return ""
	}
	return string(c)
}
