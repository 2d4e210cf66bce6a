package tbfsbs

// Package tbfsbs implements the Text-Based Format for Storing Biological
// Sequences: '%'-prefixed header lines (identifier, optional numeric target
// value, description) followed by sequence lines. It keeps parsing simple
// and conservative.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrMalformedHeader is returned when a header line has no identifier.
	ErrMalformedHeader = errors.New("malformed header")
)

// TargetKind discriminates the three states of a header's target value.
type TargetKind int

const (
	TargetNull TargetKind = iota
	TargetInt
	TargetFloat
)

// Target is the optional numeric annotation of a record: an integer, a
// float, or null.
type Target struct {
	Kind  TargetKind
	Int   int64
	Float float64
}

// IntTarget returns an integer target value.
func IntTarget(v int64) Target { return Target{Kind: TargetInt, Int: v} }

// FloatTarget returns a floating-point target value.
func FloatTarget(v float64) Target { return Target{Kind: TargetFloat, Float: v} }

// String renders the target as it appears in a TBFSBS file: an integer
// literal, a float literal, or the null token.
func (t Target) String() string {
	switch t.Kind {
	case TargetInt:
		return strconv.FormatInt(t.Int, 10)
	case TargetFloat:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	default:
		return "null"
	}
}

// reportString is the report rendering: floats rounded to one decimal, so a
// whole-valued target still reads as 3.0 rather than 3.
func (t Target) reportString() string {
	if t.Kind == TargetFloat {
		return strconv.FormatFloat(t.Float, 'f', 1, 64)
	}
	return t.String()
}

// Record represents a single TBFSBS record: the parsed header fields and
// the concatenated sequence.
type Record struct {
	Identifier  string
	Target      Target
	Description string
	Sequence    string
}

// Length returns the sequence length in characters, not bytes.
func (r Record) Length() int { return utf8.RuneCountInString(r.Sequence) }

// Summary renders the per-record report block:
//
//	ID: Id1
//	Value: 2.5
//	Description: My description
//	Sequence length: 502
func (r Record) Summary() string {
	return fmt.Sprintf("ID: %s\nValue: %s\nDescription: %s\nSequence length: %d\n",
		r.Identifier, r.Target.reportString(), r.Description, r.Length())
}

// parseHeader parses a line known to start with '%'. The identifier follows
// the '%' after at most one separator space; an empty identifier slot (as in
// "%  5 desc") is malformed. The second token is the target value when it is
// an integer literal, a float literal, or the null token; otherwise it is
// the start of the description.
func parseHeader(line string) (Record, error) {
	rest := strings.TrimPrefix(line, "%")
	rest = strings.TrimPrefix(rest, " ")
	if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
		return Record{}, fmt.Errorf("%w: missing identifier in %q", ErrMalformedHeader, line)
	}

	fields := strings.Fields(rest)
	rec := Record{Identifier: fields[0]}
	if len(fields) == 1 {
		return rec, nil
	}

	desc := fields[1:]
	tok := fields[1]
	if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
		rec.Target = IntTarget(v)
		desc = fields[2:]
	} else if v, err := strconv.ParseFloat(tok, 64); err == nil {
		rec.Target = FloatTarget(v)
		desc = fields[2:]
	} else if tok == "null" {
		desc = fields[2:]
	}
	rec.Description = strings.Join(desc, " ")
	return rec, nil
}

// ParseRecords reads TBFSBS records from r. Lines beginning with '%' denote
// headers; the following lines are trimmed of surrounding whitespace and
// concatenated into the record's sequence. Non-blank content before the
// first header is an error.
func ParseRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var records []Record
	var current *Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "%") {
			if current != nil {
				records = append(records, *current)
			}
			rec, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current = &rec
			continue
		}
		seq := strings.TrimSpace(line)
		if current == nil {
			if seq == "" {
				continue
			}
			return nil, fmt.Errorf("line %d: sequence data before first header", lineNo)
		}
		current.Sequence += seq
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}
