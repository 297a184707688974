package common

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockRange is the half-open validity window of a stored row, decoded from
// the text form of a Postgres int4range. Start is inclusive, End exclusive;
// nil means unbounded on that side.
type BlockRange struct {
	Start *int64
	End   *int64
}

// ParseBlockRange decodes the range text Postgres produces, e.g. "[100,)",
// "[100,200)" or "empty". Bounds are normalized so that Start is always
// inclusive and End always exclusive, the canonical form for integer ranges.
func ParseBlockRange(value string) (BlockRange, error) {
	s := strings.TrimSpace(value)
	if s == "empty" {
		return BlockRange{}, nil
	}
	if len(s) < 3 {
		return BlockRange{}, fmt.Errorf("malformed block range: %q", value)
	}

	lowerInc := s[0] == '['
	upperInc := s[len(s)-1] == ']'
	if (s[0] != '[' && s[0] != '(') || (s[len(s)-1] != ']' && s[len(s)-1] != ')') {
		return BlockRange{}, fmt.Errorf("malformed block range: %q", value)
	}

	inner := s[1 : len(s)-1]
	comma := strings.Index(inner, ",")
	if comma < 0 {
		return BlockRange{}, fmt.Errorf("malformed block range: %q", value)
	}

	var r BlockRange
	if lower := strings.TrimSpace(inner[:comma]); lower != "" {
		n, err := strconv.ParseInt(strings.Trim(lower, `"`), 10, 64)
		if err != nil {
			return BlockRange{}, fmt.Errorf("malformed block range lower bound %q: %w", lower, err)
		}
		if !lowerInc {
			n++
		}
		r.Start = &n
	}
	if upper := strings.TrimSpace(inner[comma+1:]); upper != "" {
		n, err := strconv.ParseInt(strings.Trim(upper, `"`), 10, 64)
		if err != nil {
			return BlockRange{}, fmt.Errorf("malformed block range upper bound %q: %w", upper, err)
		}
		if upperInc {
			n++
		}
		r.End = &n
	}
	return r, nil
}

// FirstBlock returns the inclusive lower bound of the range, or nil when the
// range is unbounded below or empty.
func (r BlockRange) FirstBlock() *int64 {
	return r.Start
}
