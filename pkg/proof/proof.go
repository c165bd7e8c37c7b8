package proof

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethanbaker/lineramind/pkg/entry"
)

// Scheme is the leading segment of every proof identifier
const Scheme = "linera"

const (
	displayChainRunes = 6
	displayIDRunes    = 4
)

// ErrInvalid is matched by every error returned from Parse
var ErrInvalid = errors.New("invalid proof identifier")

// ParseError describes why a raw identifier could not be resolved to an id
type ParseError struct {
	Input   string
	Segment string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot resolve proof identifier %q: %s", e.Input, e.Reason)
}

// Is lets errors.Is(err, ErrInvalid) match any ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalid
}

// Encode renders the proof identifier of an entry
func Encode(e *entry.Entry) string {
	return Format(e.ChainID, e.ID)
}

// Format renders a proof identifier from its parts
func Format(chainID string, id int64) string {
	return Scheme + ":" + chainID + ":" + strconv.FormatInt(id, 10)
}

// Parse extracts the numeric entry id from user input. Input with three or
// more colon-delimited segments is read from the third segment (later segments
// are ignored); anything shorter must be a bare numeric id.
func Parse(raw string) (int64, error) {
	segment := raw
	if parts := strings.Split(raw, ":"); len(parts) >= 3 {
		segment = parts[2]
	}

	trimmed := strings.TrimSpace(segment)
	if trimmed == "" {
		return 0, &ParseError{Input: raw, Segment: segment, Reason: "missing entry id"}
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: raw, Segment: segment, Reason: "entry id is not a base-10 integer"}
	}
	if id <= 0 {
		return 0, &ParseError{Input: raw, Segment: segment, Reason: "entry id must be positive"}
	}

	return id, nil
}

// FormatDisplay renders a shortened, human-facing label for an identifier. It
// is never a lookup key.
func FormatDisplay(chainID string, id int64) string {
	chain := []rune(chainID)
	if len(chain) > displayChainRunes {
		chain = chain[:displayChainRunes]
	}

	num := []rune(strconv.FormatInt(id, 10))
	if len(num) > displayIDRunes {
		num = num[len(num)-displayIDRunes:]
	}

	return "Proof · " + Scheme + ":" + string(chain) + "…" + string(num)
}
