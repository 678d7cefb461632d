package adperf

import (
	"errors"
	"fmt"
	"strings"
)

// AliasSeparator splits an ad group alias into its positional segments.
const AliasSeparator = " - "

const (
	aliasCampaignIdx = iota
	aliasSubLabelIdx
	aliasCountryIdx
	aliasVersionIdx
	aliasPriorityIdx

	aliasMinSegments
)

// ErrMalformedAlias is the sentinel matched by errors.Is for any alias that does
// not decompose into the expected segments.
var ErrMalformedAlias = errors.New("malformed alias")

// MalformedAliasError reports which alias failed to parse and why.
type MalformedAliasError struct {
	Alias    string
	Segments int
}

func (e *MalformedAliasError) Error() string {
	return fmt.Sprintf("malformed alias %q: got %d segments, need at least %d",
		e.Alias, e.Segments, aliasMinSegments)
}

func (e *MalformedAliasError) Unwrap() error {
	return ErrMalformedAlias
}

// Alias is the structured form of an ad group label such as
// "CampaignX - Sub - US - v1 - High".
type Alias struct {
	Campaign string
	SubLabel string
	Country  string
	Version  string
	Priority string
}

// ParseAlias splits raw on AliasSeparator and names the positional segments.
// Segments beyond the fifth are ignored. Only the segment count decides whether
// an alias is malformed; empty segments parse as empty strings.
func ParseAlias(raw string) (Alias, error) {
	parts := strings.Split(raw, AliasSeparator)
	if len(parts) < aliasMinSegments {
		return Alias{}, &MalformedAliasError{Alias: raw, Segments: len(parts)}
	}

	return Alias{
		Campaign: parts[aliasCampaignIdx],
		SubLabel: parts[aliasSubLabelIdx],
		Country:  parts[aliasCountryIdx],
		Version:  parts[aliasVersionIdx],
		Priority: parts[aliasPriorityIdx],
	}, nil
}
