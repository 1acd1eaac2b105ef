package model

import (
	"encoding/json"
	"errors"
)

// DataSource identifies which uploaded dataset(s) drive a view.
type DataSource int

const (
	SourceNone DataSource = iota
	SourceMyAffiliate
	SourceDynamicWorks
	SourceCombined
)

// ErrUnknownDataSource is returned when parsing an unrecognised source name.
var ErrUnknownDataSource = errors.New("model: unknown data source")

var dataSourceNames = map[DataSource]string{
	SourceNone:         "",
	SourceMyAffiliate:  "myAffiliate",
	SourceDynamicWorks: "dynamicWorks",
	SourceCombined:     "combined",
}

// ParseDataSource parses a wire name. The empty string parses to SourceNone.
func ParseDataSource(s string) (DataSource, error) {
	switch s {
	case "":
		return SourceNone, nil
	case "myAffiliate":
		return SourceMyAffiliate, nil
	case "dynamicWorks":
		return SourceDynamicWorks, nil
	case "combined":
		return SourceCombined, nil
	default:
		return SourceNone, ErrUnknownDataSource
	}
}

func (d DataSource) String() string {
	return dataSourceNames[d]
}

// IsUploadSource reports whether d names a single upstream provider.
func (d DataSource) IsUploadSource() bool {
	return d == SourceMyAffiliate || d == SourceDynamicWorks
}

// MarshalJSON encodes SourceNone as null and the rest by wire name.
func (d DataSource) MarshalJSON() ([]byte, error) {
	if d == SourceNone {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a wire name or null.
func (d *DataSource) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = SourceNone
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseDataSource(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
