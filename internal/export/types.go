package export

import (
	"fmt"
	"strings"
)

const Version = "1.0"

type ThemeExport struct {
	Version      string               `json:"version"`
	Name         string               `json:"name"`
	Font         string               `json:"font"`
	Colors       map[string]ColorData `json:"colors"`
	CustomColors []ColorData          `json:"custom_colors,omitempty"`
	CommonColors []ColorData          `json:"common_colors"`
	ColorMaps    []ColorMapData       `json:"color_maps"`
}

type ColorData struct {
	Name  string  `json:"name"`
	Hex   string  `json:"hex"`
	RGB   [3]int  `json:"rgb"`
	Alpha float64 `json:"alpha"`
}

type ColorMapData struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Colors    []string  `json:"colors"`
	Positions []float64 `json:"positions,omitempty"`
}

const (
	KindDiscrete   = "discrete"
	KindContinuous = "continuous"
	KindReversed   = "reversed"
)

type ConflictStrategy string

const (
	ConflictStrategyFail      ConflictStrategy = "fail"
	ConflictStrategySkip      ConflictStrategy = "skip"
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
)

func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch cs := ConflictStrategy(strings.ToLower(s)); cs {
	case ConflictStrategyFail, ConflictStrategySkip, ConflictStrategyOverwrite:
		return cs, nil
	case "":
		return ConflictStrategyFail, nil
	}
	return "", fmt.Errorf("unknown conflict strategy %q (want fail, skip or overwrite)", s)
}

type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMPLStyle Format = "mplstyle"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMPLStyle, FormatCSV, FormatMarkdown}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatMPLStyle, FormatCSV, FormatMarkdown:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}
