// Package cliio provides output formatting for the ethcal command (text, JSON, YAML).
package cliio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format for CLI commands.
type Format string

const (
	// FormatText prints one converted value per line.
	FormatText Format = "text"
	// FormatJSON is the JSON output format.
	FormatJSON Format = "json"
	// FormatYAML is the YAML output format.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a string into a Format, returning an error for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q, must be one of: text, json, yaml", s)
	}
}

// Result is one conversion as printed by the CLI.
type Result struct {
	// Input is the value as given on the command line or read from the input.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`
	// Line is the input line number for batch conversions.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Ethiopian is the Ethiopian date, with a time of day when one was kept.
	Ethiopian string `json:"ethiopian,omitempty" yaml:"ethiopian,omitempty"`
	// Gregorian is the Gregorian date or RFC 3339 timestamp.
	Gregorian string `json:"gregorian,omitempty" yaml:"gregorian,omitempty"`
	// Output is the converted value, the one printed in text format.
	Output string `json:"-" yaml:"-"`
	// Error is the conversion error, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// WriteResult writes a single result in the given format.
func WriteResult(writer io.Writer, format Format, result Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(writer, result)
	case FormatYAML:
		return writeYAML(writer, result)
	default:
		return writeText(writer, []Result{result})
	}
}

// WriteResults writes a list of results in the given format.
func WriteResults(writer io.Writer, format Format, results []Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(writer, results)
	case FormatYAML:
		return writeYAML(writer, results)
	default:
		return writeText(writer, results)
	}
}

func writeText(writer io.Writer, results []Result) error {
	for _, result := range results {
		line := result.Output
		if result.Error != "" {
			line = "error: " + result.Error
			if result.Line > 0 {
				line = fmt.Sprintf("line %d: %s", result.Line, line)
			}
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(writer io.Writer, v any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(writer io.Writer, v any) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
