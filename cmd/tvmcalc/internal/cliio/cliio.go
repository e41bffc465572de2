// Package cliio holds the input/output plumbing shared by the tvmcalc
// subcommands: cash-flow parsing and result rendering.
package cliio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ParseFlows parses a comma-separated cash-flow list, e.g. "-100,40,40,40".
// When spec is "-", flows are read from r instead, one value per line or
// whitespace/comma separated.
func ParseFlows(spec string, r io.Reader) ([]float64, error) {
	if spec == "-" {
		return readFlows(r)
	}
	return splitFlows(spec, ",")
}

func readFlows(r io.Reader) ([]float64, error) {
	var flows []float64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		part, err := splitFlows(strings.ReplaceAll(line, ",", " "), " ")
		if err != nil {
			return nil, err
		}
		flows = append(flows, part...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cash flows: %w", err)
	}
	return flows, nil
}

func splitFlows(s, sep string) ([]float64, error) {
	var flows []float64
	for _, tok := range strings.Split(s, sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("bad cash flow %q", tok)
		}
		flows = append(flows, v)
	}
	return flows, nil
}

// WriteResult renders a subcommand result either as indented JSON or through
// the given plain-text formatter.
func WriteResult(w io.Writer, asJSON bool, v any, plain func(io.Writer)) error {
	if !asJSON {
		plain(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
