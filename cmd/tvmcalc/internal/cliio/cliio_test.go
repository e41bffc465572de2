package cliio_test

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/mfigueroa/finlib/cmd/tvmcalc/internal/cliio"
)

func TestParseFlows_CommaSeparated(t *testing.T) {
	t.Parallel()

	flows, err := cliio.ParseFlows("-100, 40,40 ,40", nil)
	if err != nil {
		t.Fatalf("ParseFlows error: %v", err)
	}
	want := []float64{-100, 40, 40, 40}
	if !reflect.DeepEqual(flows, want) {
		t.Fatalf("got %v, want %v", flows, want)
	}
}

func TestParseFlows_Stdin(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("-100\n40, 40\n\n40\n")
	flows, err := cliio.ParseFlows("-", in)
	if err != nil {
		t.Fatalf("ParseFlows error: %v", err)
	}
	want := []float64{-100, 40, 40, 40}
	if !reflect.DeepEqual(flows, want) {
		t.Fatalf("got %v, want %v", flows, want)
	}
}

func TestParseFlows_Bad(t *testing.T) {
	t.Parallel()

	if _, err := cliio.ParseFlows("-100,abc", nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWriteResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := cliio.WriteResult(&buf, true, map[string]float64{"npv": 1.5}, func(io.Writer) {
		t.Fatal("plain formatter must not run in JSON mode")
	})
	if err != nil {
		t.Fatalf("WriteResult error: %v", err)
	}
	if !strings.Contains(buf.String(), `"npv": 1.5`) {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}

	buf.Reset()
	err = cliio.WriteResult(&buf, false, nil, func(w io.Writer) {
		io.WriteString(w, "plain\n")
	})
	if err != nil {
		t.Fatalf("WriteResult error: %v", err)
	}
	if buf.String() != "plain\n" {
		t.Fatalf("unexpected plain output: %q", buf.String())
	}
}
