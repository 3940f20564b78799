package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestSubcommandsReportErrorsOnce(t *testing.T) {
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		if !sub.SilenceErrors || !sub.SilenceUsage {
			t.Errorf("%s: expected errors and usage to be silenced after printing the failure", sub.Name())
		}
	}
}

func TestWriteHighlighted(t *testing.T) {
	defer func(noColor bool) { color.NoColor = noColor }(color.NoColor)
	style = "monokai"
	src := "int x = 5;\n"

	color.NoColor = true
	var plain bytes.Buffer
	if err := writeHighlighted(&plain, src, false); err != nil {
		t.Fatal(err)
	}
	if plain.String() != src {
		t.Errorf("expected uncolored source %q, got %q", src, plain.String())
	}

	color.NoColor = false
	for _, listing := range []bool{false, true} {
		var colored bytes.Buffer
		text := src
		if listing {
			text = "scope global\n"
		}
		if err := writeHighlighted(&colored, text, listing); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(colored.String(), "\x1b[") {
			t.Errorf("listing=%v: expected escape codes, got %q", listing, colored.String())
		}
	}
}
