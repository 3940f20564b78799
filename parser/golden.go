package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/redneckbeard/stmtgen/stmt"
	"golang.org/x/tools/txtar"
)

// Case is a golden translation fixture stored as a txtar archive with an
// "input" file and either a "want" listing or an expected "error" message.
type Case struct {
	Name    string
	Comment string
	Input   string
	Want    string
	Error   string
}

func LoadCase(path string) (Case, error) {
	archive, err := txtar.ParseFile(path)
	if err != nil {
		return Case{}, err
	}
	c := Case{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Comment: strings.TrimSpace(string(archive.Comment)),
	}
	var hasInput bool
	for _, f := range archive.Files {
		switch f.Name {
		case "input":
			c.Input = string(f.Data)
			hasInput = true
		case "want":
			c.Want = string(f.Data)
		case "error":
			c.Error = strings.TrimSpace(string(f.Data))
		default:
			return Case{}, fmt.Errorf("%s: unexpected section %q", path, f.Name)
		}
	}
	if !hasInput {
		return Case{}, fmt.Errorf("%s: missing input section", path)
	}
	return c, nil
}

// LoadCases loads every .txtar fixture in dir, sorted by file name.
func LoadCases(dir string) ([]Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		return nil, err
	}
	cases := make([]Case, 0, len(paths))
	for _, path := range paths {
		c, err := LoadCase(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Check translates the case input with p. It returns the listing produced
// and a non-nil error describing any mismatch with the fixture.
func (c Case) Check(p *Parser) (string, error) {
	stmts, err := p.ParseString(c.Input)
	if c.Error != "" {
		if err == nil {
			return stmt.Format(stmts), fmt.Errorf("expected error %q but translation succeeded", c.Error)
		}
		if err.Error() != c.Error {
			return "", fmt.Errorf("expected error %q but got %q", c.Error, err)
		}
		return "", nil
	}
	if err != nil {
		return "", err
	}
	listing := stmt.Format(stmts)
	if listing != c.Want {
		return listing, fmt.Errorf("listing mismatch:\n%s", diffLines(c.Want, listing))
	}
	return listing, nil
}

func diffLines(want, got string) string {
	wantLines := strings.Split(strings.TrimSuffix(want, "\n"), "\n")
	gotLines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	var b strings.Builder
	n := len(wantLines)
	if len(gotLines) > n {
		n = len(gotLines)
	}
	for i := 0; i < n; i++ {
		var w, g string
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if w != g {
			fmt.Fprintf(&b, "%4d: want %-16q got %q\n", i+1, w, g)
		}
	}
	return b.String()
}
