// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-statviz/tableio"
)

// writeData writes a small CSV data set to dir and returns its path.
func writeData(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("height,weight,age,team\n")
	for i := 0; i < 30; i++ {
		weight := fmt.Sprint(50 + (i*7)%40)
		if i%6 == 0 {
			weight = "NA"
		}
		fmt.Fprintf(&b, "%d,%s,%d,%s\n", 150+(i*13)%45, weight, 20+i%15, []string{"red", "blue", "green"}[i%3])
	}
	path := filepath.Join(dir, "people.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCharts(t *testing.T) {
	dir := t.TempDir()
	data := writeData(t, dir)

	for _, args := range [][]string{
		{"kde", "-x", "height"},
		{"kde", "--all", "--title", "everything"},
		{"kde-by", "-x", "height", "-x", "age", "-c", "team", "--rows", "2"},
		{"regression", "-x", "height", "-y", "weight"},
		{"bar", "-x", "team", "-y", "weight"},
		{"scatter", "-x", "height", "-y", "weight", "-c", "team"},
		{"box", "-x", "weight", "-y", "team"},
		{"violin", "-x", "age", "-y", "team", "--palette", "Set2"},
		{"missing", "--table-order"},
		{"waffle", "-x", "team", "--rows", "5", "--cols", "6"},
	} {
		out := filepath.Join(dir, args[0]+".svg")
		full := append([]string{args[0], "-i", data, "-o", out}, args[1:]...)
		if _, stderr, err := run(t, full...); err != nil {
			t.Errorf("%v: %v\n%s", args, err, stderr)
			continue
		}
		svg, err := os.ReadFile(out)
		if err != nil {
			t.Errorf("%v: %v", args, err)
			continue
		}
		if !bytes.Contains(svg, []byte("<svg")) {
			t.Errorf("%v: output is not SVG", args)
		}
	}
}

func TestChartStdout(t *testing.T) {
	data := writeData(t, t.TempDir())
	stdout, _, err := run(t, "box", "-i", data, "-x", "height")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "<svg") {
		t.Errorf("want SVG on stdout; got %.100q", stdout)
	}
}

func TestChartErrors(t *testing.T) {
	dir := t.TempDir()
	data := writeData(t, dir)
	out := filepath.Join(dir, "out.svg")

	for _, args := range [][]string{
		{"kde", "-o", out, "-x", "height"},
		{"kde", "-i", data, "-o", out, "-x", "nope"},
		{"regression", "-i", data, "-o", out, "-x", "height", "-x", "age", "-y", "weight"},
		{"bar", "-i", data, "-o", out, "-x", "team", "-y", "team"},
		{"kde", "-i", filepath.Join(dir, "missing.csv"), "-x", "height"},
		{"kde", "-i", data, "-o", out, "-x", "height", "extra"},
		{"--style", filepath.Join(dir, "missing.toml"), "kde", "-i", data, "-x", "height"},
	} {
		if _, _, err := run(t, args...); err == nil {
			t.Errorf("%v: want error", args)
		}
	}
}

func TestStyleFlag(t *testing.T) {
	dir := t.TempDir()
	data := writeData(t, dir)
	style := filepath.Join(dir, "style.toml")
	if err := os.WriteFile(style, []byte("palette = \"Dark2\"\nfont_size = 9\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, stderr, err := run(t, "--style", style, "-v", "kde", "-i", data, "-x", "age", "-o", filepath.Join(dir, "a.png")); err != nil {
		t.Fatalf("%v\n%s", err, stderr)
	} else if !strings.Contains(stderr, "loaded style") {
		t.Errorf("want debug log of the style; got %q", stderr)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("palette = \"NoSuchPalette\"\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "--style", bad, "kde", "-i", data, "-x", "age"); err == nil {
		t.Errorf("want error for unknown palette")
	}
}

func TestColumns(t *testing.T) {
	data := writeData(t, t.TempDir())
	stdout, _, err := run(t, "columns", "-i", data)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) < 5 {
		t.Fatalf("want header and 4 columns; got:\n%s", stdout)
	}
	for _, want := range [][]string{
		{"column", "type", "kind", "missing"},
		{"height", "float64", "numeric", "0"},
		{"weight", "float64", "numeric", "5"},
		{"age", "float64", "numeric", "0"},
		{"team", "string", "text", "0"},
	} {
		found := false
		for _, line := range lines {
			if sameFields(line, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("no line %v in:\n%s", want, stdout)
		}
	}
}

func sameFields(line string, want []string) bool {
	f := strings.Fields(line)
	if len(f) != len(want) {
		return false
	}
	for i := range f {
		if f[i] != want[i] {
			return false
		}
	}
	return true
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	data := writeData(t, dir)
	out := filepath.Join(dir, "people.xlsx")
	if _, stderr, err := run(t, "convert", "-i", data, "-o", out, "--output-sheet", "people"); err != nil {
		t.Fatalf("%v\n%s", err, stderr)
	}
	tab, err := tableio.ReadXLSX(out, "people")
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 30 || len(tab.Columns()) != 4 {
		t.Errorf("want 30x4 table; got %dx%d", tab.Len(), len(tab.Columns()))
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	data := writeData(t, dir)
	script := fmt.Sprintf(`# charts for the report
vizplot kde -i %[1]q -o %[2]q -x height

box -i %[1]q -o %[3]q -x weight -y team --title "Weight by team"
`, data, filepath.Join(dir, "kde.svg"), filepath.Join(dir, "box weight.svg"))
	path := filepath.Join(dir, "charts.txt")
	if err := os.WriteFile(path, []byte(script), 0666); err != nil {
		t.Fatal(err)
	}

	if _, stderr, err := run(t, "batch", path); err != nil {
		t.Fatalf("%v\n%s", err, stderr)
	}
	for _, name := range []string{"kde.svg", "box weight.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("batch did not write %s: %v", name, err)
		}
	}
}

func TestBatchErrors(t *testing.T) {
	dir := t.TempDir()
	data := writeData(t, dir)
	for _, script := range []string{
		fmt.Sprintf("kde -i %q -x nope\n", data),
		"kde -i 'unterminated\n",
		"batch other.txt\n",
	} {
		path := filepath.Join(dir, "script.txt")
		if err := os.WriteFile(path, []byte(script), 0666); err != nil {
			t.Fatal(err)
		}
		_, _, err := run(t, "batch", path)
		if err == nil {
			t.Errorf("script %q: want error", script)
		} else if !strings.Contains(err.Error(), "script.txt:1:") {
			t.Errorf("script %q: want line number in error; got %v", script, err)
		}
	}
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	var errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"kde", "-i", filepath.Join(dir, "absent.csv"), "-x", "a"})
	root.SetOut(io.Discard)
	root.SetErr(&errOut)
	if code := execute(context.Background(), root); code != 1 {
		t.Errorf("want exit code 1; got %d", code)
	}
	if !strings.Contains(errOut.String(), "absent.csv") || !strings.Contains(errOut.String(), "vizplot") {
		t.Errorf("want error logged by vizplot; got %q", errOut.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	script := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(script, []byte("columns -i x.csv\n"), 0666); err != nil {
		t.Fatal(err)
	}
	root = newRootCmd()
	root.SetArgs([]string{"batch", script})
	root.SetErr(io.Discard)
	if code := execute(ctx, root); code != 130 {
		t.Errorf("want exit code 130 when canceled; got %d", code)
	}
}

func TestStdinInput(t *testing.T) {
	const csv = "a,b\n1,x\n2,y\n3,x\n"

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"kde", "-i", "-", "-x", "a"})
	root.SetIn(strings.NewReader(csv))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "<svg") {
		t.Errorf("want SVG on stdout; got %.100q", out.String())
	}

	// Lines of a batch script read the batch command's input.
	dir := t.TempDir()
	script := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(script, []byte("columns -i -\n"), 0666); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	root = newRootCmd()
	root.SetArgs([]string{"batch", script})
	root.SetIn(strings.NewReader(csv))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range [][]string{{"a", "float64", "numeric", "0"}, {"b", "string", "text", "0"}} {
		found := false
		for _, line := range strings.Split(out.String(), "\n") {
			if sameFields(line, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("no line %v in:\n%s", want, out.String())
		}
	}
}
