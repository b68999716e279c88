package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunPrintsVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "ideawatch dev") {
		t.Fatalf("unexpected version output %q", stdout.String())
	}
}

func TestRunJSONReport(t *testing.T) {
	sheetPath := writeFile(t, "sheet.yaml", "citizens:\n  - name: Alice\n    job: guard\n  - name: Bob\n")

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-format", "json", sheetPath}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v (stderr %s)", err, stderr.String())
	}

	var lines []struct {
		Name     string  `json:"name"`
		Job      string  `json:"job"`
		Survival float64 `json:"survival"`
		Defense  float64 `json:"defense"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &lines); err != nil {
		t.Fatalf("decode output: %v\n%s", err, stdout.String())
	}
	if len(lines) != 2 || lines[0].Name != "Alice" || lines[1].Name != "Bob" {
		t.Fatalf("unexpected lines %+v", lines)
	}
	if lines[0].Job != "Guard" || lines[0].Defense != 40 {
		t.Fatalf("unexpected guard line %+v", lines[0])
	}
}

func TestRunUsesCatalogOverrides(t *testing.T) {
	catalogPath := writeFile(t, "items.yaml", "Lucky Amulet: {defense: 7}\n")
	sheetPath := writeFile(t, "sheet.yaml", "citizens:\n  - name: Alice\n    items: {lucky amulet: 1}\n")

	var stdout, stderr bytes.Buffer
	args := []string{"-format", "csv", "-catalog", catalogPath, sheetPath}
	if err := run(context.Background(), args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "Alice,,Other,None,false,0.92,0.92,17,") {
		t.Fatalf("unexpected csv:\n%s", stdout.String())
	}
}

func TestRunEnvironmentSetsFormat(t *testing.T) {
	t.Setenv("IDEAWATCH_FORMAT", "csv")
	sheetPath := writeFile(t, "sheet.yaml", "citizens:\n  - name: Alice\n")

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{sheetPath}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "name,tag,job") {
		t.Fatalf("expected csv output, got:\n%s", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	sheetPath := writeFile(t, "sheet.yaml", "citizens:\n  - name: Alice\n    statuses: [sleepy]\n")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no sheet", args: nil, want: "expected exactly one sheet file"},
		{name: "bad format", args: []string{"-format", "xml", sheetPath}, want: "unsupported format"},
		{name: "missing sheet", args: []string{filepath.Join(t.TempDir(), "nope.yaml")}, want: "open sheet"},
		{name: "unknown status", args: []string{sheetPath}, want: `unknown status "sleepy"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tc.args, &stdout, &stderr)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
