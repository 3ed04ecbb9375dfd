package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestGoldenEndToEnd packs a proof source and its expected output
// substrings into one txtar fixture file, so the CLI behavior and its
// golden expectation can never drift apart in separate files.
func TestGoldenEndToEnd(t *testing.T) {
	archivePath := filepath.Join("..", "..", "tests", "testdata", "cli_modus_ponens.txtar")
	ar, err := txtar.ParseFile(archivePath)
	if err != nil {
		t.Fatalf("parsing %s: %v", archivePath, err)
	}

	var proofSrc, want []byte
	for _, f := range ar.Files {
		switch f.Name {
		case "proof.fitch":
			proofSrc = f.Data
		case "want.txt":
			want = f.Data
		}
	}
	if proofSrc == nil || want == nil {
		t.Fatalf("fixture %s missing proof.fitch or want.txt", archivePath)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "proof.fitch")
	if err := os.WriteFile(path, proofSrc, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}

	for _, line := range strings.Split(strings.TrimSpace(string(want)), "\n") {
		if !strings.Contains(stdout.String(), line) {
			t.Errorf("stdout missing expected substring %q\ngot:\n%s", line, stdout.String())
		}
	}
}
