package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// installExtension writes an executable shell script named hac-<name> in a
// directory added to PATH.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in tests")
	}
	dir := t.TempDir()
	filename := filepath.Join(dir, "hac-"+name)
	if err := os.WriteFile(filename, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write extension: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunExtension(t *testing.T) {
	installExtension(t, "hello", `echo "args=$*"
echo "HAC_DATASET=$HAC_DATASET"
echo "HAC_SITE=$HAC_SITE"
echo "HAC_PLAIN=$HAC_PLAIN"
echo "HAC_VERBOSE=$HAC_VERBOSE"
`)
	setGlobal(t, datasetFile, "/data/hmda.csv")
	setGlobal(t, siteFile, "/data/site.yaml")
	setGlobal(t, plain, true)
	setGlobal(t, Verbose, false)

	var found bool
	var code int
	out := captureStdout(t, func() {
		found, code = RunExtension("hello", []string{"a", "b"})
	})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0", found, code)
	}
	for _, want := range []string{
		"args=a b",
		"HAC_DATASET=/data/hmda.csv",
		"HAC_SITE=/data/site.yaml",
		"HAC_PLAIN=true",
		"HAC_VERBOSE=false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, out)
		}
	}
}

func TestRunExtension_ExitCode(t *testing.T) {
	installExtension(t, "fail", "exit 3\n")
	found, code := RunExtension("fail", nil)
	if !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("nope", nil); found {
		t.Error("RunExtension() found an extension that does not exist")
	}
}
