package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// ffmpegStub copies the file after -i to the last argument. Inputs whose name
// contains "fail" exit 1 without output, inputs named like "slow" hang until
// killed, and -n refuses an existing output.
const ffmpegStub = `#!/bin/sh
in=""
prev=""
last=""
for a in "$@"; do
	if [ "$prev" = "-i" ]; then in="$a"; fi
	prev="$a"
	last="$a"
done
case "$(basename "$in")" in
*fail*) exit 1 ;;
*slow*) exec sleep 30 ;;
esac
if [ "$1" = "-n" ] && [ -e "$last" ]; then exit 1; fi
cp "$in" "$last"
`

// cwebpStub copies the positional input to the path after -o. Inputs whose
// name contains "fail" exit 1 without output.
const cwebpStub = `#!/bin/sh
in=""
out=""
prev=""
for a in "$@"; do
	if [ "$prev" = "-o" ]; then
		out="$a"
	elif [ "$prev" != "-q" ]; then
		case "$a" in -*) ;; *) in="$a" ;; esac
	fi
	prev="$a"
done
case "$(basename "$in")" in *fail*) exit 1 ;; esac
cp "$in" "$out"
`

// FFmpegStub writes a fake ffmpeg into a temp directory and returns its path.
func FFmpegStub(t testing.TB) string {
	t.Helper()
	return writeStub(t, "ffmpeg", ffmpegStub)
}

// CwebpStub writes a fake cwebp into a temp directory and returns its path.
func CwebpStub(t testing.TB) string {
	t.Helper()
	return writeStub(t, "cwebp", cwebpStub)
}

func writeStub(t testing.TB, name, script string) string {
	t.Helper()

	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}
