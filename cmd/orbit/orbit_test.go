package main

import (
	"context"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/willbeason/folding/pkg/orbit"
)

func TestRunCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "orbit.png")

	cmd := mainCmd()
	cmd.SetArgs([]string{"--iterations", "100", "--size", "3", "--out", out})

	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != img.Bounds().Dy() {
		t.Errorf("got %v, want a square image", img.Bounds())
	}
}

func TestRunCmd_Invalid(t *testing.T) {
	dir := t.TempDir()

	tcs := []struct {
		name string
		args []string
		want error
	}{
		{name: "negative iterations", args: []string{"--iterations", "-1"}, want: orbit.ErrNegativeIterations},
		{name: "too many iterations", args: []string{"--iterations", "2000000"}},
		{name: "zero plot size", args: []string{"--plot-size", "0"}},
		{name: "extra argument", args: []string{"extra"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cmd := mainCmd()
			cmd.SetArgs(append(tc.args, "--out", filepath.Join(dir, "orbit.png")))
			cmd.SetErr(io.Discard)
			cmd.SetOut(io.Discard)

			err := cmd.ExecuteContext(context.Background())
			if err == nil {
				t.Fatal("got nil error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "orbit.png")); !os.IsNotExist(err) {
		t.Errorf("invalid runs wrote output: %v", err)
	}
}
