package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const childEnv = "GO_TORUS_RUN_MAIN"

// TestMainProcess runs main in a child process started by TestExitCodes
func TestMainProcess(t *testing.T) {
	if os.Getenv(childEnv) != "1" {
		t.Skip("only runs as a child of TestExitCodes")
	}
	os.Args = append([]string{"go-torus"}, strings.Fields(os.Getenv(childEnv+"_ARGS"))...)
	main()
	os.Exit(0)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	missingConfig := filepath.Join(dir, "config.json")
	common := "-config " + missingConfig + " -frame-rate 1ms -clear=false"

	tests := []struct {
		name     string
		args     string
		wantCode int
		frames   int
		stderr   string
	}{
		{
			name:     "step limit",
			args:     common + " -init glider -max-generations 2",
			wantCode: 0,
			frames:   3,
			stderr:   "Final stats: reached step 2",
		},
		{
			name:     "missing start file",
			args:     common + " -init file -start-file " + filepath.Join(dir, "start.txt"),
			wantCode: 1,
			stderr:   "unable to open",
		},
		{
			name:     "short start file",
			args:     common + " -init file -height 2 -width 2 -start-file " + writeStartFile(t, dir, "1 0 1"),
			wantCode: 1,
			stderr:   "only found 3 out of 4",
		},
		{
			name:     "invalid config",
			args:     common + " -height 0",
			wantCode: 1,
			stderr:   "invalid configuration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := exec.Command(os.Args[0], "-test.run=^TestMainProcess$")
			cmd.Env = append(os.Environ(), childEnv+"=1", childEnv+"_ARGS="+tt.args)
			cmd.Stdout, cmd.Stderr = &stdout, &stderr

			code := 0
			if err := cmd.Run(); err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("running child: %v", err)
				}
				code = exitErr.ExitCode()
			}

			if code != tt.wantCode {
				t.Errorf("exit code %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if n := strings.Count(stdout.String(), "cells alive on game step"); n != tt.frames {
				t.Errorf("rendered %d frames, want %d", n, tt.frames)
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func writeStartFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
