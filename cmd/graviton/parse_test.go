package main

import (
	"path/filepath"
	"testing"
)

func TestArtifactOutPath(t *testing.T) {
	tests := []struct {
		outDir, srcRoot, srcPath, want string
	}{
		{
			outDir:  "build",
			srcRoot: "src",
			srcPath: filepath.Join("src", "main.grv"),
			want:    filepath.Join("build", "main.gast"),
		},
		{
			outDir:  "out",
			srcRoot: "proj",
			srcPath: filepath.Join("proj", "nested", "lib.grv"),
			want:    filepath.Join("out", "nested", "lib.gast"),
		},
	}
	for _, tt := range tests {
		got, err := artifactOutPath(tt.outDir, tt.srcRoot, tt.srcPath)
		if err != nil {
			t.Fatalf("artifactOutPath(%q, %q, %q): %v", tt.outDir, tt.srcRoot, tt.srcPath, err)
		}
		if got != tt.want {
			t.Errorf("artifactOutPath(%q, %q, %q): got %q, want %q",
				tt.outDir, tt.srcRoot, tt.srcPath, got, tt.want)
		}
	}
}
