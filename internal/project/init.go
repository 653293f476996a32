package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const manifestTemplate = `[package]
name = %q
version = "0.1.0"
entry = "main.grv"

[build]
source_dir = "src"
`

const entryTemplate = `import "std";

let greeting: Str = "hello, graviton";
print(greeting);
`

// Scaffold создаёт скелет нового проекта: graviton.toml и src/main.grv.
// Отказывается перезаписывать существующий манифест.
func Scaffold(dir, name string) error {
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		name = filepath.Base(abs)
	}

	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists", manifestPath)
	}

	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return err
	}

	manifest := fmt.Sprintf(manifestTemplate, name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return err
	}

	entryPath := filepath.Join(srcDir, "main.grv")
	if _, err := os.Stat(entryPath); err == nil {
		return nil // исходник уже есть, не трогаем
	}
	return os.WriteFile(entryPath, []byte(entryTemplate), 0o644)
}
