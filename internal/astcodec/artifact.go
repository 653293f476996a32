package astcodec

import (
	"os"
	"path/filepath"

	"graviton/internal/ast"
)

// WriteFile атомарно записывает артефакт модуля: сначала во временный файл
// рядом с целевым, затем rename.
func WriteFile(path string, b *ast.Builder, module ast.ModuleID) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "tmp-*.gast")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := Encode(f, b, module); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// ReadFile читает артефакт с диска и восстанавливает модуль.
func ReadFile(path string) (*ast.Builder, ast.ModuleID, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, ast.NoModuleID, err
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}
