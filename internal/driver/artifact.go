package driver

import (
	"path/filepath"
	"strings"

	"graviton/internal/ast"
	"graviton/internal/astcodec"
)

// ArtifactExt — расширение бинарных AST-артефактов.
const ArtifactExt = ".gast"

// ArtifactPath выводит путь артефакта из пути исходника: foo.grv -> foo.gast.
func ArtifactPath(srcPath string) string {
	base := strings.TrimSuffix(srcPath, SourceExt)
	return base + ArtifactExt
}

// WriteAST сериализует распарсенный модуль в бинарный артефакт.
func WriteAST(path string, b *ast.Builder, module ast.ModuleID) error {
	if filepath.Ext(path) == "" {
		path += ArtifactExt
	}
	return astcodec.WriteFile(path, b, module)
}

// ReadAST восстанавливает модуль из бинарного артефакта.
func ReadAST(path string) (*ast.Builder, ast.ModuleID, error) {
	return astcodec.ReadFile(path)
}
