package driver

import (
	"fortio.org/safecast"

	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/lexer"
	"graviton/internal/parser"
	"graviton/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Module  ast.ModuleID
	Bag     *diag.Bag
}

// Parse загружает один файл с диска и разбирает его до AST.
// Best-effort: модуль возвращается даже при синтаксических ошибках.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return ParseFile(fs, fileID, nil, maxDiagnostics)
}

// ParseFile разбирает уже загруженный файл. interner может быть nil —
// тогда builder получит собственный.
func ParseFile(fs *source.FileSet, fileID source.FileID, interner *source.Interner, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	builder := ast.NewBuilder(ast.Hints{}, interner)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseModule(lx, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Module:  result.Module,
		Bag:     bag,
	}, nil
}
