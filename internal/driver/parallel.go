package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"graviton/internal/ast"
	"graviton/internal/diag"
	"graviton/internal/lexer"
	"graviton/internal/parser"
	"graviton/internal/source"
	"graviton/internal/token"
)

// SourceExt — расширение исходных файлов.
const SourceExt = ".grv"

// TokenizeDirResult — результат токенизации одного файла директории.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult — результат парсинга одного файла директории.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	Module  ast.ModuleID
	Bag     *diag.Bag
}

// listSourceFiles возвращает отсортированный список всех *.grv файлов.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.grv файлы директории параллельно.
// Каждый файл — независимая единица со своим Bag; порядок результатов
// совпадает с отсортированным списком путей.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs, loadErrors := preloadFiles(fileSet, files)

	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(loadDiagnostic(loadErr))
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			lx := lexer.New(file, lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})

			var tokens []token.Token
			for {
				tok := lx.Next()
				tokens = append(tokens, tok)
				if tok.Kind == token.EOF {
					break
				}
			}

			// индекс i уникален для каждой горутины, мьютекс не нужен
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir парсит все *.grv файлы директории параллельно. Builder у каждого
// файла свой, interner — общий (он потокобезопасен).
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, *source.Interner, []ParseDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), source.NewInterner(), nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs, loadErrors := preloadFiles(fileSet, files)

	interner := source.NewInterner()

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("maxDiagnostics overflow: %w", err)
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(loadDiagnostic(loadErr))
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			builder := ast.NewBuilder(ast.Hints{}, interner)
			lx := lexer.New(file, lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})

			result := parser.ParseModule(lx, builder, parser.Options{
				Reporter:  diag.BagReporter{Bag: bag},
				MaxErrors: maxErrors,
			})

			results[i] = ParseDirResult{
				Path:    path,
				FileID:  fileID,
				Builder: builder,
				Module:  result.Module,
				Bag:     bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, interner, results, err
	}
	return fileSet, interner, results, nil
}

// preloadFiles загружает файлы последовательно (FileSet.Add не потокобезопасен);
// ошибки загрузки откладываются до фазы обработки.
func preloadFiles(fileSet *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileIDs, loadErrors
}

func jobLimit(jobs, nfiles int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return min(jobs, nfiles)
}

func loadDiagnostic(err error) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
		Primary:  source.Span{},
	}
}
