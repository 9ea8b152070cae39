package driver

import (
	"golang.org/x/sync/errgroup"

	"rustlex/internal/diag"
	"rustlex/internal/lexer"
	"rustlex/internal/source"
	"rustlex/internal/token"
)

// TokenizeResult bundles everything a consumer needs: the file set for
// position resolution, the scanned file, the token stream and the collected
// diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and scans it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return scanFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeBytes scans in-memory content (stdin, tests) under the given name.
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return scanFile(fs, fileID, maxDiagnostics)
}

// TokenizeAll scans several files concurrently, one scanner per file.
// Results keep the order of paths. The first load error aborts the batch.
func TokenizeAll(paths []string, maxDiagnostics int) ([]*TokenizeResult, error) {
	results := make([]*TokenizeResult, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := Tokenize(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	opts := lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Interner: source.NewInterner(),
	}
	tokens := lexer.Scan(file, opts)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
