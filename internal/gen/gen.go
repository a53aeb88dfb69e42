// Package gen renders the label currency tables from the embedded asset
// list. The keigen tool drives it.
package gen

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"go/format"
	"hash"
	"os"
	"path/filepath"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/keisan/internal/hashio"
	"github.com/robotomize/keisan/internal/strutil"
)

const AssetsCurrenciesFile = "assets/currencies.json"

const SuffixGenFileName = "_gen.go"

const (
	symbolTemplate   = "symbol.tmpl"
	currencyTemplate = "currency.tmpl"
	nameTemplate     = "name.tmpl"
)

// template name -> generated file name without suffix
var genFileNames = map[string]string{
	symbolTemplate:   "symbol",
	currencyTemplate: "currency",
	nameTemplate:     "name",
}

var ErrHashingContentEqual = errors.New("hash of the generated file is equivalent to the previous version")

var (
	//go:embed templates/*.tmpl
	templates embed.FS
	//go:embed assets
	assets embed.FS
)

// Currency is one row of the embedded asset list
type Currency struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"removeBrackets": strutil.RemoveContentIntoBrackets,
		"toCamelCase":    strutil.CamelCase,
	}
}

// Generate renders every label table file into targetDir. A file whose
// content hash equals the existing version is left untouched and reported
// through ErrHashingContentEqual; per-file results are collected into a
// multierror.
func Generate(targetDir string, hasher func() hash.Hash) error {
	b, err := assets.ReadFile(AssetsCurrenciesFile)
	if err != nil {
		return fmt.Errorf("read asset: %w", err)
	}

	var list []Currency
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("unmarshal asset: %w", err)
	}

	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	hashFunc := hashio.SumFunc(hasher)

	var merr *multierror.Error
	for tmplName, fileName := range genFileNames {
		path := filepath.Join(targetDir, fileName+SuffixGenFileName)
		if err := generateFile(tmpl, tmplName, path, list, hashFunc); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", fileName, err))
		}
	}

	return merr.ErrorOrNil()
}

func generateFile(
	tmpl *template.Template,
	tmplName, path string,
	list []Currency,
	hashFunc hashio.HashFunc,
) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, tmplName, list); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format source: %w", err)
	}

	newSum, err := hashFunc(formatted)
	if err != nil {
		return fmt.Errorf("hash content: %w", err)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	// a missing previous version is fine, the file is simply written
	if prevSum, err := hashio.SumFile(os.DirFS(dir), base, hashFunc); err == nil && bytes.Equal(prevSum, newSum) {
		return ErrHashingContentEqual
	}

	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
