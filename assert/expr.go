package assert

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
)

type sourceFile struct {
	src  []byte
	fset *token.FileSet
	file *ast.File
	err  error
}

// sources caches parsed caller files by absolute path. Only failing
// assertions populate it.
var sources sync.Map

// callerExpression returns the source text of the first argument passed to
// the function named callee at the call site `depth` frames above its own
// caller. If the source cannot be read, it returns "file.go:line".
//
// Call sites are matched by the line of their opening parenthesis, which is
// the line the runtime reports for the call. With several matching calls on
// one line, the first one wins.
func callerExpression(depth int, callee string) string {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "<unknown>"
	}
	if expr, ok := expressionAt(file, line, callee); ok {
		return expr
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

func expressionAt(path string, line int, callee string) (string, bool) {
	sf := loadSource(path)
	if sf.err != nil {
		return "", false
	}
	expr, found := "", false
	ast.Inspect(sf.file, func(n ast.Node) bool {
		if found {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if len(call.Args) == 0 || calleeName(call.Fun) != callee {
			return true
		}
		if sf.fset.Position(call.Lparen).Line != line {
			return true
		}
		start := sf.fset.Position(call.Args[0].Pos()).Offset
		end := sf.fset.Position(call.Args[0].End()).Offset
		if start < 0 || end > len(sf.src) || start > end {
			return true
		}
		expr, found = string(sf.src[start:end]), true
		return false
	})
	return expr, found
}

func loadSource(path string) *sourceFile {
	if cached, ok := sources.Load(path); ok {
		return cached.(*sourceFile)
	}
	sf := &sourceFile{fset: token.NewFileSet()}
	sf.src, sf.err = os.ReadFile(path)
	if sf.err == nil {
		sf.file, sf.err = parser.ParseFile(sf.fset, path, sf.src, parser.SkipObjectResolution)
	}
	actual, _ := sources.LoadOrStore(path, sf)
	return actual.(*sourceFile)
}

// calleeName unwraps `IsTrue`, `assert.IsTrue` and `assert.IsNull[*T]`.
func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}
