package dbgprint

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// declaredConsts returns the package-level constants declared in file.
func declaredConsts(t *testing.T, file string) map[string]bool {
	f, err := parser.ParseFile(token.NewFileSet(), file, nil, 0)
	require.NoError(t, err)
	out := map[string]bool{}
	for _, d := range f.Decls {
		g, ok := d.(*ast.GenDecl)
		if !ok || g.Tok != token.CONST {
			continue
		}
		for _, spec := range g.Specs {
			for _, name := range spec.(*ast.ValueSpec).Names {
				out[name.Name] = true
			}
		}
	}
	return out
}

// Each target file may only offer the transports its chip has, so that
// selecting an unavailable one fails to compile.
func TestTargetCapabilities(t *testing.T) {
	files, err := filepath.Glob("target-esp*.go")
	require.NoError(t, err)
	require.Len(t, files, 8)

	for _, file := range files {
		name := strings.TrimSuffix(strings.TrimPrefix(file, "target-"), ".go")
		chip, err := ParseChip(name)
		require.NoError(t, err, file)
		m, err := RegisterMapFor(chip)
		require.NoError(t, err, file)

		consts := declaredConsts(t, file)
		assert.True(t, consts["targetChip"], file)
		assert.Equal(t, m.HasSerialJTAG(), consts["targetSerialJTAG"], "%s: targetSerialJTAG", file)
		assert.Equal(t, m.HasROMUART() || m.HasRegisterUART(), consts["targetUART"], "%s: targetUART", file)
	}

	other := declaredConsts(t, "target-other.go")
	assert.False(t, other["targetSerialJTAG"])
	assert.False(t, other["targetUART"])
}

func TestSelectFilesRequireTargetCapability(t *testing.T) {
	for file, symbol := range map[string]string{
		"select-jtag.go": "targetSerialJTAG",
		"select-uart.go": "targetUART",
	} {
		f, err := parser.ParseFile(token.NewFileSet(), file, nil, 0)
		require.NoError(t, err)
		found := false
		ast.Inspect(f, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok && id.Name == symbol {
				found = true
			}
			return true
		})
		assert.True(t, found, "%s must reference %s", file, symbol)
	}
}
