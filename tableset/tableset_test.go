package tableset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/divedeco"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))
	return fname
}

func usnavyData(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "usnavy", "data"))
	require.NoError(t, err)
	return dir
}

func TestLoadFile(t *testing.T) {
	data := usnavyData(t)
	dir := t.TempDir()
	fname := writeFile(t, dir, "rev7.yaml", `
name: copy-rev7
tables:
  nodeco: `+filepath.Join(data, "usnavy-air-nodeco-rev7.json")+`
  repetgroup: `+filepath.Join(data, "usnavy-air-repetgroup-rev7.json")+`
  rnt: `+filepath.Join(data, "usnavy-air-rnt-rev7.json")+`
  deco: `+filepath.Join(data, "usnavy-air-deco-rev7.json")+`
`)
	cfg, err := LoadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "copy-rev7", cfg.Name)
	assert.False(t, cfg.LegacyProfileSelection)
	assert.Empty(t, cfg.Options())

	planner, err := cfg.Planner()
	require.NoError(t, err)
	assert.Equal(t, "tables: copy-rev7", planner.Identifier)
	assert.Equal(t, uint16(232), planner.NoDecompressionLimit(35))
	assert.Equal(t, "D", planner.GroupLetter(divedeco.Dive{Depth: 35, BottomTime: 42}).Letter)
}

func TestRelativePaths(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "set.yaml", `
name: relative
tables:
  nodeco: nodeco.json
  repetgroup: sub/repet.json
  rnt: /abs/rnt.json
  deco: deco.json
`)
	cfg, err := LoadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nodeco.json"), cfg.Tables.NoDeco)
	assert.Equal(t, filepath.Join(dir, "sub", "repet.json"), cfg.Tables.RepetGroup)
	assert.Equal(t, "/abs/rnt.json", cfg.Tables.RNT)
}

func TestLoadFilesMerge(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()
	f1 := writeFile(t, base, "base.yaml", `
name: base
tables:
  nodeco: nodeco.json
  repetgroup: repet.json
  rnt: rnt.json
  deco: deco.json
`)
	f2 := writeFile(t, override, "override.yaml", `
name: patched
tables:
  deco: deco-legacy.json
legacyProfileSelection: true
`)
	cfg, err := LoadFiles(f1, f2)
	require.NoError(t, err)
	assert.Equal(t, "patched", cfg.Name)
	assert.Equal(t, filepath.Join(base, "nodeco.json"), cfg.Tables.NoDeco)
	assert.Equal(t, filepath.Join(override, "deco-legacy.json"), cfg.Tables.Deco)
	assert.True(t, cfg.LegacyProfileSelection)
	assert.Len(t, cfg.Options(), 1)

	f3 := writeFile(t, override, "strict.yaml", "legacyProfileSelection: false\n")
	cfg, err = LoadFiles(f1, f2, f3)
	require.NoError(t, err)
	assert.False(t, cfg.LegacyProfileSelection, "last file switches legacy selection off")
	assert.Empty(t, cfg.Options())
	assert.Equal(t, "patched", cfg.Name)

	f4 := writeFile(t, override, "rename.yaml", "name: renamed\n")
	cfg, err = LoadFiles(f1, f2, f4)
	require.NoError(t, err)
	assert.True(t, cfg.LegacyProfileSelection, "unset property keeps the earlier value")
}

func TestLoadFilesErrors(t *testing.T) {
	_, err := LoadFiles()
	assert.ErrorIs(t, err, errNoFilesToLoad)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	dir := t.TempDir()
	incomplete := writeFile(t, dir, "incomplete.yaml", `
name: incomplete
tables:
  nodeco: nodeco.json
`)
	_, err = LoadFile(incomplete)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RepetGroup")

	broken := writeFile(t, dir, "broken.yaml", "name: [unterminated\n")
	_, err = LoadFile(broken)
	assert.Error(t, err)
}

func TestPlannerLegacySelection(t *testing.T) {
	data := usnavyData(t)
	fname := writeFile(t, t.TempDir(), "legacy.yaml", `
name: legacy
tables:
  nodeco: `+filepath.Join(data, "usnavy-air-nodeco-rev7.json")+`
  repetgroup: `+filepath.Join(data, "usnavy-air-repetgroup-rev7.json")+`
  rnt: `+filepath.Join(data, "usnavy-air-rnt-rev7.json")+`
  deco: `+filepath.Join(data, "usnavy-air-deco-rev7.json")+`
legacyProfileSelection: true
`)
	cfg, err := LoadFile(fname)
	require.NoError(t, err)
	planner, err := cfg.Planner()
	require.NoError(t, err)
	assert.Equal(t, divedeco.SelectLegacy, planner.Selection())
}
