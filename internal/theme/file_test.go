package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotthemes/internal/colors"
)

const oceanYAML = `name: ocean
font: Fira Sans
colors:
  background1: {name: white, r: 255, g: 255, b: 255}
  background2: {name: foam, r: 235, g: 244, b: 247}
  text1: {name: slate, r: 80, g: 90, b: 100}
  text2: {name: deep, r: 10, g: 60, b: 110}
  accent1: {name: reef, r: 0, g: 150, b: 170}
  accent2: {name: kelp, r: 60, g: 120, b: 60}
  accent3: {name: sand, r: 220, g: 200, b: 140}
  accent4: {name: coral, r: 240, g: 120, b: 100}
  accent5: {name: mist, r: 170, g: 180, b: 190}
  accent6: {name: abyss, r: 20, g: 30, b: 70}
  default_red: {name: coral, r: 240, g: 120, b: 100}
  default_green: {name: kelp, r: 60, g: 120, b: 60}
  default_blue: {name: deep, r: 10, g: 60, b: 110}
  default_yellow: {name: sand, r: 220, g: 200, b: 140}
custom_colors:
  - {name: pearl, r: 240, g: 234, b: 214, alpha: 0.5}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ocean.yaml", oceanYAML)

	th, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ocean", th.Name())
	assert.Equal(t, "Fira Sans", th.Font())

	spec := th.Spec()
	assert.Equal(t, "#0096AA", spec.Accent1.Hex())
	assert.Equal(t, "abyss", spec.Accent6.Name())

	custom := th.CustomColors()
	require.Len(t, custom, 1)
	assert.Equal(t, 0.5, custom[0].Alpha())

	_, ok := th.ColorMap("ocean:c_blue_yellow")
	assert.True(t, ok)
}

func TestLoadFileMissingSlot(t *testing.T) {
	body := `name: partial
colors:
  background1: {name: white, r: 255, g: 255, b: 255}
`
	path := writeFile(t, t.TempDir(), "partial.yaml", body)

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "background2")
}

func TestLoadFileBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			name: "unknown slot",
			body: "name: x\ncolors:\n  accent9: {name: a, r: 1, g: 1, b: 1}\n",
			want: ErrUnknownSlot,
		},
		{
			name: "channel out of range",
			body: "name: x\ncolors:\n  accent1: {name: a, r: 300, g: 1, b: 1}\n",
			want: colors.ErrChannelRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.yaml", tt.body)
			_, err := LoadFile(path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ocean.yaml", oceanYAML)
	writeFile(t, dir, "notes.txt", "not a theme")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	themes, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "ocean", themes[0].Name())

	themes, err = LoadDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, themes)
}

func TestManagerLoadInto(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ocean.yml", oceanYAML)

	m := NewManager(zerolog.Nop())
	n, err := m.LoadInto(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, m.ThemeExists("ocean"))

	_, err = m.LoadInto(dir)
	assert.ErrorIs(t, err, ErrThemeExists)
}

func TestLoadDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a-broken.yaml", "name: [unterminated")
	writeFile(t, dir, "ocean.yaml", oceanYAML)

	themes, err := LoadDir(dir)
	assert.Error(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "ocean", themes[0].Name())
}

func TestManagerLoadIntoCountsRegistered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a-ocean.yaml", oceanYAML)
	writeFile(t, dir, "b-ocean-copy.yaml", oceanYAML)
	writeFile(t, dir, "c-broken.yaml", "name: [unterminated")

	m := NewManager(zerolog.Nop())
	n, err := m.LoadInto(dir)
	assert.ErrorIs(t, err, ErrThemeExists)
	assert.Equal(t, 1, n)
	assert.True(t, m.ThemeExists("ocean"))
}

func TestThemeFileInvertsSpec(t *testing.T) {
	th := templateTheme(t)

	f := th.File()
	assert.Len(t, f.Colors, len(SlotNames()))

	spec, err := f.Spec()
	require.NoError(t, err)
	assert.Equal(t, th.Spec(), spec)
}
