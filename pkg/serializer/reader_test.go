package serializer

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipemd/recipemd/pkg/quantity"
	"github.com/recipemd/recipemd/pkg/recipe"
)

func TestReaderRejectsTableFormat(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)
}

func TestReaderRejectsUnknownFormat(t *testing.T) {
	_, err := NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestReaderDeserializeJSON(t *testing.T) {
	src := `{"preface":"# T\n\n## Ingredients\n\n","ingredients":[{"indent":"","quantity":{"type":"volume","quarterTeaspoons":192},"name":"flour\n"}],"instructions":""}`
	r, err := NewReader(FormatJSON, strings.NewReader(src))
	require.NoError(t, err)

	var got recipe.Recipe
	require.NoError(t, r.Deserialize(&got))
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, quantity.KindVolume, got.Ingredients[0].Quantity.Kind())
	assert.Equal(t, "1 cup", got.Ingredients[0].Quantity.String())
}

func TestWriteReadRoundTrip(t *testing.T) {
	src := "# T\n\n## Ingredients\n\n- 3/4 cup water\n- 2 eggs\n- salt to taste\n"
	parsed := recipe.Parse(src)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(format, &buf).Serialize(parsed), "format %s", format)

		r, err := NewReader(format, &buf)
		require.NoError(t, err)
		var got recipe.Recipe
		require.NoError(t, r.Deserialize(&got), "format %s", format)

		assert.Equal(t, src, got.String(), "format %s round trip", format)
	}
}

func TestFromFile(t *testing.T) {
	src := "# T\n\n## Ingredients\n\n- 1 tbsp oil\n"
	parsed := recipe.Parse(src)

	path := filepath.Join(t.TempDir(), "recipe.yaml")
	w := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, w.Serialize(parsed))
	require.NoError(t, w.Close())

	got, err := FromFile[recipe.Recipe](path)
	require.NoError(t, err)
	assert.Equal(t, src, got.String())
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile[recipe.Recipe](filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
