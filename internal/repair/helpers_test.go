package repair

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
)

func mustParse(t *testing.T, data string) *document.Document {
	t.Helper()
	doc, err := document.Parse(data)
	require.NoError(t, err)
	return doc
}
