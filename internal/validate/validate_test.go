package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jare20895/MSProjectXMLValidator/internal/document"
	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

func mustParse(t *testing.T, data string) *document.Document {
	t.Helper()
	doc, err := document.Parse(data)
	require.NoError(t, err)
	return doc
}

func TestUniqueUIDsClean(t *testing.T) {
	doc := mustParse(t, `<Project>
  <Tasks>
    <Task><UID>1</UID></Task>
    <Task><UID>2</UID></Task>
  </Tasks>
  <Resources>
    <Resource><UID>1</UID></Resource>
  </Resources>
</Project>`)
	led := ledger.New(nil)

	sets := UniqueUIDs(doc, led)

	// UID 1 appears as both a task and a resource; namespaces are per kind.
	assert.False(t, led.HasErrors())
	assert.True(t, sets.Tasks["1"])
	assert.True(t, sets.Tasks["2"])
	assert.True(t, sets.Resources["1"])
}

func TestUniqueUIDsDuplicates(t *testing.T) {
	doc := mustParse(t, `<Project>
  <Tasks>
    <Task><UID>1</UID></Task>
    <Task><UID>1</UID></Task>
    <Task><UID>1</UID></Task>
  </Tasks>
  <Assignments>
    <Assignment><UID>5</UID></Assignment>
    <Assignment><UID>5</UID></Assignment>
  </Assignments>
</Project>`)
	led := ledger.New(nil)

	sets := UniqueUIDs(doc, led)

	res := led.Result()
	msgs := res.Errors[types.CategoryDuplicateUIDs]
	assert.Equal(t, []string{
		"Duplicate Task UID found: 1",
		"Duplicate Task UID found: 1",
		"Duplicate Assignment UID found: 5",
	}, msgs)
	assert.True(t, sets.Tasks["1"])
	assert.True(t, sets.Assignments["5"])
}

func TestReferentialIntegrity(t *testing.T) {
	doc := mustParse(t, `<Project>
  <Tasks>
    <Task><UID>1</UID><Name>Build</Name></Task>
    <Task>
      <UID>2</UID>
      <Name>Test</Name>
      <PredecessorLink><PredecessorUID>1</PredecessorUID></PredecessorLink>
      <PredecessorLink><PredecessorUID>99</PredecessorUID></PredecessorLink>
    </Task>
  </Tasks>
  <Resources>
    <Resource><UID>10</UID></Resource>
  </Resources>
  <Assignments>
    <Assignment><UID>20</UID><TaskUID>1</TaskUID><ResourceUID>10</ResourceUID></Assignment>
    <Assignment><UID>21</UID><TaskUID>7</TaskUID><ResourceUID>11</ResourceUID></Assignment>
  </Assignments>
</Project>`)
	led := ledger.New(nil)

	sets := UniqueUIDs(doc, led)
	ReferentialIntegrity(doc, sets, led)

	res := led.Result()
	assert.Equal(t, []string{
		"Assignment <UID>21</UID> points to non-existent TaskUID: 7",
		"Assignment <UID>21</UID> points to non-existent ResourceUID: 11",
		"Task 'Test' has a PredecessorLink to non-existent TaskUID: 99",
	}, res.Errors[types.CategoryBrokenReferences])
}

func TestReferentialIntegrityClean(t *testing.T) {
	doc := mustParse(t, `<Project>
  <Tasks>
    <Task><UID>1</UID></Task>
  </Tasks>
  <Resources>
    <Resource><UID>10</UID></Resource>
  </Resources>
  <Assignments>
    <Assignment><UID>20</UID><TaskUID>1</TaskUID><ResourceUID>10</ResourceUID></Assignment>
  </Assignments>
</Project>`)
	led := ledger.New(nil)

	ReferentialIntegrity(doc, UniqueUIDs(doc, led), led)

	assert.False(t, led.HasErrors())
}
