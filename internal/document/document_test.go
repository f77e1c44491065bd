package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<Project xmlns="http://schemas.microsoft.com/project">
  <Tasks>
    <Task>
      <UID>1</UID>
      <Name>Design</Name>
      <Summary>1</Summary>
    </Task>
    <Task>
      <UID>2</UID>
      <Milestone>1</Milestone>
    </Task>
  </Tasks>
  <Resources>
    <Resource><UID>10</UID></Resource>
  </Resources>
  <Assignments>
    <Assignment><UID>20</UID></Assignment>
  </Assignments>
  <Calendars>
    <Calendar><UID>1</UID></Calendar>
    <Calendar><UID>2</UID></Calendar>
  </Calendars>
</Project>`

func TestParseAccessors(t *testing.T) {
	doc, err := Parse(sampleXML)
	require.NoError(t, err)

	assert.Len(t, doc.Tasks(), 2)
	assert.Len(t, doc.Resources(), 1)
	assert.Len(t, doc.Assignments(), 1)
	assert.Len(t, doc.Calendars(), 2)

	assert.NotNil(t, doc.Calendar("2"))
	assert.Nil(t, doc.Calendar("7"))
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestTaskName(t *testing.T) {
	doc, err := Parse(sampleXML)
	require.NoError(t, err)
	tasks := doc.Tasks()

	assert.Equal(t, "Design", TaskName(tasks[0]))
	assert.Equal(t, "Task UID 2", TaskName(tasks[1]))
}

func TestFlags(t *testing.T) {
	doc, err := Parse(sampleXML)
	require.NoError(t, err)
	tasks := doc.Tasks()

	assert.True(t, IsSummary(tasks[0]))
	assert.False(t, IsMilestone(tasks[0]))
	assert.False(t, IsSummary(tasks[1]))
	assert.True(t, IsMilestone(tasks[1]))
}

func TestWriteFileDeclaration(t *testing.T) {
	doc, err := Parse(sampleXML)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, doc.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data),
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))

	// The written file must parse back.
	_, err = Load(path)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xml"))
	assert.Error(t, err)
}
