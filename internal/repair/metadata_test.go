package repair

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jare20895/MSProjectXMLValidator/internal/ledger"
	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

func TestProjectMetadataInsertsDefaults(t *testing.T) {
	doc := mustParse(t, `<Project>
  <Name>Plan</Name>
  <CurrentDate>2024-01-05T08:00:00</CurrentDate>
  <MinutesPerWeek>2400</MinutesPerWeek>
  <Calendars>
    <Calendar><UID>1</UID></Calendar>
  </Calendars>
  <Tasks/>
</Project>`)
	led := ledger.New(nil)

	ProjectMetadata(doc, led)

	root := doc.Root()
	elems := root.ChildElements()
	position := func(tag string) int {
		for i, el := range elems {
			if el.Tag == tag {
				return i
			}
		}
		return -1
	}

	// Metadata lands immediately after MinutesPerWeek, in table order.
	require.NotEqual(t, -1, position("SaveVersion"))
	assert.Equal(t, position("MinutesPerWeek")+1, position("SaveVersion"))
	assert.Equal(t, position("SaveVersion")+1, position("BuildNumber"))
	assert.Equal(t, "14", root.SelectElement("SaveVersion").Text())
	assert.Equal(t, "7", root.SelectElement("DurationFormat").Text())
	assert.Equal(t, "1", root.SelectElement("NewTasksAreManual").Text())

	// Structural sections land before Calendars.
	require.NotEqual(t, -1, position("Views"))
	assert.Less(t, position("Views"), position("Calendars"))
	assert.Less(t, position("ExtendedAttributes"), position("Calendars"))
	assert.NotNil(t, root.SelectElement("WBSMasks"))

	res := led.Result()
	require.Len(t, res.Repairs[types.CategoryProjectMetadata], 1)
	wantAdded := len(projectMetadata) + len(structuralSections)
	assert.Contains(t, res.Repairs[types.CategoryProjectMetadata][0],
		fmt.Sprintf("Added %d essential project configuration fields", wantAdded))
}

func TestProjectMetadataIdempotent(t *testing.T) {
	doc := mustParse(t, `<Project>
  <MinutesPerWeek>2400</MinutesPerWeek>
  <Calendars/>
  <Tasks/>
</Project>`)

	ProjectMetadata(doc, ledger.New(nil))
	before := len(doc.Root().ChildElements())

	led := ledger.New(nil)
	ProjectMetadata(doc, led)

	assert.Equal(t, before, len(doc.Root().ChildElements()))
	assert.Empty(t, led.Result().Repairs)
}

func TestProjectMetadataFallbackPosition(t *testing.T) {
	// No MinutesPerWeek, Calendars, or CurrentDate anchor. The indented
	// fixture interleaves whitespace between elements, so a correct
	// insertion must count elements rather than raw child tokens.
	doc := mustParse(t, `<Project>
  <Name>Plan</Name>
  <Title>Plan</Title>
  <Subject>Build</Subject>
  <Category>Internal</Category>
  <Company>Acme</Company>
  <Manager>Lee</Manager>
  <Author>Lee</Author>
  <ScheduleFromStart>1</ScheduleFromStart>
  <StartDate>2024-01-01T08:00:00</StartDate>
  <FinishDate>2024-06-01T17:00:00</FinishDate>
  <Tasks/>
  <Resources/>
</Project>`)
	led := ledger.New(nil)

	ProjectMetadata(doc, led)

	elems := doc.Root().ChildElements()
	require.Greater(t, len(elems), fallbackInsertPos)
	assert.Equal(t, "SaveVersion", elems[fallbackInsertPos].Tag,
		"metadata starts at the fallback element position")
	assert.Equal(t, "FinishDate", elems[fallbackInsertPos-1].Tag)
}

func TestProjectMetadataFallbackShortDocument(t *testing.T) {
	doc := mustParse(t, `<Project>
  <Name>Plan</Name>
  <Tasks/>
</Project>`)
	led := ledger.New(nil)

	ProjectMetadata(doc, led)

	elems := doc.Root().ChildElements()
	assert.Equal(t, "Name", elems[0].Tag)
	assert.Equal(t, "Tasks", elems[1].Tag)
	assert.Equal(t, "SaveVersion", elems[2].Tag, "metadata appends after the last element")
}

func TestProjectMetadataSkipsPresentFields(t *testing.T) {
	doc := mustParse(t, `<Project>
  <SaveVersion>12</SaveVersion>
  <MinutesPerWeek>2400</MinutesPerWeek>
  <Tasks/>
</Project>`)
	led := ledger.New(nil)

	ProjectMetadata(doc, led)

	// An existing value is never overwritten. The fixture has no Calendars
	// section, so only the metadata table minus SaveVersion is added.
	assert.Equal(t, "12", doc.Root().SelectElement("SaveVersion").Text())
	res := led.Result()
	require.Len(t, res.Repairs[types.CategoryProjectMetadata], 1)
	assert.Contains(t, res.Repairs[types.CategoryProjectMetadata][0],
		fmt.Sprintf("Added %d", len(projectMetadata)-1))
}
