package wordml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsXMLDefault(t *testing.T) {
	got, err := NewSettings().XML()
	require.NoError(t, err)
	want := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"` +
		` xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml">` +
		`<w:defaultTabStop w:val="840" /><w:zoom w:percent="100" />` +
		`<w:compat><w:spaceForUL /><w:balanceSingleByteDoubleByteWidth />` +
		`<w:doNotLeaveBackslashAlone /><w:ulTrailSpace /><w:doNotExpandShiftReturn />` +
		`<w:useFELayout />` +
		`<w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15" />` +
		`<w:compatSetting w:name="overrideTableStyleFontSizeAndJustification" w:uri="http://schemas.microsoft.com/office/word" w:val="1" />` +
		`<w:compatSetting w:name="enableOpenTypeFeatures" w:uri="http://schemas.microsoft.com/office/word" w:val="1" />` +
		`<w:compatSetting w:name="doNotFlipMirrorIndents" w:uri="http://schemas.microsoft.com/office/word" w:val="1" />` +
		`<w:compatSetting w:name="differentiateMultirowTableHeaders" w:uri="http://schemas.microsoft.com/office/word" w:val="1" />` +
		`<w:compatSetting w:name="useWord2013TrackBottomHyphenation" w:uri="http://schemas.microsoft.com/office/word" w:val="0" />` +
		`</w:compat></w:settings>`
	assert.Equal(t, want, got)
}

func TestSettingsDocIDWrittenWithBraces(t *testing.T) {
	got, err := NewSettings().WithDocID("{ABCD-1234}").XML()
	require.NoError(t, err)
	assert.Contains(t, got, `<w15:docId w15:val="{ABCD-1234}" />`)
}

func TestSettingsDocVarsAndFlags(t *testing.T) {
	s := NewSettings().
		AddDocVar("rev", "42").
		WithEvenAndOddHeaders().
		WithAdjustLineHeightInTable().
		WithCharacterSpacingControl(CharacterSpacingCompressPunctuation)
	got, err := s.XML()
	require.NoError(t, err)
	assert.Contains(t, got, `<w:docVars><w:docVar w:name="rev" w:val="42" /></w:docVars>`)
	assert.Contains(t, got, `<w:evenAndOddHeaders />`)
	assert.Contains(t, got, `<w:adjustLineHeightInTable />`)
	assert.Contains(t, got, `<w:characterSpacingControl w:val="compressPunctuation" />`)
	// Variable compat entries slot in before the fixed layout toggle.
	assert.Less(t, strings.Index(got, "w:characterSpacingControl"), strings.Index(got, "w:useFELayout"), got)
}

func TestReadSettings(t *testing.T) {
	xml := `<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:defaultTabStop w:val="720"/>` +
		`<w:zoom w:percent="150"/>` +
		`<w:docVars><w:docVar w:name="a" w:val="1"/><w:docVar w:name="b" w:val="2"/></w:docVars>` +
		`<w:docVar w:name="c" w:val="3"/>` +
		`<w:evenAndOddHeaders/>` +
		`<w:compat><w:adjustLineHeightInTable/><w:characterSpacingControl w:val="compressPunctuation"/></w:compat>` +
		`</w:settings>`
	s, err := ReadSettings(strings.NewReader(xml))
	require.NoError(t, err)
	assert.Equal(t, 720, s.DefaultTabStop)
	assert.Equal(t, 150, s.Zoom)
	assert.Equal(t, []DocVar{{"a", "1"}, {"b", "2"}, {"c", "3"}}, s.DocVars)
	assert.True(t, s.EvenAndOddHeaders)
	assert.True(t, s.AdjustLineHeightInTable)
	require.NotNil(t, s.CharacterSpacingControl)
	assert.Equal(t, CharacterSpacingCompressPunctuation, *s.CharacterSpacingControl)
}

func TestReadSettingsZoomValFallback(t *testing.T) {
	s, err := ReadSettings(strings.NewReader(`<settings><zoom val="80"/></settings>`))
	require.NoError(t, err)
	assert.Equal(t, 80, s.Zoom)
}

func TestReadSettingsDocIDPrefersW15(t *testing.T) {
	xml := `<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"` +
		` xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml">` +
		`<w14:docId w14:val="{OLD}"/>` +
		`<w15:docId w15:val="{NEW-ID}"/>` +
		`</w:settings>`
	s, err := ReadSettings(strings.NewReader(xml))
	require.NoError(t, err)
	require.NotNil(t, s.DocID)
	assert.Equal(t, "NEW-ID", *s.DocID)
}

func TestReadSettingsDocIDFallsBackToW14(t *testing.T) {
	xml := `<w:settings xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml">` +
		`<w14:docId w14:val="{LEGACY}"/>` +
		`</w:settings>`
	s, err := ReadSettings(strings.NewReader(xml))
	require.NoError(t, err)
	require.NotNil(t, s.DocID)
	assert.Equal(t, "LEGACY", *s.DocID)
}

func TestReadSettingsDocVarMissingNameDropped(t *testing.T) {
	xml := `<settings><docVars><docVar val="orphan"/><docVar name="n" val="v"/></docVars></settings>`
	s, err := ReadSettings(strings.NewReader(xml))
	require.NoError(t, err)
	assert.Equal(t, []DocVar{{"n", "v"}}, s.DocVars)
}
