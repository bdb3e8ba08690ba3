package wordml

import (
	"io"
	"strconv"
)

// DocVar is one name/value pair stored in the settings part.
type DocVar struct {
	Name  string
	Value string
}

// Settings is the document settings part. The compat block and its
// compatibility mode entries are fixed; only the listed fields vary.
type Settings struct {
	DefaultTabStop          int
	Zoom                    int
	DocID                   *string
	DocVars                 []DocVar
	EvenAndOddHeaders       bool
	AdjustLineHeightInTable bool
	CharacterSpacingControl *CharacterSpacingValues
}

// NewSettings returns the default settings part.
func NewSettings() Settings {
	return Settings{DefaultTabStop: 840, Zoom: 100}
}

// WithDocID sets the document id. Braces are stripped; the writer adds
// them back.
func (s Settings) WithDocID(id string) Settings {
	id = stripDocIDBraces(id)
	s.DocID = &id
	return s
}

// WithDefaultTabStop sets the default tab stop in dxa.
func (s Settings) WithDefaultTabStop(v int) Settings { s.DefaultTabStop = v; return s }

// AddDocVar appends a document variable.
func (s Settings) AddDocVar(name, value string) Settings {
	s.DocVars = append(s.DocVars, DocVar{Name: name, Value: value})
	return s
}

// WithEvenAndOddHeaders enables distinct even-page headers.
func (s Settings) WithEvenAndOddHeaders() Settings { s.EvenAndOddHeaders = true; return s }

// WithAdjustLineHeightInTable enables the table line height compat flag.
func (s Settings) WithAdjustLineHeightInTable() Settings {
	s.AdjustLineHeightInTable = true
	return s
}

// WithCharacterSpacingControl sets the CJK spacing compression mode.
func (s Settings) WithCharacterSpacingControl(v CharacterSpacingValues) Settings {
	s.CharacterSpacingControl = &v
	return s
}

func stripDocIDBraces(v string) string {
	out := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '{' || v[i] == '}' {
			continue
		}
		out = append(out, v[i])
	}
	return string(out)
}

const compatURI = "http://schemas.microsoft.com/office/word"

func buildCompatSetting(b *XMLBuilder, name, val string) {
	b.Empty("w:compatSetting",
		attr("w:name", name),
		attr("w:uri", compatURI),
		attr("w:val", val),
	)
}

func (s Settings) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w:settings",
		attr("xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"),
		attr("xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml"),
		attr("xmlns:w15", "http://schemas.microsoft.com/office/word/2012/wordml"),
	)
	b.Empty("w:defaultTabStop", attr("w:val", strconv.Itoa(s.DefaultTabStop)))
	b.Empty("w:zoom", attr("w:percent", strconv.Itoa(s.Zoom)))
	b.Open("w:compat")
	b.Empty("w:spaceForUL")
	b.Empty("w:balanceSingleByteDoubleByteWidth")
	b.Empty("w:doNotLeaveBackslashAlone")
	b.Empty("w:ulTrailSpace")
	b.Empty("w:doNotExpandShiftReturn")
	if s.CharacterSpacingControl != nil {
		b.Empty("w:characterSpacingControl", attr("w:val", string(*s.CharacterSpacingControl)))
	}
	if s.AdjustLineHeightInTable {
		b.Empty("w:adjustLineHeightInTable")
	}
	b.Empty("w:useFELayout")
	buildCompatSetting(b, "compatibilityMode", "15")
	buildCompatSetting(b, "overrideTableStyleFontSizeAndJustification", "1")
	buildCompatSetting(b, "enableOpenTypeFeatures", "1")
	buildCompatSetting(b, "doNotFlipMirrorIndents", "1")
	buildCompatSetting(b, "differentiateMultirowTableHeaders", "1")
	buildCompatSetting(b, "useWord2013TrackBottomHyphenation", "0")
	b.Close()
	if s.DocID != nil {
		b.Empty("w15:docId", attr("w15:val", "{"+*s.DocID+"}"))
	}
	if len(s.DocVars) > 0 {
		b.Open("w:docVars")
		for _, v := range s.DocVars {
			b.Empty("w:docVar", attr("w:name", v.Name), attr("w:val", v.Value))
		}
		b.Close()
	}
	if s.EvenAndOddHeaders {
		b.Empty("w:evenAndOddHeaders")
	}
	b.Close()
}

// Write streams the complete part to w.
func (s Settings) Write(w io.Writer) error { return writePart(w, s) }

// XML renders the complete part including the declaration.
func (s Settings) XML() (string, error) { return buildString(s) }
