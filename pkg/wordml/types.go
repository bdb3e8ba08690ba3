package wordml

// Closed-vocabulary value types. Each FromString constructor falls back to
// the documented default instead of failing, so the reader never aborts on an
// out-of-vocabulary string.

// StyleType identifies what a style definition applies to.
type StyleType string

const (
	StyleTypeParagraph StyleType = "paragraph"
	StyleTypeCharacter StyleType = "character"
	StyleTypeTable     StyleType = "table"
	StyleTypeNumbering StyleType = "numbering"
)

// StyleTypeFromString defaults to paragraph.
func StyleTypeFromString(s string) StyleType {
	switch StyleType(s) {
	case StyleTypeCharacter, StyleTypeTable, StyleTypeNumbering:
		return StyleType(s)
	default:
		return StyleTypeParagraph
	}
}

// WidthType tags a table/cell width measure.
type WidthType string

const (
	WidthTypeDxa  WidthType = "dxa"
	WidthTypeAuto WidthType = "auto"
	WidthTypePct  WidthType = "pct"
	WidthTypeNil  WidthType = "nil"
)

// WidthTypeFromString defaults to auto.
func WidthTypeFromString(s string) WidthType {
	switch WidthType(s) {
	case WidthTypeDxa, WidthTypePct, WidthTypeNil:
		return WidthType(s)
	default:
		return WidthTypeAuto
	}
}

// BreakType distinguishes the break kinds a run may carry.
type BreakType string

const (
	BreakTypePage         BreakType = "page"
	BreakTypeColumn       BreakType = "column"
	BreakTypeTextWrapping BreakType = "textWrapping"
)

// BreakTypeFromString defaults to textWrapping.
func BreakTypeFromString(s string) BreakType {
	switch BreakType(s) {
	case BreakTypePage, BreakTypeColumn:
		return BreakType(s)
	default:
		return BreakTypeTextWrapping
	}
}

// FieldCharType marks the begin/separate/end structure of a complex field.
type FieldCharType string

const (
	FieldCharTypeBegin       FieldCharType = "begin"
	FieldCharTypeSeparate    FieldCharType = "separate"
	FieldCharTypeEnd         FieldCharType = "end"
	FieldCharTypeUnsupported FieldCharType = "unsupported"
)

// FieldCharTypeFromString defaults to unsupported.
func FieldCharTypeFromString(s string) FieldCharType {
	switch FieldCharType(s) {
	case FieldCharTypeBegin, FieldCharTypeSeparate, FieldCharTypeEnd:
		return FieldCharType(s)
	default:
		return FieldCharTypeUnsupported
	}
}

// VMergeType controls vertical cell merging.
type VMergeType string

const (
	VMergeTypeContinue VMergeType = "continue"
	VMergeTypeRestart  VMergeType = "restart"
)

// VMergeTypeFromString defaults to continue, which is also what a bare
// <vMerge /> means.
func VMergeTypeFromString(s string) VMergeType {
	if VMergeType(s) == VMergeTypeRestart {
		return VMergeTypeRestart
	}
	return VMergeTypeContinue
}

// SpecialIndentKind tags the mutually exclusive first-line indent forms.
type SpecialIndentKind int

const (
	SpecialIndentFirstLine SpecialIndentKind = iota
	SpecialIndentHanging
)

// SpecialIndent is a first-line or hanging indent in dxa. When markup
// carries both, hanging wins.
type SpecialIndent struct {
	Kind SpecialIndentKind
	Val  int
}

// PTabAlignment positions an absolute tab.
type PTabAlignment string

const (
	PTabAlignmentLeft   PTabAlignment = "left"
	PTabAlignmentCenter PTabAlignment = "center"
	PTabAlignmentRight  PTabAlignment = "right"
)

// PTabAlignmentFromString defaults to left.
func PTabAlignmentFromString(s string) PTabAlignment {
	switch PTabAlignment(s) {
	case PTabAlignmentCenter, PTabAlignmentRight:
		return PTabAlignment(s)
	default:
		return PTabAlignmentLeft
	}
}

// PTabRelativeTo anchors an absolute tab to the margin or the indent.
type PTabRelativeTo string

const (
	PTabRelativeToMargin PTabRelativeTo = "margin"
	PTabRelativeToIndent PTabRelativeTo = "indent"
)

// PTabRelativeToFromString defaults to margin.
func PTabRelativeToFromString(s string) PTabRelativeTo {
	if PTabRelativeTo(s) == PTabRelativeToIndent {
		return PTabRelativeToIndent
	}
	return PTabRelativeToMargin
}

// PTabLeader fills the space an absolute tab spans.
type PTabLeader string

const (
	PTabLeaderNone       PTabLeader = "none"
	PTabLeaderDot        PTabLeader = "dot"
	PTabLeaderHyphen     PTabLeader = "hyphen"
	PTabLeaderMiddleDot  PTabLeader = "middleDot"
	PTabLeaderUnderscore PTabLeader = "underscore"
)

// PTabLeaderFromString defaults to none.
func PTabLeaderFromString(s string) PTabLeader {
	switch PTabLeader(s) {
	case PTabLeaderDot, PTabLeaderHyphen, PTabLeaderMiddleDot, PTabLeaderUnderscore:
		return PTabLeader(s)
	default:
		return PTabLeaderNone
	}
}

// LevelSuffix is what separates a list number from the paragraph text.
type LevelSuffix string

const (
	LevelSuffixTab     LevelSuffix = "tab"
	LevelSuffixSpace   LevelSuffix = "space"
	LevelSuffixNothing LevelSuffix = "nothing"
)

// LevelSuffixFromString defaults to tab.
func LevelSuffixFromString(s string) LevelSuffix {
	switch LevelSuffix(s) {
	case LevelSuffixSpace, LevelSuffixNothing:
		return LevelSuffix(s)
	default:
		return LevelSuffixTab
	}
}

// HeaderFooterRole keys a header or footer binding within a section.
type HeaderFooterRole string

const (
	HeaderFooterRoleDefault HeaderFooterRole = "default"
	HeaderFooterRoleFirst   HeaderFooterRole = "first"
	HeaderFooterRoleEven    HeaderFooterRole = "even"
)

// headerFooterRoleFromString reports ok=false for unknown roles so the
// reader can drop the reference instead of mis-filing it.
func headerFooterRoleFromString(s string) (HeaderFooterRole, bool) {
	switch HeaderFooterRole(s) {
	case HeaderFooterRoleDefault, HeaderFooterRoleFirst, HeaderFooterRoleEven:
		return HeaderFooterRole(s), true
	default:
		return "", false
	}
}

// HyperlinkKind distinguishes relationship-backed links from in-document
// anchors.
type HyperlinkKind int

const (
	HyperlinkKindExternal HyperlinkKind = iota
	HyperlinkKindAnchor
)

// CharacterSpacingValues enumerates the compress behaviors of the settings
// part.
type CharacterSpacingValues string

const (
	CharacterSpacingDoNotCompress        CharacterSpacingValues = "doNotCompress"
	CharacterSpacingCompressPunctuation  CharacterSpacingValues = "compressPunctuation"
	CharacterSpacingCompressPunctuationAndJapaneseKana CharacterSpacingValues = "compressPunctuationAndJapaneseKana"
)

// CharacterSpacingFromString defaults to doNotCompress.
func CharacterSpacingFromString(s string) CharacterSpacingValues {
	switch CharacterSpacingValues(s) {
	case CharacterSpacingCompressPunctuation, CharacterSpacingCompressPunctuationAndJapaneseKana:
		return CharacterSpacingValues(s)
	default:
		return CharacterSpacingDoNotCompress
	}
}
