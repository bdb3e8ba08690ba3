package wordml

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// The canonical writer and the tolerant reader are a stable pair: reading a
// written part and writing it again reproduces the bytes exactly.

func requireStableBytes(t *testing.T, first string, read func(string) (string, error)) {
	t.Helper()
	second, err := read(first)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second write differs from first (-first +second):\n%s", diff)
	}
}

func TestDocumentWriteReadWriteStable(t *testing.T) {
	d := NewDocument().
		AddParagraph(NewParagraph().Style("Heading1").Align("center").AddText("Title")).
		AddParagraph(NewParagraph().
			Numbering(1, 0).
			AddRun(NewRun().Bold().AddText("bold item")).
			AddHyperlink(NewAnchorHyperlink("mark").AddRun(NewRun().AddText("jump"))).
			AddInsert(NewInsert(NewRun().AddText("added")))).
		AddParagraph(NewParagraph().
			AddCommentStart(NewComment(3)).
			AddText("annotated").
			AddCommentEnd(3)).
		AddTable(NewTable().
			WithGrid([]int{2000, 3000}).
			AddRow(NewTableRow().
				AddCell(NewTableCell().AddParagraph(NewParagraph().AddText("a"))).
				AddCell(NewTableCell().Width(3000, WidthTypeDxa)))).
		AddStructuredDataTag(NewStructuredDataTag().
			WithAlias("Region").
			AddParagraph(NewParagraph().AddText("bound"))).
		AddBookmarkStart(1, "mark").
		AddBookmarkEnd(1)

	first, err := d.XML()
	require.NoError(t, err)
	requireStableBytes(t, first, func(s string) (string, error) {
		back, err := ReadDocument(strings.NewReader(s))
		if err != nil {
			return "", err
		}
		return back.XML()
	})
}

func TestHeaderWriteReadWriteStable(t *testing.T) {
	h := NewHeader().
		AddParagraph(NewParagraph().Align("right").AddText("Chapter")).
		AddTable(NewTable().AddRow(NewTableRow().AddCell(NewTableCell())))

	first, err := h.XML()
	require.NoError(t, err)
	requireStableBytes(t, first, func(s string) (string, error) {
		back, err := ReadHeader(strings.NewReader(s))
		if err != nil {
			return "", err
		}
		return back.XML()
	})
}

func TestStylesWriteReadWriteStable(t *testing.T) {
	s := NewStyles().
		Add(NewStyle("Normal", StyleTypeParagraph).WithName("Normal").WithQFormat()).
		Add(NewStyle("Heading1", StyleTypeParagraph).
			WithName("heading 1").
			WithBasedOn("Normal").
			WithNext("Normal").
			Bold().
			Size(32)).
		Add(NewStyle("Emphasis", StyleTypeCharacter).WithName("Emphasis").Italic())

	first, err := s.XML()
	require.NoError(t, err)
	requireStableBytes(t, first, func(x string) (string, error) {
		back, err := ReadStyles(strings.NewReader(x))
		if err != nil {
			return "", err
		}
		return back.XML()
	})
}

func TestNumberingsWriteReadWriteStable(t *testing.T) {
	n := NewNumberings().
		AddAbstract(NewAbstractNumbering(0).
			AddLevel(NewLevel(0).WithText("%1.")).
			AddLevel(NewLevel(1).WithFormat("bullet").WithText("•").WithSuffix(LevelSuffixSpace))).
		AddInstance(NewNumbering(1, 0).
			AddOverride(NewLevelOverride(0).WithStartOverride(1)).
			AddOverride(NewLevelOverride(1).
				WithLevel(NewLevel(1).WithFormat("lowerLetter").WithText("%2)"))))

	first, err := n.XML()
	require.NoError(t, err)
	requireStableBytes(t, first, func(x string) (string, error) {
		back, err := ReadNumberings(strings.NewReader(x))
		if err != nil {
			return "", err
		}
		return back.XML()
	})
}

func TestNumberingsModelRoundTrip(t *testing.T) {
	n := NewNumberings().
		AddAbstract(NewAbstractNumbering(2).AddLevel(NewLevel(0).WithText("%1)"))).
		AddInstance(NewNumbering(1, 2))

	x, err := n.XML()
	require.NoError(t, err)
	back, err := ReadNumberings(strings.NewReader(x))
	require.NoError(t, err)
	if diff := cmp.Diff(n, back); diff != "" {
		t.Errorf("model changed across the codec (-written +read):\n%s", diff)
	}
}

func TestCommentsWriteReadWriteStable(t *testing.T) {
	c := NewComments().
		Add(NewComment(1).
			WithAuthor("alice").
			WithDate("2024-05-01T10:00:00Z").
			AddParagraph(NewParagraph().AddText("first"))).
		Add(NewComment(2).
			AddParagraph(NewParagraph().Style("CommentText").AddText("second")))

	first, err := c.XML()
	require.NoError(t, err)
	requireStableBytes(t, first, func(x string) (string, error) {
		back, err := ReadComments(strings.NewReader(x))
		if err != nil {
			return "", err
		}
		return back.XML()
	})
}

func TestSettingsWriteReadWriteStable(t *testing.T) {
	s := NewSettings().
		WithDocID("12345678-ABCD-EF00-0000-123456789012").
		AddDocVar("build", "7").
		WithEvenAndOddHeaders().
		WithAdjustLineHeightInTable().
		WithCharacterSpacingControl(CharacterSpacingCompressPunctuation)

	first, err := s.XML()
	require.NoError(t, err)
	requireStableBytes(t, first, func(x string) (string, error) {
		back, err := ReadSettings(strings.NewReader(x))
		if err != nil {
			return "", err
		}
		return back.XML()
	})
}

func TestSettingsModelRoundTrip(t *testing.T) {
	s := NewSettings().
		WithDefaultTabStop(720).
		WithDocID("{AAAA-BBBB}").
		AddDocVar("a", "1").
		WithEvenAndOddHeaders()

	x, err := s.XML()
	require.NoError(t, err)
	back, err := ReadSettings(strings.NewReader(x))
	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("model changed across the codec (-written +read):\n%s", diff)
	}
}
