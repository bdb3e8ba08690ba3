package wordml

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

// ReadSettings parses a settings part.
func ReadSettings(r io.Reader) (Settings, error) {
	root, err := loadRoot(r, "settings", "settings")
	if err != nil {
		return Settings{}, err
	}
	s := NewSettings()

	// Ids are collected across all spellings first; the most specific
	// namespace wins regardless of document order.
	var docIDW15, docIDPlain, docIDW14 *string
	keepDocID := func(dst **string, v string, ok bool) {
		if !ok {
			return
		}
		id := strings.TrimSpace(stripDocIDBraces(v))
		if id == "" {
			return
		}
		*dst = &id
	}

	for _, c := range root.ChildElements() {
		switch c.Tag {
		case "defaultTabStop":
			if v, ok := valAttr(c); ok {
				s.DefaultTabStop = parseIntOr(v, 840)
			}
		case "zoom":
			// percent is the canonical spelling; val is the legacy one.
			if v, ok := attrValue(c, "percent"); ok {
				s.Zoom = parseUintOr(v, 100)
			} else if v, ok := valAttr(c); ok {
				s.Zoom = parseUintOr(v, 100)
			}
		case "docId":
			v, ok := attrValueNS(c, "w15", "val")
			keepDocID(&docIDW15, v, ok)
			v, ok = attrValueNS(c, "w", "val")
			keepDocID(&docIDPlain, v, ok)
			if v, ok = attrValueNS(c, "", "val"); ok {
				keepDocID(&docIDPlain, v, ok)
			}
			v, ok = attrValueNS(c, "w14", "val")
			keepDocID(&docIDW14, v, ok)
		case "docVars":
			for _, dv := range c.ChildElements() {
				if dv.Tag != "docVar" {
					dropChild("docVars", dv)
					continue
				}
				addDocVar(&s, dv)
			}
		case "docVar":
			addDocVar(&s, c)
		case "evenAndOddHeaders":
			s.EvenAndOddHeaders = onOffValue(c)
		case "adjustLineHeightInTable":
			s.AdjustLineHeightInTable = onOffValue(c)
		case "characterSpacingControl":
			if v, ok := valAttr(c); ok {
				sc := CharacterSpacingFromString(v)
				s.CharacterSpacingControl = &sc
			}
		case "compat":
			readCompat(&s, c)
		default:
			dropChild("settings", c)
		}
	}

	switch {
	case docIDW15 != nil:
		s.DocID = docIDW15
	case docIDPlain != nil:
		s.DocID = docIDPlain
	case docIDW14 != nil:
		s.DocID = docIDW14
	}
	return s, nil
}

func addDocVar(s *Settings, el *etree.Element) {
	name, okName := attrValue(el, "name")
	val, okVal := valAttr(el)
	if !okName || !okVal {
		return
	}
	s.DocVars = append(s.DocVars, DocVar{Name: name, Value: val})
}

// readCompat picks up the two variable entries of the compat block. The
// fixed toggles and compatibility mode settings are re-emitted as written.
func readCompat(s *Settings, el *etree.Element) {
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "adjustLineHeightInTable":
			s.AdjustLineHeightInTable = onOffValue(c)
		case "characterSpacingControl":
			if v, ok := valAttr(c); ok {
				sc := CharacterSpacingFromString(v)
				s.CharacterSpacingControl = &sc
			}
		}
	}
}

// ReadCommentsExtended parses a commentsExtended part.
func ReadCommentsExtended(r io.Reader) (CommentsExtended, error) {
	root, err := loadRoot(r, "commentsExtended", "commentsEx")
	if err != nil {
		return CommentsExtended{}, err
	}
	ce := CommentsExtended{}
	for _, c := range root.ChildElements() {
		if c.Tag != "commentEx" {
			dropChild("commentsEx", c)
			continue
		}
		paraID, ok := attrValue(c, "paraId")
		if !ok {
			continue
		}
		e := CommentExtended{ParaID: paraID}
		if v, ok := attrValue(c, "done"); ok {
			e.Done = parseOnOff(v)
		}
		if v, ok := attrValue(c, "paraIdParent"); ok {
			e.ParentParaID = &v
		}
		ce.Children = append(ce.Children, e)
	}
	return ce, nil
}
