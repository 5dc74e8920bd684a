// Package printer implements the canonical HCL formatter: a pure
// structural walk over a syntax.Node tree that prints a
// terraform-fmt-compatible rendering without consulting any schema.
package printer

import (
	"strings"

	"github.com/apparentlymart/go-textseg/v15/textseg"

	"github.com/ryan-jan/hclfmt/syntax"
)

const indentUnit = "  "

// Format renders node (expected to be a SOURCE_FILE node) as canonical
// text.
func Format(node *syntax.Node) string {
	f := &formatter{}
	f.formatNode(node)
	out := f.buf.String()
	trimmed := strings.TrimRight(out, "\n")
	return trimmed + "\n"
}

type formatter struct {
	buf    strings.Builder
	indent int
}

func (f *formatter) write(s string)  { f.buf.WriteString(s) }
func (f *formatter) newline()        { f.buf.WriteByte('\n') }
func (f *formatter) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.buf.WriteString(indentUnit)
	}
}

func (f *formatter) endsWithBlankLine() bool {
	s := f.buf.String()
	return strings.HasSuffix(s, "\n\n")
}

func (f *formatter) formatNode(node *syntax.Node) {
	switch node.Kind {
	case syntax.KindSourceFile:
		f.formatSourceFile(node)
	default:
		f.formatExpr(node)
	}
}

func (f *formatter) formatSourceFile(node *syntax.Node) {
	for _, child := range node.ChildNodes() {
		if child.Kind == syntax.KindBody {
			f.formatBody(child)
		}
	}
}

// ── Body formatting with alignment groups ─────────────────────

type prevItemKind int

const (
	prevNone prevItemKind = iota
	prevAttribute
	prevBlock
	prevBlankLine
	prevComment
)

type bodyItemKind int

const (
	itemAttribute bodyItemKind = iota
	itemBlock
	itemBlankLine
	itemComment
)

type bodyItem struct {
	kind           bodyItemKind
	node           *syntax.Node // attribute or block
	commentText    string
	keyLen         int
	multilineValue bool
}

type alignGroup struct {
	start, end int
	maxKeyLen  int
}

func (f *formatter) formatBody(node *syntax.Node) {
	items := f.classifyBodyItems(node)
	groups := f.computeAlignmentGroups(items)

	prev := prevNone

	for i, item := range items {
		switch item.kind {
		case itemAttribute:
			if prev == prevBlock {
				f.newline()
			}
			maxKey := -1
			for _, g := range groups {
				if i >= g.start && i < g.end {
					maxKey = g.maxKeyLen
					break
				}
			}
			f.formatAttribute(item.node, maxKey)
			prev = prevAttribute

		case itemBlock:
			if prev != prevNone && prev != prevComment && !f.endsWithBlankLine() {
				f.newline()
			}
			f.formatBlock(item.node)
			prev = prevBlock

		case itemBlankLine:
			if prev != prevNone && !f.endsWithBlankLine() {
				f.newline()
			}
			prev = prevBlankLine

		case itemComment:
			if prev == prevBlock || prev == prevAttribute {
				f.newline()
			}
			f.writeIndent()
			f.write(strings.TrimRight(item.commentText, "\n"))
			f.newline()
			prev = prevComment
		}
	}
}

// classifyBodyItems walks a BODY node's direct children into the shape
// formatBody renders. A blank source line after an attribute ends up
// inside the attribute's own subtree (the expression parser consumes
// the trivia that follows the value), so two or more NEWLINE leaves
// past the attribute's last non-whitespace token mark a blank line.
// After a block, its eatTrailingNewline consumes the first newline and
// parseBody's own skipTrivia leaves any further ones as bare NEWLINE
// leaves directly under BODY. Either way a run of blank lines collapses
// into a single itemBlankLine, matching terraform fmt's normalization
// of multiple blank lines down to one.
func (f *formatter) classifyBodyItems(node *syntax.Node) []bodyItem {
	var items []bodyItem
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Node:
			switch v.Kind {
			case syntax.KindAttribute:
				items = append(items, bodyItem{
					kind:           itemAttribute,
					node:           v,
					keyLen:         attributeKeyLen(v),
					multilineValue: attributeHasMultilineValue(v),
				})
				trailing := 0
				v.Descendants(func(e syntax.Element) {
					if leaf, ok := e.(*syntax.Leaf); ok && leaf.Kind == syntax.KindNewline {
						trailing++
					} else if ok && leaf.Kind != syntax.KindWhitespace {
						trailing = 0
					}
				})
				if trailing >= 2 {
					items = append(items, bodyItem{kind: itemBlankLine})
				}
			case syntax.KindBlock:
				items = append(items, bodyItem{kind: itemBlock, node: v})
			}
		case *syntax.Leaf:
			switch {
			case v.Kind == syntax.KindLineComment || v.Kind == syntax.KindBlockComment:
				items = append(items, bodyItem{kind: itemComment, commentText: v.Text})
			case v.Kind == syntax.KindNewline:
				if len(items) == 0 || items[len(items)-1].kind != itemBlankLine {
					items = append(items, bodyItem{kind: itemBlankLine})
				}
			}
		}
	}
	return items
}

func attributeKeyLen(attr *syntax.Node) int {
	for _, c := range attr.Children {
		if leaf, ok := c.(*syntax.Leaf); ok && leaf.Kind.IsIdentLike() {
			return graphemeLen(leaf.Text)
		}
	}
	return 0
}

func attributeHasMultilineValue(attr *syntax.Node) bool {
	expr := findAttributeExpr(attr)
	if expr == nil {
		return false
	}
	return expr.ContainsKind(syntax.KindNewline)
}

func (f *formatter) computeAlignmentGroups(items []bodyItem) []alignGroup {
	var groups []alignGroup
	groupStart := -1
	maxKey := 0

	for i, item := range items {
		switch item.kind {
		case itemAttribute:
			if item.multilineValue {
				if groupStart >= 0 {
					groups = append(groups, alignGroup{start: groupStart, end: i, maxKeyLen: maxKey})
					groupStart = -1
				}
			} else {
				if groupStart < 0 {
					groupStart = i
					maxKey = 0
				}
				if item.keyLen > maxKey {
					maxKey = item.keyLen
				}
			}
		case itemComment:
			// comments don't break alignment groups
		default:
			if groupStart >= 0 {
				groups = append(groups, alignGroup{start: groupStart, end: i, maxKeyLen: maxKey})
				groupStart = -1
			}
		}
	}
	if groupStart >= 0 {
		groups = append(groups, alignGroup{start: groupStart, end: len(items), maxKeyLen: maxKey})
	}
	return groups
}

// ── Attribute formatting ──────────────────────────────────────

func (f *formatter) formatAttribute(node *syntax.Node, alignTo int) {
	f.writeIndent()

	var keyText string
	var trailingComment string
	sawEq := false

	for _, c := range node.Children {
		leaf, ok := c.(*syntax.Leaf)
		if !ok {
			continue
		}
		switch {
		case leaf.Kind.IsIdentLike() && !sawEq:
			keyText = leaf.Text
		case leaf.Kind == syntax.KindEq:
			sawEq = true
		case leaf.Kind == syntax.KindLineComment || leaf.Kind == syntax.KindBlockComment:
			trailingComment = leaf.Text
		}
	}

	f.write(keyText)
	if alignTo >= 0 {
		padding := alignTo - graphemeLen(keyText)
		for i := 0; i < padding; i++ {
			f.buf.WriteByte(' ')
		}
	}
	f.write(" = ")

	if expr := findAttributeExpr(node); expr != nil {
		f.formatExpr(expr)
	}

	if trailingComment != "" {
		f.write(" ")
		f.write(strings.TrimRight(trailingComment, "\n"))
	}
	f.newline()
}

func findAttributeExpr(attr *syntax.Node) *syntax.Node {
	pastEq := false
	for _, c := range attr.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind == syntax.KindEq {
				pastEq = true
			}
		case *syntax.Node:
			if pastEq {
				return v
			}
		}
	}
	return nil
}

// ── Block formatting ──────────────────────────────────────────

func (f *formatter) formatBlock(node *syntax.Node) {
	f.writeIndent()

	var labels []*syntax.Node
	var blockType, trailingComment string
	var bodyNode *syntax.Node

	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			switch {
			case v.Kind.IsIdentLike() && blockType == "":
				blockType = v.Text
			case v.Kind == syntax.KindLineComment || v.Kind == syntax.KindBlockComment:
				trailingComment = v.Text
			}
		case *syntax.Node:
			switch v.Kind {
			case syntax.KindBlockLabel:
				labels = append(labels, v)
			case syntax.KindBody:
				bodyNode = v
			}
		}
	}

	f.write(blockType)
	for _, label := range labels {
		f.write(" ")
		f.formatBlockLabel(label)
	}
	f.write(" {")
	f.newline()

	if bodyNode != nil {
		f.indent++
		f.formatBody(bodyNode)
		f.indent--
	}

	f.writeIndent()
	f.write("}")
	if trailingComment != "" {
		f.write(" ")
		f.write(strings.TrimRight(trailingComment, "\n"))
	}
	f.newline()
}

func (f *formatter) formatBlockLabel(node *syntax.Node) {
	for _, child := range node.ChildNodes() {
		if child.Kind == syntax.KindStringExpr {
			f.formatStringExpr(child)
			return
		}
	}
	for _, c := range node.Children {
		if leaf, ok := c.(*syntax.Leaf); ok && leaf.Kind.IsIdentLike() {
			f.write(leaf.Text)
		}
	}
}

// ── Expression formatting ─────────────────────────────────────

func (f *formatter) formatExpr(node *syntax.Node) {
	switch node.Kind {
	case syntax.KindLiteralExpr:
		f.formatLiteral(node)
	case syntax.KindStringExpr:
		f.formatStringExpr(node)
	case syntax.KindHeredocExpr:
		f.formatHeredoc(node)
	case syntax.KindVariableExpr:
		f.formatVariable(node)
	case syntax.KindBinaryExpr:
		f.formatBinaryExpr(node)
	case syntax.KindUnaryExpr:
		f.formatUnaryExpr(node)
	case syntax.KindConditionalExpr:
		f.formatConditionalExpr(node)
	case syntax.KindFunctionCall:
		f.formatFunctionCall(node)
	case syntax.KindParenExpr:
		f.formatParenExpr(node)
	case syntax.KindTupleExpr:
		f.formatTupleExpr(node)
	case syntax.KindObjectExpr:
		f.formatObjectExpr(node)
	case syntax.KindAttrAccessExpr:
		f.formatAttrAccess(node)
	case syntax.KindIndexExpr:
		f.formatIndexExpr(node)
	case syntax.KindAttrSplatExpr:
		f.formatAttrSplat(node)
	case syntax.KindIndexSplatExpr:
		f.formatIndexSplat(node)
	case syntax.KindForTupleExpr:
		f.formatForTuple(node)
	case syntax.KindForObjectExpr:
		f.formatForObject(node)
	default:
		// Fallback: emit verbatim. Covers ERROR nodes and anything else
		// the formatter has no opinion about.
		f.write(node.Text())
	}
}

func (f *formatter) formatLiteral(node *syntax.Node) {
	for _, c := range node.Children {
		if leaf, ok := c.(*syntax.Leaf); ok && !leaf.Kind.IsTrivia() {
			f.write(leaf.Text)
		}
	}
}

func (f *formatter) formatVariable(node *syntax.Node) {
	for _, c := range node.Children {
		if leaf, ok := c.(*syntax.Leaf); ok && !leaf.Kind.IsTrivia() {
			f.write(leaf.Text)
		}
	}
}

// formatStringExpr and formatHeredoc preserve their subtree verbatim:
// string and heredoc templates are never reformatted, only copied.
func (f *formatter) formatStringExpr(node *syntax.Node) { f.write(node.Text()) }
func (f *formatter) formatHeredoc(node *syntax.Node)    { f.write(node.Text()) }

func (f *formatter) formatBinaryExpr(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			if v.Kind.IsBinaryOp() {
				f.write(" ")
				f.write(v.Text)
				f.write(" ")
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatUnaryExpr(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			f.write(v.Text) // operator, no space after
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatConditionalExpr(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			switch v.Kind {
			case syntax.KindQuestion:
				f.write(" ? ")
			case syntax.KindColon:
				f.write(" : ")
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatFunctionCall(node *syntax.Node) {
	wroteName := false
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch {
			case v.Kind == syntax.KindIdent && !wroteName:
				f.write(v.Text)
				wroteName = true
			case v.Kind == syntax.KindParenL:
				f.write("(")
			case v.Kind == syntax.KindParenR:
				f.write(")")
			}
		case *syntax.Node:
			if v.Kind == syntax.KindArgList {
				f.formatArgList(v)
			} else {
				f.formatExpr(v)
			}
		}
	}
}

func (f *formatter) formatArgList(node *syntax.Node) {
	if node.DirectlyContainsKind(syntax.KindNewline) {
		f.formatArgListMultiline(node)
	} else {
		f.formatArgListInline(node)
	}
}

func (f *formatter) formatArgListInline(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindComma:
				f.write(", ")
			case syntax.KindEllipsis:
				f.write("...")
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatArgListMultiline(node *syntax.Node) {
	f.newline()
	f.indent++
	first := true
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			if v.Kind == syntax.KindEllipsis {
				f.write("...")
			}
		case *syntax.Node:
			if !first {
				f.write(",")
				f.newline()
			}
			f.writeIndent()
			f.formatExpr(v)
			first = false
		}
	}
	f.write(",")
	f.newline()
	f.indent--
	f.writeIndent()
}

func (f *formatter) formatParenExpr(node *syntax.Node) {
	f.write("(")
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() || v.Kind == syntax.KindParenL || v.Kind == syntax.KindParenR {
				continue
			}
			f.write(v.Text)
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
	f.write(")")
}

func (f *formatter) formatTupleExpr(node *syntax.Node) {
	if node.DirectlyContainsKind(syntax.KindNewline) {
		f.formatTupleMultiline(node)
	} else {
		f.formatTupleInline(node)
	}
}

func (f *formatter) formatTupleInline(node *syntax.Node) {
	f.write("[")
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindBracketL, syntax.KindBracketR:
			case syntax.KindComma:
				f.write(", ")
			default:
				f.write(v.Text)
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
	f.write("]")
}

func (f *formatter) formatTupleMultiline(node *syntax.Node) {
	f.write("[")
	f.newline()
	f.indent++
	first := true
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindBracketL, syntax.KindBracketR, syntax.KindComma:
			default:
				f.write(v.Text)
			}
		case *syntax.Node:
			if !first {
				f.write(",")
				f.newline()
			}
			f.writeIndent()
			f.formatExpr(v)
			first = false
		}
	}
	f.write(",")
	f.newline()
	f.indent--
	f.writeIndent()
	f.write("]")
}

func (f *formatter) formatObjectExpr(node *syntax.Node) {
	if node.DirectlyContainsKind(syntax.KindNewline) {
		f.formatObjectMultiline(node)
	} else {
		f.formatObjectInline(node)
	}
}

func objectElems(node *syntax.Node) []*syntax.Node {
	var out []*syntax.Node
	for _, c := range node.ChildNodes() {
		if c.Kind == syntax.KindObjectElem {
			out = append(out, c)
		}
	}
	return out
}

func (f *formatter) formatObjectInline(node *syntax.Node) {
	elems := objectElems(node)
	if len(elems) == 0 {
		f.write("{}")
		return
	}
	f.write("{")
	for i, elem := range elems {
		if i > 0 {
			f.write(", ")
		}
		f.formatObjectElemInline(elem)
	}
	f.write("}")
}

func (f *formatter) formatObjectMultiline(node *syntax.Node) {
	f.write("{")
	f.newline()
	f.indent++

	elems := objectElems(node)
	maxKeyLen := 0
	for _, e := range elems {
		if l := objectElemKeyLen(e); l > maxKeyLen {
			maxKeyLen = l
		}
	}

	for _, elem := range elems {
		f.writeIndent()
		f.formatObjectElemAligned(elem, maxKeyLen)
		f.newline()
	}

	f.indent--
	f.writeIndent()
	f.write("}")
}

// objectElemKeyLen measures the key's rendered text in grapheme
// clusters, not bytes: unlike attribute names (always plain
// identifiers), object element keys may be arbitrary quoted strings
// containing multi-byte characters.
func objectElemKeyLen(node *syntax.Node) int {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			if v.Kind == syntax.KindEq || v.Kind == syntax.KindColon || v.Kind == syntax.KindFatArrow {
				return 0
			}
		case *syntax.Node:
			return graphemeLen(strings.TrimSpace(v.Text()))
		}
	}
	return 0
}

func (f *formatter) formatObjectElemInline(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindEq, syntax.KindColon:
				f.write(" = ")
			case syntax.KindFatArrow:
				f.write(" => ")
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatObjectElemAligned(node *syntax.Node, maxKeyLen int) {
	keyLen := objectElemKeyLen(node)
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindEq, syntax.KindColon:
				f.padTo(maxKeyLen, keyLen)
				f.write(" = ")
			case syntax.KindFatArrow:
				f.padTo(maxKeyLen, keyLen)
				f.write(" => ")
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) padTo(maxKeyLen, keyLen int) {
	for i := 0; i < maxKeyLen-keyLen; i++ {
		f.buf.WriteByte(' ')
	}
}

func (f *formatter) formatAttrAccess(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindDot:
				f.write(".")
			case syntax.KindIdent, syntax.KindNumber:
				f.write(v.Text)
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatIndexExpr(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindBracketL:
				f.write("[")
			case syntax.KindBracketR:
				f.write("]")
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatAttrSplat(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindDot:
				f.write(".")
			case syntax.KindStar:
				f.write("*")
			}
		case *syntax.Node:
			if v.Kind == syntax.KindSplatBody {
				f.formatSplatBody(v)
			} else {
				f.formatExpr(v)
			}
		}
	}
}

func (f *formatter) formatIndexSplat(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindBracketL:
				f.write("[")
			case syntax.KindBracketR:
				f.write("]")
			case syntax.KindStar:
				f.write("*")
			}
		case *syntax.Node:
			if v.Kind == syntax.KindSplatBody {
				f.formatSplatBody(v)
			} else {
				f.formatExpr(v)
			}
		}
	}
}

func (f *formatter) formatSplatBody(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindDot:
				f.write(".")
			case syntax.KindIdent:
				f.write(v.Text)
			case syntax.KindBracketL:
				f.write("[")
			case syntax.KindBracketR:
				f.write("]")
			}
		case *syntax.Node:
			switch v.Kind {
			case syntax.KindAttrAccessExpr:
				f.formatAttrAccess(v)
			case syntax.KindIndexExpr:
				f.formatIndexExpr(v)
			default:
				f.formatExpr(v)
			}
		}
	}
}

func (f *formatter) formatForTuple(node *syntax.Node) {
	f.write("[")
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			// brackets already written/consumed above
		case *syntax.Node:
			switch v.Kind {
			case syntax.KindForIntro:
				f.formatForIntro(v)
				f.write(" ")
			case syntax.KindForCond:
				f.write(" ")
				f.formatForCond(v)
			default:
				f.formatExpr(v)
			}
		}
	}
	f.write("]")
}

func (f *formatter) formatForObject(node *syntax.Node) {
	f.write("{")
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindFatArrow:
				f.write(" => ")
			case syntax.KindEllipsis:
				f.write("...")
			}
		case *syntax.Node:
			switch v.Kind {
			case syntax.KindForIntro:
				f.formatForIntro(v)
				f.write(" ")
			case syntax.KindForCond:
				f.write(" ")
				f.formatForCond(v)
			default:
				f.formatExpr(v)
			}
		}
	}
	f.write("}")
}

func (f *formatter) formatForIntro(node *syntax.Node) {
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			if v.Kind.IsTrivia() {
				continue
			}
			switch v.Kind {
			case syntax.KindForKw:
				f.write("for ")
			case syntax.KindInKw:
				f.write(" in ")
			case syntax.KindIdent:
				f.write(v.Text)
			case syntax.KindComma:
				f.write(", ")
			case syntax.KindColon:
				f.write(" :")
			}
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

func (f *formatter) formatForCond(node *syntax.Node) {
	f.write("if ")
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Leaf:
			// IF_KW already accounted for by the literal "if " above
		case *syntax.Node:
			f.formatExpr(v)
		}
	}
}

// graphemeLen counts user-perceived character clusters rather than
// bytes, so alignment padding lines up visually even when a key
// contains combining marks or multi-byte runes.
func graphemeLen(s string) int {
	count := 0
	b := []byte(s)
	for len(b) > 0 {
		advance, _, err := textseg.ScanGraphemeClusters(b, true)
		if err != nil || advance <= 0 {
			break
		}
		b = b[advance:]
		count++
	}
	return count
}
