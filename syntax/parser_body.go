package syntax

// parseSourceFile is the grammar's start symbol: SOURCE_FILE ⇒ BODY.
func parseSourceFile(p *Parser) {
	p.startNode(KindSourceFile)
	parseBody(p)
	p.finishNode()
}

// parseBody parses a possibly-empty sequence of attributes and blocks,
// terminating at end of input or at a '}' that closes an enclosing
// block.
func parseBody(p *Parser) {
	p.startNode(KindBody)
	for {
		p.skipTrivia()
		if p.atEnd() {
			break
		}

		k, _ := p.peek()
		switch {
		case k == KindBraceR:
			// end of enclosing block body
			goto done
		case k.IsIdentLike():
			// Lookahead to disambiguate attribute ("IDENT = expr") from
			// block ("IDENT label* { ... }").
			next, ok := p.peekNonTriviaNth(1)
			switch {
			case ok && next == KindEq:
				parseAttribute(p)
			case ok && (next == KindBraceL || next.IsIdentLike() || next == KindQuote || next == KindStringLit):
				parseBlock(p)
			default:
				errorRecover(p)
			}
		default:
			errorRecover(p)
		}
	}
done:
	p.finishNode()
}

func parseAttribute(p *Parser) {
	p.startNode(KindAttribute)
	p.bump() // ident-like name
	p.skipTrivia()
	p.expect(KindEq)
	p.skipTrivia()
	parseExpression(p)
	eatTrailingNewline(p)
	p.finishNode()
}

func parseBlock(p *Parser) {
	p.startNode(KindBlock)
	p.bump() // ident-like block type
	p.skipTrivia()

	for {
		k, ok := p.peek()
		if !ok {
			break
		}
		if k.IsIdentLike() {
			p.startNode(KindBlockLabel)
			p.bump()
			p.finishNode()
			p.skipTrivia()
			continue
		}
		if k == KindQuote {
			p.startNode(KindBlockLabel)
			parseStringExpr(p)
			p.finishNode()
			p.skipTrivia()
			continue
		}
		break
	}

	p.expect(KindBraceL)
	eatTrailingNewline(p)

	parseBody(p)

	p.skipTrivia()
	p.expect(KindBraceR)
	eatTrailingNewline(p)
	p.finishNode()
}

// eatTrailingNewline consumes whitespace and at most one newline (or a
// trailing line comment and the newline following it), the way a
// single attribute or block line is terminated.
func eatTrailingNewline(p *Parser) {
	for {
		k, ok := p.peek()
		if !ok {
			return
		}
		switch k {
		case KindWhitespace:
			p.bump()
		case KindNewline:
			p.bump()
			return
		case KindLineComment:
			p.bump()
			if nk, ok := p.peek(); ok && nk == KindNewline {
				p.bump()
			}
			return
		default:
			return
		}
	}
}

// errorRecover records a ParseError for an unexpected token at body
// position, opens an ERROR node, and skips tokens up to (and
// including) the next NEWLINE, or up to (but not including) the next
// '}'. Every skipped token becomes a leaf of the ERROR node, so the
// lossless invariant holds through recovery.
func errorRecover(p *Parser) {
	offset := p.currentOffset()
	found := KindErrorToken
	if k, ok := p.peek(); ok {
		found = k
	}
	msg := "unexpected token " + found.String()
	suggestion := ""
	if k, ok := p.peek(); ok && k == KindIdent {
		// An identifier at body position that isn't followed by '=' or a
		// block opener is often a misspelled block-type or directive
		// keyword; offer a suggestion without changing recovery.
		if t := p.current(); t != nil {
			suggestion = suggestKeyword(t.Text, directiveKeywords)
		}
	}
	p.errors = append(p.errors, ParseError{Message: msg, Offset: offset, Suggestion: suggestion})

	p.startNode(KindError)
	for {
		k, ok := p.peek()
		if !ok {
			break
		}
		if k == KindNewline {
			p.bump()
			break
		}
		if k == KindBraceR {
			break // don't consume the closing brace
		}
		p.bump()
	}
	p.finishNode()
}
