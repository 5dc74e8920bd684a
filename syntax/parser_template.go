package syntax

// parseStringExpr parses a quoted string template: an opening quote,
// a run of fragments/escapes/interpolations/directives, and a closing
// quote. It is also used to parse quoted block labels.
func parseStringExpr(p *Parser) {
	p.startNode(KindStringExpr)
	p.expect(KindQuote) // opening quote

	for {
		k, ok := p.peek()
		if !ok {
			offset := p.currentOffset()
			p.errors = append(p.errors, ParseError{Message: "unterminated string", Offset: offset})
			break
		}
		switch k {
		case KindQuote:
			p.bump() // closing quote
			goto done
		case KindStringFragment, KindEscapeSequence:
			p.bump()
		case KindDollarOpen:
			parseTemplateInterpolation(p)
		case KindPercentOpen:
			parseTemplateDirective(p)
		default:
			// Unexpected token inside string - might happen with errors.
			p.bump()
		}
	}
done:
	p.finishNode()
}

// parseHeredocExpr parses a heredoc template body from its opening
// "<<[-]ANCHOR" token through the closing anchor line.
func parseHeredocExpr(p *Parser) {
	p.startNode(KindHeredocExpr)
	p.bump() // HEREDOC_OPEN

	for {
		k, ok := p.peek()
		if !ok {
			offset := p.currentOffset()
			p.errors = append(p.errors, ParseError{Message: "unterminated heredoc", Offset: offset})
			break
		}
		switch k {
		case KindHeredocAnchor:
			p.bump() // closing anchor
			goto done
		case KindHeredocContent:
			p.bump()
		case KindDollarOpen:
			parseTemplateInterpolation(p)
		case KindPercentOpen:
			parseTemplateDirective(p)
		default:
			p.bump()
		}
	}
done:
	p.finishNode()
}

func parseTemplateInterpolation(p *Parser) {
	p.startNode(KindTemplateInterpolation)
	p.bump() // DOLLAR_OPEN (${)

	// Optional tilde for strip marker.
	if k, ok := p.peek(); ok && k == KindTilde {
		p.bump()
	}

	p.skipTrivia()
	parseExpression(p)
	p.skipTrivia()

	// Optional tilde before closing.
	if k, ok := p.peek(); ok && k == KindTilde {
		p.bump()
	}

	p.expect(KindTemplateClose) // }
	p.finishNode()
}

func parseTemplateDirective(p *Parser) {
	p.startNode(KindTemplateDirective)
	p.bump() // PERCENT_OPEN (%{)

	// Optional tilde for strip marker.
	if k, ok := p.peek(); ok && k == KindTilde {
		p.bump()
	}

	p.skipTrivia()

	k, ok := p.peek()
	switch {
	case ok && k == KindIfKw:
		p.bump()
		p.skipTrivia()
		parseExpression(p)
	case ok && k == KindElseKw:
		p.bump()
	case ok && k == KindEndifKw:
		p.bump()
	case ok && k == KindForKw:
		p.bump()
		p.skipTrivia()
		p.expect(KindIdent)
		p.skipTrivia()
		if k2, ok2 := p.peek(); ok2 && k2 == KindComma {
			p.bump()
			p.skipTrivia()
			p.expect(KindIdent)
			p.skipTrivia()
		}
		p.expect(KindInKw)
		p.skipTrivia()
		parseExpression(p)
	case ok && k == KindEndforKw:
		p.bump()
	default:
		offset := p.currentOffset()
		msg := "expected directive keyword (if, else, endif, for, endfor)"
		suggestion := ""
		if ok && k == KindIdent {
			if t := p.current(); t != nil {
				suggestion = suggestKeyword(t.Text, directiveKeywords)
			}
		}
		p.errors = append(p.errors, ParseError{Message: msg, Offset: offset, Suggestion: suggestion})
	}

	p.skipTrivia()

	// Optional tilde before closing.
	if k2, ok2 := p.peek(); ok2 && k2 == KindTilde {
		p.bump()
	}

	p.expect(KindTemplateClose) // }
	p.finishNode()
}
