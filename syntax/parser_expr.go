package syntax

// parseExpression is the grammar's expression entry point: the
// conditional expression, which is the lowest-precedence production.
func parseExpression(p *Parser) {
	parseConditionalExpr(p)
}

func parseConditionalExpr(p *Parser) {
	cp := p.checkpoint()
	parseBinaryExpr(p, 0)

	p.skipTrivia()
	if k, ok := p.peek(); ok && k == KindQuestion {
		p.startNodeAt(cp, KindConditionalExpr)
		p.bump() // ?
		p.skipTrivia()
		parseExpression(p)
		p.skipTrivia()
		p.expect(KindColon)
		p.skipTrivia()
		parseExpression(p)
		p.finishNode()
	}
}

// binaryBindingPower returns the (left, right) binding powers for a
// binary operator kind, or ok=false if kind isn't one.
func binaryBindingPower(kind Kind) (left, right uint8, ok bool) {
	switch kind {
	case KindPipePipe:
		return 1, 2, true
	case KindAmpAmp:
		return 3, 4, true
	case KindEqEq, KindBangEq:
		return 5, 6, true
	case KindLt, KindLtEq, KindGt, KindGtEq:
		return 7, 8, true
	case KindPlus, KindMinus:
		return 9, 10, true
	case KindStar, KindSlash, KindPercent:
		return 11, 12, true
	default:
		return 0, 0, false
	}
}

func parseBinaryExpr(p *Parser, minBP uint8) {
	cp := p.checkpoint()
	parseUnaryExpr(p)

	for {
		p.skipTrivia()
		op, ok := p.peek()
		if !ok {
			break
		}
		leftBP, rightBP, isBinOp := binaryBindingPower(op)
		if !isBinOp {
			break
		}
		if leftBP < minBP {
			break
		}

		p.startNodeAt(cp, KindBinaryExpr)
		p.bump() // operator
		p.skipTrivia()
		parseBinaryExpr(p, rightBP)
		p.finishNode()
	}
}

func parseUnaryExpr(p *Parser) {
	switch k, ok := p.peek(); {
	case ok && (k == KindMinus || k == KindBang):
		p.startNode(KindUnaryExpr)
		p.bump() // operator
		p.skipTrivia()
		parseUnaryExpr(p)
		p.finishNode()
	default:
		parsePostfixExpr(p)
	}
}

func parsePostfixExpr(p *Parser) {
	cp := p.checkpoint()
	parsePrimaryExpr(p)

	for {
		p.skipTrivia()
		k, ok := p.peek()
		if !ok {
			break
		}
		switch k {
		case KindDot:
			if next, ok := p.peekNonTriviaNth(1); ok && next == KindStar {
				p.startNodeAt(cp, KindAttrSplatExpr)
				p.bump() // .
				p.bump() // *
				parseSplatBody(p)
				p.finishNode()
				continue
			}
			p.startNodeAt(cp, KindAttrAccessExpr)
			p.bump() // .
			p.skipTrivia()
			switch k2, ok2 := p.peek(); {
			case ok2 && k2 == KindIdent:
				p.bump()
			case ok2 && k2 == KindNumber:
				// tuple access like tuple.0
				p.bump()
			default:
				p.expect(KindIdent)
			}
			p.finishNode()

		case KindBracketL:
			if next, ok := p.peekNonTriviaNth(1); ok && next == KindStar {
				p.startNodeAt(cp, KindIndexSplatExpr)
				p.bump() // [
				p.skipTrivia()
				p.bump() // *
				p.skipTrivia()
				p.expect(KindBracketR)
				parseSplatBody(p)
				p.finishNode()
				continue
			}
			p.startNodeAt(cp, KindIndexExpr)
			p.bump() // [
			p.skipTrivia()
			parseExpression(p)
			p.skipTrivia()
			p.expect(KindBracketR)
			p.finishNode()

		default:
			return
		}
	}
}

func parseSplatBody(p *Parser) {
	hasBody := false
	switch k, ok := p.peekNonTrivia(); {
	case ok && k == KindDot:
		hasBody = true
	case ok && k == KindBracketL:
		// [*] starts a new splat, not part of this splat body
		next, ok2 := p.peekNonTriviaNth(1)
		hasBody = !(ok2 && next == KindStar)
	}
	if !hasBody {
		return
	}

	p.startNode(KindSplatBody)
	for {
		p.skipTrivia()
		k, ok := p.peek()
		if !ok {
			break
		}
		switch k {
		case KindDot:
			// .* starts a new splat - stop here
			if next, ok2 := p.peekNonTriviaNth(1); ok2 && next == KindStar {
				goto done
			}
			p.startNode(KindAttrAccessExpr)
			p.bump() // .
			p.skipTrivia()
			p.expect(KindIdent)
			p.finishNode()
		case KindBracketL:
			// [*] starts a new splat - stop here
			if next, ok2 := p.peekNonTriviaNth(1); ok2 && next == KindStar {
				goto done
			}
			p.startNode(KindIndexExpr)
			p.bump() // [
			p.skipTrivia()
			parseExpression(p)
			p.skipTrivia()
			p.expect(KindBracketR)
			p.finishNode()
		default:
			goto done
		}
	}
done:
	p.finishNode()
}

func parsePrimaryExpr(p *Parser) {
	p.skipTrivia()
	k, ok := p.peek()
	switch {
	case ok && k == KindNumber:
		p.startNode(KindLiteralExpr)
		p.bump()
		p.finishNode()

	case ok && (k == KindTrueKw || k == KindFalseKw || k == KindNullKw):
		p.startNode(KindLiteralExpr)
		p.bump()
		p.finishNode()

	case ok && k == KindIdent:
		if next, ok2 := p.peekNonTriviaNth(1); ok2 && next == KindParenL {
			parseFunctionCall(p)
		} else {
			p.startNode(KindVariableExpr)
			p.bump()
			p.finishNode()
		}

	case ok && k == KindQuote:
		parseStringExpr(p)

	case ok && k == KindHeredocOpen:
		parseHeredocExpr(p)

	case ok && k == KindParenL:
		parseParenExpr(p)

	case ok && k == KindBracketL:
		if isForExpr(p) {
			parseForTupleExpr(p)
		} else {
			parseTupleExpr(p)
		}

	case ok && k == KindBraceL:
		if isForExpr(p) {
			parseForObjectExpr(p)
		} else {
			parseObjectExpr(p)
		}

	default:
		offset := p.currentOffset()
		found := "EOF"
		if ok {
			found = k.String()
		}
		p.errors = append(p.errors, ParseError{
			Message: "expected expression, found " + found,
			Offset:  offset,
		})
		p.startNode(KindError)
		if !p.atEnd() {
			p.bump()
		}
		p.finishNode()
	}
}

func parseFunctionCall(p *Parser) {
	p.startNode(KindFunctionCall)
	p.bump() // IDENT
	p.skipTrivia()
	p.expect(KindParenL)
	p.skipTrivia()

	p.startNode(KindArgList)
	if k, ok := p.peek(); !ok || k != KindParenR {
		parseExpression(p)
		for {
			p.skipTrivia()
			if k, ok := p.peek(); ok && k == KindComma {
				p.bump()
				p.skipTrivia()
				if k2, ok2 := p.peek(); ok2 && k2 == KindParenR {
					break // trailing comma
				}
				if k2, ok2 := p.peek(); ok2 && k2 == KindEllipsis {
					p.bump()
					break
				}
				parseExpression(p)
			} else if ok && k == KindEllipsis {
				p.bump()
				break
			} else {
				break
			}
		}
	}
	p.finishNode() // ARG_LIST

	p.skipTrivia()
	p.expect(KindParenR)
	p.finishNode() // FUNCTION_CALL
}

func parseParenExpr(p *Parser) {
	p.startNode(KindParenExpr)
	p.bump() // (
	p.skipTrivia()
	parseExpression(p)
	p.skipTrivia()
	p.expect(KindParenR)
	p.finishNode()
}

func parseTupleExpr(p *Parser) {
	p.startNode(KindTupleExpr)
	p.bump() // [
	p.skipTrivia()

	if k, ok := p.peek(); !ok || k != KindBracketR {
		parseExpression(p)
		for {
			p.skipTrivia()
			if k, ok := p.peek(); ok && k == KindComma {
				p.bump()
				p.skipTrivia()
				if k2, ok2 := p.peek(); ok2 && k2 == KindBracketR {
					break // trailing comma
				}
				parseExpression(p)
			} else {
				break
			}
		}
	}

	p.skipTrivia()
	p.expect(KindBracketR)
	p.finishNode()
}

func parseObjectExpr(p *Parser) {
	p.startNode(KindObjectExpr)
	p.bump() // {
	p.skipTrivia()

	for {
		k, ok := p.peek()
		if !ok || k == KindBraceR {
			break
		}
		parseObjectElem(p)
		p.skipTrivia()
		if k2, ok2 := p.peek(); ok2 && k2 == KindComma {
			p.bump()
		}
		p.skipTrivia()
	}

	p.expect(KindBraceR)
	p.finishNode()
}

func parseObjectElem(p *Parser) {
	p.startNode(KindObjectElem)
	if k, ok := p.peek(); ok && k == KindParenL {
		parseParenExpr(p)
	} else {
		parseExpression(p)
	}
	p.skipTrivia()
	switch k, ok := p.peek(); {
	case ok && k == KindEq:
		p.bump()
	case ok && k == KindColon:
		p.bump()
	case ok && k == KindFatArrow:
		p.bump()
	default:
		offset := p.currentOffset()
		p.errors = append(p.errors, ParseError{
			Message: "expected '=', ':', or '=>' in object element",
			Offset:  offset,
		})
	}
	p.skipTrivia()
	parseExpression(p)
	p.finishNode()
}

func isForExpr(p *Parser) bool {
	next, ok := p.peekNonTriviaNth(1)
	return ok && next == KindForKw
}

func parseForIntro(p *Parser) {
	p.startNode(KindForIntro)
	p.expect(KindForKw)
	p.skipTrivia()
	p.expect(KindIdent)
	p.skipTrivia()
	if k, ok := p.peek(); ok && k == KindComma {
		p.bump()
		p.skipTrivia()
		p.expect(KindIdent)
		p.skipTrivia()
	}
	p.expect(KindInKw)
	p.skipTrivia()
	parseExpression(p)
	p.skipTrivia()
	p.expect(KindColon)
	p.finishNode()
}

func parseForCond(p *Parser) {
	if k, ok := p.peekNonTrivia(); ok && k == KindIfKw {
		p.skipTrivia()
		p.startNode(KindForCond)
		p.bump() // if
		p.skipTrivia()
		parseExpression(p)
		p.finishNode()
	}
}

func parseForTupleExpr(p *Parser) {
	p.startNode(KindForTupleExpr)
	p.bump() // [
	p.skipTrivia()
	parseForIntro(p)
	p.skipTrivia()
	parseExpression(p)
	p.skipTrivia()
	parseForCond(p)
	p.skipTrivia()
	p.expect(KindBracketR)
	p.finishNode()
}

func parseForObjectExpr(p *Parser) {
	p.startNode(KindForObjectExpr)
	p.bump() // {
	p.skipTrivia()
	parseForIntro(p)
	p.skipTrivia()
	parseExpression(p) // key expr
	p.skipTrivia()
	p.expect(KindFatArrow)
	p.skipTrivia()
	parseExpression(p) // value expr
	p.skipTrivia()
	if k, ok := p.peek(); ok && k == KindEllipsis {
		p.bump()
	}
	p.skipTrivia()
	parseForCond(p)
	p.skipTrivia()
	p.expect(KindBraceR)
	p.finishNode()
}
