package syntax

// Parser drives a Builder over a flat token stream using two
// lookahead primitives, peek and peekNonTriviaNth, producing a CST
// while accumulating ParseErrors for any structural problem. Parsing
// never aborts before end of input: the recovery policy in
// parser_body.go and parser_expr.go always makes forward progress.
type Parser struct {
	tokens    []Token
	pos       int
	builder   *Builder
	errors    []ParseError
	sourceLen int
}

// NewParser returns a Parser ready to consume tokens over source
// (source is needed only to compute the end-of-input offset for
// errors reported at EOF).
func NewParser(tokens []Token, source string) *Parser {
	return &Parser{
		tokens:    tokens,
		builder:   NewBuilder(),
		sourceLen: len(source),
	}
}

// Parse runs the grammar starting at the source-file production and
// returns the completed tree along with every ParseError recorded.
func (p *Parser) Parse() (*Node, []ParseError) {
	parseSourceFile(p)
	return p.builder.Finish(), p.errors
}

// ── Navigation ───────────────────────────────────────────────

func (p *Parser) current() *Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *Parser) peek() (Kind, bool) {
	if t := p.current(); t != nil {
		return t.Kind, true
	}
	return 0, false
}

// peekNonTrivia returns the next non-trivia kind without advancing.
func (p *Parser) peekNonTrivia() (Kind, bool) {
	return p.peekNonTriviaNth(0)
}

// peekNonTriviaNth returns the n-th (0-based) non-trivia kind ahead of
// the current position, without advancing.
func (p *Parser) peekNonTriviaNth(n int) (Kind, bool) {
	count := 0
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].Kind.IsTrivia() {
			continue
		}
		if count == n {
			return p.tokens[i].Kind, true
		}
		count++
	}
	return 0, false
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// ── Token consumption ────────────────────────────────────────

func (p *Parser) bump() {
	if p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		p.builder.Token(t.Kind, t.Text)
		p.pos++
	}
}

func (p *Parser) eat(kind Kind) bool {
	if k, ok := p.peek(); ok && k == kind {
		p.bump()
		return true
	}
	return false
}

func (p *Parser) expect(kind Kind) bool {
	if p.eat(kind) {
		return true
	}
	offset := p.currentOffset()
	found := "EOF"
	if k, ok := p.peek(); ok {
		found = k.String()
	}
	p.errors = append(p.errors, ParseError{
		Message: "expected " + kind.String() + ", found " + found,
		Offset:  offset,
	})
	return false
}

func (p *Parser) skipTrivia() {
	for {
		k, ok := p.peek()
		if !ok || !k.IsTrivia() {
			return
		}
		p.bump()
	}
}

func (p *Parser) currentOffset() int {
	if p.current() != nil {
		offset := 0
		for _, t := range p.tokens[:p.pos] {
			offset += len(t.Text)
		}
		return offset
	}
	return p.sourceLen
}

// ── Node building ────────────────────────────────────────────

func (p *Parser) startNode(kind Kind)                         { p.builder.StartNode(kind) }
func (p *Parser) finishNode()                                 { p.builder.FinishNode() }
func (p *Parser) checkpoint() Checkpoint                       { return p.builder.Checkpoint() }
func (p *Parser) startNodeAt(cp Checkpoint, kind Kind)         { p.builder.StartNodeAt(cp, kind) }
