package lexer

import (
	"unicode"

	"github.com/AlexxNica/ts2re/internal/token"
)

type Lexer struct {
	input []rune

	pos int

	ch   rune
	line int
	col  int
}

func New(input string) *Lexer {
	l := &Lexer{
		input: []rune(input),
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := token.Position{
		Line:   l.line,
		Column: l.col,
	}

	ch := l.ch

	// EOF
	if ch == 0 {
		return token.Token{Kind: token.EOF, Lexeme: "", Pos: pos}
	}

	// Numbers (solo per inizializzatori di enum e literal types)
	if isDigit(ch) {
		return token.Token{Kind: token.Number, Lexeme: l.readNumber(), Pos: pos}
	}

	// Identifiers / keywords
	if isLetter(ch) {
		lit := l.readIdentifier()
		return token.Token{Kind: token.LookupIdent(lit), Lexeme: lit, Pos: pos}
	}

	// Strings
	if ch == '"' || ch == '\'' {
		lit, ok := l.readString(ch)
		if !ok {
			return token.Token{Kind: token.Illegal, Lexeme: lit, Pos: pos}
		}
		return token.Token{Kind: token.String, Lexeme: lit, Pos: pos}
	}

	var kind token.Kind
	lexeme := string(ch)

	switch ch {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semi
	case ':':
		kind = token.Colon
	case '?':
		kind = token.Question
	case '|':
		kind = token.Pipe
	case '&':
		kind = token.Amp
	case '.':
		if l.peekChar() == '.' && l.peekChar2() == '.' {
			l.readChar()
			l.readChar()
			kind = token.Ellipsis
			lexeme = "..."
		} else {
			kind = token.Dot
		}
	case '=':
		if l.peekChar() == '>' {
			l.readChar()
			kind = token.Arrow
			lexeme = "=>"
		} else {
			kind = token.Assign
		}
	case '-', '+':
		// segno di un numero (inizializzatori di enum)
		if isDigit(l.peekChar()) {
			l.readChar()
			lit := string(ch) + l.readNumber()
			return token.Token{Kind: token.Number, Lexeme: lit, Pos: pos}
		}
		kind = token.Illegal
	default:
		kind = token.Illegal
	}

	l.readChar()
	return token.Token{Kind: kind, Lexeme: lexeme, Pos: pos}
}

// Tokens esaurisce l'input e restituisce tutti i token, EOF incluso.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.pos >= len(l.input) {
		// avanza comunque oltre la fine: le slice dei lessemi contano
		// su pos - 1 come indice successivo all'ultimo carattere letto
		l.ch = 0
		l.pos = len(l.input) + 1
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
	l.col++
}

func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekChar2() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			l.readChar() // '*'
			l.readChar() // '/'
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos - 1
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start : l.pos-1])
}

func (l *Lexer) readNumber() string {
	start := l.pos - 1
	for isDigit(l.ch) || l.ch == '.' || l.ch == 'x' || l.ch == 'e' ||
		l.ch == 'E' || (l.ch >= 'a' && l.ch <= 'f') || (l.ch >= 'A' && l.ch <= 'F') {
		l.readChar()
	}
	return string(l.input[start : l.pos-1])
}

// readString legge fino al delimitatore di chiusura; il lessema non
// include le virgolette.
func (l *Lexer) readString(delim rune) (string, bool) {
	l.readChar() // virgoletta di apertura
	var out []rune
	for l.ch != delim {
		if l.ch == 0 || l.ch == '\n' {
			return string(out), false
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, l.ch)
			}
			l.readChar()
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}
	l.readChar() // virgoletta di chiusura
	return string(out), true
}

func isLetter(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
