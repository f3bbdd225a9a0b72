package lexer

import (
	"unicode/utf8"
)

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前行号
	column  int  // 当前列号
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken 获取下一个 token
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	tok.Line = l.line
	tok.Column = l.column

	switch l.ch {
	case '+':
		tok = l.newToken(TOKEN_PLUS, l.ch)
	case '-':
		tok = l.newToken(TOKEN_MINUS, l.ch)
	case '*':
		tok = l.newToken(TOKEN_ASTERISK, l.ch)
	case '=':
		tok = l.newToken(TOKEN_EQ, l.ch)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_LT_EQ, Literal: "<=", Line: tok.Line, Column: tok.Column}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = Token{Type: TOKEN_NOT_EQ, Literal: "<>", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_LT, l.ch)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_GT_EQ, Literal: ">=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_GT, l.ch)
		}
	case ':':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_ASSIGN, Literal: ":=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_COLON, l.ch)
		}
	case ',':
		tok = l.newToken(TOKEN_COMMA, l.ch)
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON, l.ch)
	case '.':
		tok = l.newToken(TOKEN_DOT, l.ch)
	case '(':
		if l.peekChar() == '*' {
			tok.Type = TOKEN_COMMENT
			tok.Literal = l.readBlockComment("*)")
			return tok
		}
		tok = l.newToken(TOKEN_LPAREN, l.ch)
	case ')':
		tok = l.newToken(TOKEN_RPAREN, l.ch)
	case '{':
		tok.Type = TOKEN_COMMENT
		tok.Literal = l.readBlockComment("}")
		return tok
	case '/':
		if l.peekChar() == '/' {
			tok.Type = TOKEN_COMMENT
			tok.Literal = l.readLineComment()
			return tok
		}
		tok = l.newToken(TOKEN_ILLEGAL, l.ch)
	case 0:
		tok.Literal = ""
		tok.Type = TOKEN_EOF
		return tok
	default:
		if l.isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = LookupIdent(tok.Literal)
			return tok
		} else if l.isDigit(l.ch) {
			tok.Literal = l.readNumber()
			tok.Type = TOKEN_INT
			return tok
		} else if l.ch >= utf8.RuneSelf {
			// 非 ASCII 字符整体作为一个非法 token
			tok.Literal = l.readRune()
			tok.Type = TOKEN_ILLEGAL
			return tok
		} else {
			tok = l.newToken(TOKEN_ILLEGAL, l.ch)
		}
	}

	l.readChar()
	return tok
}

// newToken 创建新的 token
func (l *Lexer) newToken(tokenType TokenType, ch byte) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

// skipWhitespace 跳过空白字符
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for l.isLetter(l.ch) || l.isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber 读取十进制整数
func (l *Lexer) readNumber() string {
	pos := l.pos
	for l.isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readLineComment 读取单行注释
func (l *Lexer) readLineComment() string {
	pos := l.pos
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readBlockComment 读取块注释 { ... } 或 (* ... *)，未闭合时读到文件结尾
func (l *Lexer) readBlockComment(closer string) string {
	pos := l.pos
	l.readChar()
	if closer == "*)" {
		l.readChar() // 跳过 *
	}
	for l.ch != 0 {
		if closer == "}" && l.ch == '}' {
			l.readChar()
			break
		}
		if closer == "*)" && l.ch == '*' && l.peekChar() == ')' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readRune 读取一个完整的 UTF-8 字符
func (l *Lexer) readRune() string {
	pos := l.pos
	_, size := utf8.DecodeRuneInString(l.input[pos:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// isLetter 标识符只允许 ASCII 字母和下划线
func (l *Lexer) isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit 判断是否为数字
func (l *Lexer) isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 将输入字符串转换为 token 列表
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
