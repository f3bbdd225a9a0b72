package lexer

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF
	TOKEN_COMMENT

	// 标识符和字面量
	TOKEN_IDENT // 标识符
	TOKEN_INT   // 整数

	// 运算符
	TOKEN_ASSIGN   // :=
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *

	TOKEN_EQ     // =
	TOKEN_NOT_EQ // <>
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LT_EQ  // <=
	TOKEN_GT_EQ  // >=

	// 分隔符
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_COLON     // :
	TOKEN_DOT       // .
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )

	// 关键字
	TOKEN_PROGRAM   // program
	TOKEN_VAR       // var
	TOKEN_INTEGER   // integer
	TOKEN_BOOLEAN   // boolean
	TOKEN_PROCEDURE // procedure
	TOKEN_FUNCTION  // function
	TOKEN_BEGIN     // begin
	TOKEN_END       // end
	TOKEN_IF        // if
	TOKEN_THEN      // then
	TOKEN_ELSE      // else
	TOKEN_WHILE     // while
	TOKEN_DO        // do
	TOKEN_READ      // read
	TOKEN_WRITE     // write
	TOKEN_TRUE      // true
	TOKEN_FALSE     // false
	TOKEN_DIV       // div
	TOKEN_AND       // and
	TOKEN_OR        // or
	TOKEN_NOT       // not
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"program":   TOKEN_PROGRAM,
	"var":       TOKEN_VAR,
	"integer":   TOKEN_INTEGER,
	"boolean":   TOKEN_BOOLEAN,
	"procedure": TOKEN_PROCEDURE,
	"function":  TOKEN_FUNCTION,
	"begin":     TOKEN_BEGIN,
	"end":       TOKEN_END,
	"if":        TOKEN_IF,
	"then":      TOKEN_THEN,
	"else":      TOKEN_ELSE,
	"while":     TOKEN_WHILE,
	"do":        TOKEN_DO,
	"read":      TOKEN_READ,
	"write":     TOKEN_WRITE,
	"true":      TOKEN_TRUE,
	"false":     TOKEN_FALSE,
	"div":       TOKEN_DIV,
	"and":       TOKEN_AND,
	"or":        TOKEN_OR,
	"not":       TOKEN_NOT,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var tokenNames = map[TokenType]string{
	TOKEN_ILLEGAL:   "ILLEGAL",
	TOKEN_EOF:       "EOF",
	TOKEN_COMMENT:   "COMMENT",
	TOKEN_IDENT:     "IDENT",
	TOKEN_INT:       "INT",
	TOKEN_ASSIGN:    ":=",
	TOKEN_PLUS:      "+",
	TOKEN_MINUS:     "-",
	TOKEN_ASTERISK:  "*",
	TOKEN_EQ:        "=",
	TOKEN_NOT_EQ:    "<>",
	TOKEN_LT:        "<",
	TOKEN_GT:        ">",
	TOKEN_LT_EQ:     "<=",
	TOKEN_GT_EQ:     ">=",
	TOKEN_COMMA:     ",",
	TOKEN_SEMICOLON: ";",
	TOKEN_COLON:     ":",
	TOKEN_DOT:       ".",
	TOKEN_LPAREN:    "(",
	TOKEN_RPAREN:    ")",
	TOKEN_PROGRAM:   "program",
	TOKEN_VAR:       "var",
	TOKEN_INTEGER:   "integer",
	TOKEN_BOOLEAN:   "boolean",
	TOKEN_PROCEDURE: "procedure",
	TOKEN_FUNCTION:  "function",
	TOKEN_BEGIN:     "begin",
	TOKEN_END:       "end",
	TOKEN_IF:        "if",
	TOKEN_THEN:      "then",
	TOKEN_ELSE:      "else",
	TOKEN_WHILE:     "while",
	TOKEN_DO:        "do",
	TOKEN_READ:      "read",
	TOKEN_WRITE:     "write",
	TOKEN_TRUE:      "true",
	TOKEN_FALSE:     "false",
	TOKEN_DIV:       "div",
	TOKEN_AND:       "and",
	TOKEN_OR:        "or",
	TOKEN_NOT:       "not",
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t TokenType) String() string { return TokenTypeName(t) }
