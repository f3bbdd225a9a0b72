package parser

import (
	"fmt"

	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/i18n"
	"github.com/tangzhangming/rascal/internal/lexer"
)

// Parser 语法分析器，自底向上调用 ast.Builder 构造语法树
type Parser struct {
	l         *lexer.Lexer
	b         *ast.Builder
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []string
}

// New 创建一个新的语法分析器
func New(l *lexer.Lexer, b *ast.Builder) *Parser {
	p := &Parser{l: l, b: b, errors: []string{}}
	// 读取两个 token，初始化 curToken 和 peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Errors 返回解析过程中的错误
func (p *Parser) Errors() []string {
	return p.errors
}

// ErrorList 是带位置信息的语法错误列表
type ErrorList []string

func (e ErrorList) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0]
	}
	return fmt.Sprintf("%s (and %d more errors)", e[0], len(e)-1)
}

// Parse 解析一个完整的 Rascal 程序
func Parse(input string) (*ast.Program, error) {
	return ParseWithBuilder(ast.NewBuilder(), input)
}

// ParseWithBuilder 与 Parse 相同，但节点由调用方提供的 Builder 分配，便于统计
func ParseWithBuilder(b *ast.Builder, input string) (*ast.Program, error) {
	p := New(lexer.New(input), b)
	prog := p.ParseProgram()
	if len(p.errors) > 0 {
		return nil, ErrorList(p.errors)
	}
	return prog, nil
}

// nextToken 前进到下一个 token
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	// 跳过注释
	for p.peekToken.Type == lexer.TOKEN_COMMENT {
		p.peekToken = p.l.NextToken()
	}
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek 期望下一个 token 类型并前进
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// peekError 记录期望错误
func (p *Parser) peekError(t lexer.TokenType) {
	if tok := p.peekToken; tok.Type == lexer.TOKEN_ILLEGAL {
		p.errors = append(p.errors, i18n.T(i18n.ErrIllegalChar, tok.Line, tok.Column, tok.Literal))
		return
	}
	msg := i18n.T(i18n.ErrExpectedToken,
		p.peekToken.Line, p.peekToken.Column,
		lexer.TokenTypeName(t), describe(p.peekToken))
	p.errors = append(p.errors, msg)
}

// curError 当前 token 不是期望的类型
func (p *Parser) curError(t lexer.TokenType) {
	msg := i18n.T(i18n.ErrExpectedToken,
		p.curToken.Line, p.curToken.Column,
		lexer.TokenTypeName(t), describe(p.curToken))
	p.errors = append(p.errors, msg)
}

// unexpected 记录意外 token，非法字符单独报告
func (p *Parser) unexpected() {
	tok := p.curToken
	if tok.Type == lexer.TOKEN_ILLEGAL {
		p.errors = append(p.errors, i18n.T(i18n.ErrIllegalChar, tok.Line, tok.Column, tok.Literal))
		return
	}
	p.errors = append(p.errors, i18n.T(i18n.ErrUnexpectedToken, tok.Line, tok.Column, describe(tok)))
}

func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_IDENT, lexer.TOKEN_INT:
		return fmt.Sprintf("%s %q", lexer.TokenTypeName(tok.Type), tok.Literal)
	}
	return lexer.TokenTypeName(tok.Type)
}

// ParseProgram 解析 program id ; block .
// 出现任何错误时返回 nil
func (p *Parser) ParseProgram() *ast.Program {
	if !p.curTokenIs(lexer.TOKEN_PROGRAM) {
		p.curError(lexer.TOKEN_PROGRAM)
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	p.nextToken()

	blk := p.parseBlock()
	if blk == nil || !p.expectPeek(lexer.TOKEN_DOT) {
		return nil
	}
	if !p.peekTokenIs(lexer.TOKEN_EOF) {
		tok := p.peekToken
		p.errors = append(p.errors, i18n.T(i18n.ErrTrailingInput, tok.Line, tok.Column, describe(tok)))
	}
	if len(p.errors) > 0 {
		return nil
	}
	return p.b.Program(name, blk)
}

// parseBlock 解析 [var ...] {procedure|function ...} begin ... end
// 结束时 curToken 为 end
func (p *Parser) parseBlock() *ast.Block {
	var vars *ast.DeclList
	if p.curTokenIs(lexer.TOKEN_VAR) {
		var ok bool
		if vars, ok = p.parseVarSection(); !ok {
			return nil
		}
		p.nextToken()
	}

	var subs *ast.DeclList
	for p.curTokenIs(lexer.TOKEN_PROCEDURE) || p.curTokenIs(lexer.TOKEN_FUNCTION) {
		d := p.parseSubroutine()
		if d == nil {
			return nil
		}
		subs = p.b.AppendDecl(subs, d)
		p.nextToken()
	}

	if !p.curTokenIs(lexer.TOKEN_BEGIN) {
		p.curError(lexer.TOKEN_BEGIN)
		return nil
	}
	stmts := p.parseStatementSequence()
	return p.b.Block(vars, subs, stmts)
}

// parseVarSection 解析 var (idlist : type ;)+，结束时 curToken 为最后一个 ;
func (p *Parser) parseVarSection() (*ast.DeclList, bool) {
	var vars *ast.DeclList
	for {
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil, false
		}
		ids, ok := p.parseIdentList()
		if !ok || !p.expectPeek(lexer.TOKEN_COLON) {
			return nil, false
		}
		p.nextToken()
		typ, ok := p.parseType()
		if !ok || !p.expectPeek(lexer.TOKEN_SEMICOLON) {
			return nil, false
		}
		vars = p.b.AppendDecl(vars, p.b.VarDecl(ids, typ))
		if !p.peekTokenIs(lexer.TOKEN_IDENT) {
			return vars, true
		}
	}
}

// parseSubroutine 解析过程或函数声明，结束时 curToken 为末尾的 ;
func (p *Parser) parseSubroutine() ast.Decl {
	isFunc := p.curTokenIs(lexer.TOKEN_FUNCTION)
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.curToken.Literal

	var params *ast.ParamList
	if p.peekTokenIs(lexer.TOKEN_LPAREN) {
		p.nextToken()
		var ok bool
		if params, ok = p.parseParams(); !ok {
			return nil
		}
	}

	result := ast.TypeVoid
	if isFunc {
		if !p.expectPeek(lexer.TOKEN_COLON) {
			return nil
		}
		p.nextToken()
		var ok bool
		if result, ok = p.parseType(); !ok {
			return nil
		}
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	p.nextToken()

	body := p.parseBlock()
	if body == nil || !p.expectPeek(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	if isFunc {
		return p.b.FuncDecl(name, params, result, body)
	}
	return p.b.ProcDecl(name, params, body)
}

// parseParams 解析 ( idlist : type {; idlist : type} )，结束时 curToken 为 )
func (p *Parser) parseParams() (*ast.ParamList, bool) {
	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		return nil, true
	}

	var params *ast.ParamList
	for {
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil, false
		}
		ids, ok := p.parseIdentList()
		if !ok || !p.expectPeek(lexer.TOKEN_COLON) {
			return nil, false
		}
		p.nextToken()
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = p.b.AppendParam(params, p.b.Param(ids, typ))

		if p.peekTokenIs(lexer.TOKEN_SEMICOLON) {
			p.nextToken()
			continue
		}
		if !p.expectPeek(lexer.TOKEN_RPAREN) {
			return nil, false
		}
		return params, true
	}
}

// parseIdentList 解析 id {, id}，进入时 curToken 为第一个标识符
func (p *Parser) parseIdentList() (*ast.IdentList, bool) {
	ids := p.b.AppendIdent(nil, p.curToken.Literal)
	for p.peekTokenIs(lexer.TOKEN_COMMA) {
		p.nextToken()
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil, false
		}
		ids = p.b.AppendIdent(ids, p.curToken.Literal)
	}
	return ids, true
}

// parseType 解析 integer | boolean
func (p *Parser) parseType() (ast.SemanticType, bool) {
	switch p.curToken.Type {
	case lexer.TOKEN_INTEGER:
		return ast.TypeInteger, true
	case lexer.TOKEN_BOOLEAN:
		return ast.TypeBoolean, true
	}
	p.errors = append(p.errors, i18n.T(i18n.ErrExpectedType,
		p.curToken.Line, p.curToken.Column, describe(p.curToken)))
	return ast.TypeVoid, false
}
