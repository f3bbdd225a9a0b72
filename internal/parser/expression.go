package parser

import (
	"strconv"

	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/i18n"
	"github.com/tangzhangming/rascal/internal/lexer"
)

// 运算符优先级
const (
	_ int = iota
	LOWEST
	RELATIONAL     // = <> < <= > >=
	ADDITIVE       // + - or
	MULTIPLICATIVE // * div and
	PREFIX         // -x, not x
)

var precedences = map[lexer.TokenType]int{
	lexer.TOKEN_EQ:       RELATIONAL,
	lexer.TOKEN_NOT_EQ:   RELATIONAL,
	lexer.TOKEN_LT:       RELATIONAL,
	lexer.TOKEN_GT:       RELATIONAL,
	lexer.TOKEN_LT_EQ:    RELATIONAL,
	lexer.TOKEN_GT_EQ:    RELATIONAL,
	lexer.TOKEN_PLUS:     ADDITIVE,
	lexer.TOKEN_MINUS:    ADDITIVE,
	lexer.TOKEN_OR:       ADDITIVE,
	lexer.TOKEN_ASTERISK: MULTIPLICATIVE,
	lexer.TOKEN_DIV:      MULTIPLICATIVE,
	lexer.TOKEN_AND:      MULTIPLICATIVE,
}

var operators = map[lexer.TokenType]ast.Operator{
	lexer.TOKEN_PLUS:     ast.OpAdd,
	lexer.TOKEN_MINUS:    ast.OpSub,
	lexer.TOKEN_ASTERISK: ast.OpMul,
	lexer.TOKEN_DIV:      ast.OpDiv,
	lexer.TOKEN_OR:       ast.OpOr,
	lexer.TOKEN_AND:      ast.OpAnd,
	lexer.TOKEN_NOT:      ast.OpNot,
	lexer.TOKEN_EQ:       ast.OpEq,
	lexer.TOKEN_NOT_EQ:   ast.OpNe,
	lexer.TOKEN_LT:       ast.OpLt,
	lexer.TOKEN_LT_EQ:    ast.OpLe,
	lexer.TOKEN_GT:       ast.OpGt,
	lexer.TOKEN_GT_EQ:    ast.OpGe,
}

// peekPrecedence 获取下一个 token 的优先级
func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}
	return LOWEST
}

// curPrecedence 获取当前 token 的优先级
func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}
	return LOWEST
}

// parseExpression 解析表达式，失败时返回 nil
func (p *Parser) parseExpression(precedence int) ast.Expr {
	var left ast.Expr

	switch p.curToken.Type {
	case lexer.TOKEN_IDENT:
		if !p.peekTokenIs(lexer.TOKEN_LPAREN) {
			left = p.b.Var(p.curToken.Literal)
			break
		}
		name := p.curToken.Literal
		p.nextToken()
		args, ok := p.parseCallArguments()
		if !ok {
			return nil
		}
		left = p.b.CallFunc(name, args)
	case lexer.TOKEN_INT:
		v, err := strconv.Atoi(p.curToken.Literal)
		if err != nil {
			p.errors = append(p.errors, i18n.T(i18n.ErrIntegerRange,
				p.curToken.Line, p.curToken.Column, p.curToken.Literal))
			return nil
		}
		left = p.b.Number(v)
	case lexer.TOKEN_TRUE:
		left = p.b.Bool(true)
	case lexer.TOKEN_FALSE:
		left = p.b.Bool(false)
	case lexer.TOKEN_LPAREN:
		if left = p.parseGroupedExpression(); left == nil {
			return nil
		}
	case lexer.TOKEN_MINUS, lexer.TOKEN_NOT:
		if left = p.parsePrefixExpression(); left == nil {
			return nil
		}
	default:
		p.unexpected()
		return nil
	}

	// 解析中缀表达式
	for precedence < p.peekPrecedence() {
		p.nextToken()
		if left = p.parseInfixExpression(left); left == nil {
			return nil
		}
	}
	return left
}

// parseGroupedExpression 解析括号表达式
func (p *Parser) parseGroupedExpression() ast.Expr {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil || !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return expr
}

// parsePrefixExpression 解析前缀表达式
func (p *Parser) parsePrefixExpression() ast.Expr {
	op := operators[p.curToken.Type]
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return p.b.Unary(op, operand)
}

// parseInfixExpression 解析中缀表达式
func (p *Parser) parseInfixExpression(left ast.Expr) ast.Expr {
	op := operators[p.curToken.Type]
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return p.b.Binary(op, left, right)
}

// parseCallArguments 解析 ( [expr {, expr}] )，进入时 curToken 为 (，结束时为 )
func (p *Parser) parseCallArguments() (*ast.ExprList, bool) {
	var args *ast.ExprList

	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil, false
	}
	args = p.b.AppendExpr(args, arg)

	for p.peekTokenIs(lexer.TOKEN_COMMA) {
		p.nextToken()
		p.nextToken()
		if arg = p.parseExpression(LOWEST); arg == nil {
			return nil, false
		}
		args = p.b.AppendExpr(args, arg)
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil, false
	}
	return args, true
}
