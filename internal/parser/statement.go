package parser

import (
	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/lexer"
)

// parseStatementSequence 解析 begin stmt {; stmt} end
// 进入时 curToken 为 begin，结束时为 end。空语句被忽略。
// 语句出错后跳到下一个 ; 或 end 继续，以便一次报告多个错误
func (p *Parser) parseStatementSequence() *ast.StmtList {
	var stmts *ast.StmtList
	p.nextToken()
	for {
		if !p.curTokenIs(lexer.TOKEN_SEMICOLON) && !p.curTokenIs(lexer.TOKEN_END) && !p.curTokenIs(lexer.TOKEN_EOF) {
			if s := p.parseStatement(); s != nil {
				stmts = p.b.AppendStmt(stmts, s)
				p.nextToken()
			} else {
				p.synchronize()
			}
		}

		switch p.curToken.Type {
		case lexer.TOKEN_SEMICOLON:
			p.nextToken()
		case lexer.TOKEN_END:
			return stmts
		case lexer.TOKEN_EOF:
			p.curError(lexer.TOKEN_END)
			return stmts
		default:
			p.curError(lexer.TOKEN_SEMICOLON)
			p.synchronize()
		}
	}
}

// synchronize 跳过 token 直到 ; end 或文件结尾
func (p *Parser) synchronize() {
	for !p.curTokenIs(lexer.TOKEN_SEMICOLON) && !p.curTokenIs(lexer.TOKEN_END) && !p.curTokenIs(lexer.TOKEN_EOF) {
		p.nextToken()
	}
}

// parseStatement 解析单条语句，结束时 curToken 为语句的最后一个 token
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Type {
	case lexer.TOKEN_IDENT:
		return p.parseIdentStatement()
	case lexer.TOKEN_BEGIN:
		stmts := p.parseStatementSequence()
		return p.b.Compound(p.b.Block(nil, nil, stmts))
	case lexer.TOKEN_IF:
		return p.parseIfStatement()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStatement()
	case lexer.TOKEN_READ:
		return p.parseReadStatement()
	case lexer.TOKEN_WRITE:
		return p.parseWriteStatement()
	default:
		p.unexpected()
		return nil
	}
}

// parseIdentStatement 解析赋值 x := e 或过程调用 p / p(args)
func (p *Parser) parseIdentStatement() ast.Stmt {
	name := p.curToken.Literal

	switch {
	case p.peekTokenIs(lexer.TOKEN_ASSIGN):
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		return p.b.Assign(name, value)
	case p.peekTokenIs(lexer.TOKEN_LPAREN):
		p.nextToken()
		args, ok := p.parseCallArguments()
		if !ok {
			return nil
		}
		return p.b.CallProc(name, args)
	default:
		return p.b.CallProc(name, nil)
	}
}

// parseIfStatement 解析 if cond then stmt [else stmt]
func (p *Parser) parseIfStatement() ast.Stmt {
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil || !p.expectPeek(lexer.TOKEN_THEN) {
		return nil
	}
	p.nextToken()
	then := p.parseStatement()
	if then == nil {
		return nil
	}

	var els ast.Stmt
	if p.peekTokenIs(lexer.TOKEN_ELSE) {
		p.nextToken()
		p.nextToken()
		if els = p.parseStatement(); els == nil {
			return nil
		}
	}
	return p.b.If(cond, then, els)
}

// parseWhileStatement 解析 while cond do stmt
func (p *Parser) parseWhileStatement() ast.Stmt {
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil || !p.expectPeek(lexer.TOKEN_DO) {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return p.b.While(cond, body)
}

// parseReadStatement 解析 read(idlist)
func (p *Parser) parseReadStatement() ast.Stmt {
	if !p.expectPeek(lexer.TOKEN_LPAREN) || !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	ids, ok := p.parseIdentList()
	if !ok || !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}
	return p.b.Read(ids)
}

// parseWriteStatement 解析 write(exprlist)
func (p *Parser) parseWriteStatement() ast.Stmt {
	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}
	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		p.unexpected()
		return nil
	}
	exprs, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	return p.b.Write(exprs)
}
