package ast

// Release 拆除整棵树：清空所有链接和名字，并返回释放的计数。
// 使用显式栈遍历，深层嵌套不会耗尽调用栈。nil 输入和已释放的树都是空操作。
// 释放后树中的指针不再有效，调用方应丢弃 p。
func Release(p *Program) Stats {
	var s Stats
	if p == nil {
		return s
	}

	stack := []Node{p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isNil(n) {
			continue
		}

		h := n.hdr()
		if h.released {
			continue
		}
		h.released = true
		s.Nodes++

		// 先压入自身字段，再压入链表后继：后继先出栈，
		// 即“先释放链表剩余部分，再释放本节点字段”。
		switch n := n.(type) {
		case *Program:
			s.Names++
			n.Name = ""
			if n.Block != nil {
				stack = append(stack, n.Block)
			}
			n.Block = nil

		case *Block:
			if n.Vars != nil {
				stack = append(stack, n.Vars)
			}
			if n.Subroutines != nil {
				stack = append(stack, n.Subroutines)
			}
			if n.Stmts != nil {
				stack = append(stack, n.Stmts)
			}
			n.Vars, n.Subroutines, n.Stmts = nil, nil, nil

		// 链表头
		case *ExprList:
			if n.head != nil {
				stack = append(stack, n.head)
			}
			n.head, n.tail, n.n = nil, nil, 0
		case *StmtList:
			if n.head != nil {
				stack = append(stack, n.head)
			}
			n.head, n.tail, n.n = nil, nil, 0
		case *DeclList:
			if n.head != nil {
				stack = append(stack, n.head)
			}
			n.head, n.tail, n.n = nil, nil, 0
		case *IdentList:
			if n.head != nil {
				stack = append(stack, n.head)
			}
			n.head, n.tail, n.n = nil, nil, 0
		case *ParamList:
			if n.head != nil {
				stack = append(stack, n.head)
			}
			n.head, n.tail, n.n = nil, nil, 0

		case *Ident:
			s.Names++
			n.Name = ""
			if n.next != nil {
				stack = append(stack, n.next)
			}
			n.next = nil
		case *ParamDecl:
			if n.Idents != nil {
				stack = append(stack, n.Idents)
			}
			if n.next != nil {
				stack = append(stack, n.next)
			}
			n.Idents, n.next = nil, nil

		case Expr:
			stack = releaseExpr(stack, n, &s)
		case Stmt:
			stack = releaseStmt(stack, n, &s)
		case Decl:
			stack = releaseDecl(stack, n, &s)
		}
	}
	return s
}

// Release 释放树并计入构造器的统计
func (b *Builder) Release(p *Program) Stats {
	s := Release(p)
	b.freed = b.freed.add(s)
	return s
}

func releaseExpr(stack []Node, e Expr, s *Stats) []Node {
	switch e := e.(type) {
	case *VarExpr:
		s.Names++
		e.Name = ""
	case *BinaryExpr:
		if e.Left != nil {
			stack = append(stack, e.Left)
		}
		if e.Right != nil {
			stack = append(stack, e.Right)
		}
		e.Left, e.Right = nil, nil
	case *UnaryExpr:
		if e.Operand != nil {
			stack = append(stack, e.Operand)
		}
		e.Operand = nil
	case *CallExpr:
		s.Names++
		e.Name = ""
		if e.Args != nil {
			stack = append(stack, e.Args)
		}
		e.Args = nil
	}

	base := e.exprBase()
	if base.next != nil {
		stack = append(stack, base.next)
	}
	base.next = nil
	return stack
}

func releaseStmt(stack []Node, st Stmt, s *Stats) []Node {
	switch st := st.(type) {
	case *AssignStmt:
		s.Names++
		st.Name = ""
		if st.Value != nil {
			stack = append(stack, st.Value)
		}
		st.Value = nil
	case *IfStmt:
		if st.Cond != nil {
			stack = append(stack, st.Cond)
		}
		if st.Then != nil {
			stack = append(stack, st.Then)
		}
		if st.Else != nil {
			stack = append(stack, st.Else)
		}
		st.Cond, st.Then, st.Else = nil, nil, nil
	case *WhileStmt:
		if st.Cond != nil {
			stack = append(stack, st.Cond)
		}
		if st.Body != nil {
			stack = append(stack, st.Body)
		}
		st.Cond, st.Body = nil, nil
	case *ReadStmt:
		if st.Idents != nil {
			stack = append(stack, st.Idents)
		}
		st.Idents = nil
	case *WriteStmt:
		if st.Exprs != nil {
			stack = append(stack, st.Exprs)
		}
		st.Exprs = nil
	case *CallStmt:
		s.Names++
		st.Name = ""
		if st.Args != nil {
			stack = append(stack, st.Args)
		}
		st.Args = nil
	case *CompoundStmt:
		if st.Block != nil {
			stack = append(stack, st.Block)
		}
		st.Block = nil
	}

	base := st.stmtBase()
	if base.next != nil {
		stack = append(stack, base.next)
	}
	base.next = nil
	return stack
}

func releaseDecl(stack []Node, d Decl, s *Stats) []Node {
	switch d := d.(type) {
	case *VarDecl:
		if d.Idents != nil {
			stack = append(stack, d.Idents)
		}
		d.Idents = nil
	case *ProcDecl:
		s.Names++
		d.Name = ""
		if d.Params != nil {
			stack = append(stack, d.Params)
		}
		if d.Body != nil {
			stack = append(stack, d.Body)
		}
		d.Params, d.Body = nil, nil
	case *FuncDecl:
		s.Names++
		d.Name = ""
		if d.Params != nil {
			stack = append(stack, d.Params)
		}
		if d.Body != nil {
			stack = append(stack, d.Body)
		}
		d.Params, d.Body = nil, nil
	}

	base := d.declBase()
	if base.next != nil {
		stack = append(stack, base.next)
	}
	base.next = nil
	return stack
}
