package parser

import "tacgen/pkg/lexer"

type Production struct {
	LHS string
	RHS []string
}

type ParsingTable map[string]map[lexer.TokenType]Production

var grammar = []Production{
	{}, // 0 - empty
	{LHS: "Program", RHS: []string{"StmtList"}}, // 1

	{LHS: "StmtList", RHS: []string{"Stmt", "StmtList"}}, // 2
	{LHS: "StmtList", RHS: []string{"ε"}},                // 3

	{LHS: "Stmt", RHS: []string{"Decl"}},       // 4
	{LHS: "Stmt", RHS: []string{"Assign"}},     // 5
	{LHS: "Stmt", RHS: []string{"IfStmt"}},     // 6
	{LHS: "Stmt", RHS: []string{"WhileStmt"}},  // 7
	{LHS: "Stmt", RHS: []string{"RepeatStmt"}}, // 8
	{LHS: "Stmt", RHS: []string{"UnrollStmt"}}, // 9
	{LHS: "Stmt", RHS: []string{"SwitchStmt"}}, // 10
	{LHS: "Stmt", RHS: []string{"BreakStmt"}},  // 11
	{LHS: "Stmt", RHS: []string{"PrintStmt"}},  // 12

	{LHS: "Decl", RHS: []string{"Type", "id", "@capture_name", "DeclSuffix"}}, // 13

	{LHS: "Type", RHS: []string{"int", "@capture_type"}},   // 14
	{LHS: "Type", RHS: []string{"float", "@capture_type"}}, // 15

	{LHS: "DeclSuffix", RHS: []string{";", "@declare"}},                                         // 16
	{LHS: "DeclSuffix", RHS: []string{"[", "num", "@capture_size", "]", ";", "@declare_array"}}, // 17

	{LHS: "Assign", RHS: []string{"id", "@capture_name", "AssignSuffix", ";"}}, // 18

	{LHS: "AssignSuffix", RHS: []string{":=", "Expr", "@assign"}},                         // 19
	{LHS: "AssignSuffix", RHS: []string{"[", "Expr", "]", ":=", "Expr", "@assign_array"}}, // 20

	{LHS: "IfStmt", RHS: []string{"if", "Cond", "then", "@mark", "StmtList", "ElsePart", "fi"}}, // 21

	{LHS: "ElsePart", RHS: []string{"else", "@jump", "@mark", "StmtList", "@if_else"}}, // 22
	{LHS: "ElsePart", RHS: []string{"@if_then", "ε"}},                                  // 23

	{LHS: "WhileStmt", RHS: []string{"while", "@mark", "Cond", "do", "@open_loop", "@mark", "StmtList", "done", "@while"}}, // 24

	{LHS: "RepeatStmt", RHS: []string{"repeat", "Expr", "do", "@repeat_start", "StmtList", "done", "@repeat_end"}}, // 25

	{LHS: "UnrollStmt", RHS: []string{"unroll", "num", "@capture_count", "do", "@record", "StmtList", "done", "@unroll"}}, // 26

	{LHS: "SwitchStmt", RHS: []string{"switch", "id", "@switch_start", "CaseList", "DefaultPart", "end", "@switch_end"}}, // 27

	{LHS: "CaseList", RHS: []string{"case", "num", "@case_label", ":", "@case_test", "StmtList", "@case_end", "CaseList"}}, // 28
	{LHS: "CaseList", RHS: []string{"ε"}},                                                                                  // 29

	{LHS: "DefaultPart", RHS: []string{"default", ":", "StmtList"}}, // 30
	{LHS: "DefaultPart", RHS: []string{"ε"}},                        // 31

	{LHS: "BreakStmt", RHS: []string{"break", ";", "@break"}}, // 32

	{LHS: "PrintStmt", RHS: []string{"print", "Expr", ";", "@print"}}, // 33

	{LHS: "Expr", RHS: []string{"Term", "Expr'"}}, // 34

	{LHS: "Expr'", RHS: []string{"+", "Term", "@add", "Expr'"}}, // 35
	{LHS: "Expr'", RHS: []string{"-", "Term", "@sub", "Expr'"}}, // 36
	{LHS: "Expr'", RHS: []string{"ε"}},                          // 37

	{LHS: "Term", RHS: []string{"Factor", "Term'"}}, // 38

	{LHS: "Term'", RHS: []string{"*", "Factor", "@mul", "Term'"}}, // 39
	{LHS: "Term'", RHS: []string{"/", "Factor", "@div", "Term'"}}, // 40
	{LHS: "Term'", RHS: []string{"%", "Factor", "@mod", "Term'"}}, // 41
	{LHS: "Term'", RHS: []string{"ε"}},                            // 42

	// Left-factored Factor and FactorSuffix productions
	{LHS: "Factor", RHS: []string{"num", "@literal"}},                     // 43
	{LHS: "Factor", RHS: []string{"id", "@capture_name", "FactorSuffix"}}, // 44
	{LHS: "Factor", RHS: []string{"(", "Expr", ")"}},                      // 45

	{LHS: "FactorSuffix", RHS: []string{"[", "Expr", "]", "@array_read"}}, // 46
	{LHS: "FactorSuffix", RHS: []string{"@load"}},                         // 47

	{LHS: "Cond", RHS: []string{"AndCond", "Cond'"}}, // 48

	{LHS: "Cond'", RHS: []string{"or", "@mark", "AndCond", "@or", "Cond'"}}, // 49
	{LHS: "Cond'", RHS: []string{"ε"}},                                      // 50

	{LHS: "AndCond", RHS: []string{"NotCond", "AndCond'"}}, // 51

	{LHS: "AndCond'", RHS: []string{"and", "@mark", "NotCond", "@and", "AndCond'"}}, // 52
	{LHS: "AndCond'", RHS: []string{"ε"}},                                           // 53

	{LHS: "NotCond", RHS: []string{"not", "NotCond", "@not"}},        // 54
	{LHS: "NotCond", RHS: []string{"true", "@true"}},                 // 55
	{LHS: "NotCond", RHS: []string{"false", "@false"}},               // 56
	{LHS: "NotCond", RHS: []string{"Expr", "RelOp", "Expr", "@rel"}}, // 57

	{LHS: "RelOp", RHS: []string{"<", "@push_relop"}},  // 58
	{LHS: "RelOp", RHS: []string{">", "@push_relop"}},  // 59
	{LHS: "RelOp", RHS: []string{"<=", "@push_relop"}}, // 60
	{LHS: "RelOp", RHS: []string{">=", "@push_relop"}}, // 61
	{LHS: "RelOp", RHS: []string{"=", "@push_relop"}},  // 62
	{LHS: "RelOp", RHS: []string{"<>", "@push_relop"}}, // 63
}

var (
	stmtFirst = []lexer.TokenType{
		lexer.INT, lexer.FLOAT, lexer.ID, lexer.IF, lexer.WHILE, lexer.REPEAT,
		lexer.UNROLL, lexer.SWITCH, lexer.BREAK, lexer.PRINT,
	}

	// Tokens that may close a statement list
	stmtListFollow = []lexer.TokenType{
		lexer.EOF, lexer.ELSE, lexer.FI, lexer.DONE, lexer.CASE, lexer.DEFAULT, lexer.END,
	}

	exprFirst = []lexer.TokenType{lexer.NUM, lexer.ID, lexer.LPAREN}

	relOps = []lexer.TokenType{lexer.LT, lexer.GT, lexer.LE, lexer.GE, lexer.EQ, lexer.NE}

	// Tokens that may follow a complete condition
	condFollow = []lexer.TokenType{lexer.THEN, lexer.DO}

	// Tokens that may follow a complete expression
	exprFollow = concat(
		[]lexer.TokenType{lexer.SEMICOLON, lexer.RPAREN, lexer.RSBRACE, lexer.AND, lexer.OR},
		condFollow,
		relOps,
	)

	termFollow   = concat([]lexer.TokenType{lexer.PLUS, lexer.MINUS}, exprFollow)
	factorFollow = concat([]lexer.TokenType{lexer.MULT, lexer.DIV, lexer.MOD}, termFollow)
)

func concat(lists ...[]lexer.TokenType) []lexer.TokenType {
	var out []lexer.TokenType
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// set maps every token in tokens to the production for lhs
func (t ParsingTable) set(lhs string, prod Production, tokens ...lexer.TokenType) {
	row, ok := t[lhs]
	if !ok {
		row = make(map[lexer.TokenType]Production)
		t[lhs] = row
	}

	for _, tt := range tokens {
		row[tt] = prod
	}
}

// NewParsingTable creates and returns a new LL(1) parsing table
func NewParsingTable() ParsingTable {
	t := ParsingTable{}

	t.set("Program", grammar[1], stmtFirst...)
	t.set("Program", grammar[1], lexer.EOF)

	t.set("StmtList", grammar[2], stmtFirst...)
	t.set("StmtList", grammar[3], stmtListFollow...)

	t.set("Stmt", grammar[4], lexer.INT, lexer.FLOAT)
	t.set("Stmt", grammar[5], lexer.ID)
	t.set("Stmt", grammar[6], lexer.IF)
	t.set("Stmt", grammar[7], lexer.WHILE)
	t.set("Stmt", grammar[8], lexer.REPEAT)
	t.set("Stmt", grammar[9], lexer.UNROLL)
	t.set("Stmt", grammar[10], lexer.SWITCH)
	t.set("Stmt", grammar[11], lexer.BREAK)
	t.set("Stmt", grammar[12], lexer.PRINT)

	t.set("Decl", grammar[13], lexer.INT, lexer.FLOAT)

	t.set("Type", grammar[14], lexer.INT)
	t.set("Type", grammar[15], lexer.FLOAT)

	t.set("DeclSuffix", grammar[16], lexer.SEMICOLON)
	t.set("DeclSuffix", grammar[17], lexer.LSBRACE)

	t.set("Assign", grammar[18], lexer.ID)

	t.set("AssignSuffix", grammar[19], lexer.ASSIGN)
	t.set("AssignSuffix", grammar[20], lexer.LSBRACE)

	t.set("IfStmt", grammar[21], lexer.IF)

	t.set("ElsePart", grammar[22], lexer.ELSE)
	t.set("ElsePart", grammar[23], lexer.FI)

	t.set("WhileStmt", grammar[24], lexer.WHILE)
	t.set("RepeatStmt", grammar[25], lexer.REPEAT)
	t.set("UnrollStmt", grammar[26], lexer.UNROLL)
	t.set("SwitchStmt", grammar[27], lexer.SWITCH)

	t.set("CaseList", grammar[28], lexer.CASE)
	t.set("CaseList", grammar[29], lexer.DEFAULT, lexer.END)

	t.set("DefaultPart", grammar[30], lexer.DEFAULT)
	t.set("DefaultPart", grammar[31], lexer.END)

	t.set("BreakStmt", grammar[32], lexer.BREAK)
	t.set("PrintStmt", grammar[33], lexer.PRINT)

	t.set("Expr", grammar[34], exprFirst...)

	t.set("Expr'", grammar[35], lexer.PLUS)
	t.set("Expr'", grammar[36], lexer.MINUS)
	t.set("Expr'", grammar[37], exprFollow...)

	t.set("Term", grammar[38], exprFirst...)

	t.set("Term'", grammar[39], lexer.MULT)
	t.set("Term'", grammar[40], lexer.DIV)
	t.set("Term'", grammar[41], lexer.MOD)
	t.set("Term'", grammar[42], termFollow...)

	t.set("Factor", grammar[43], lexer.NUM)
	t.set("Factor", grammar[44], lexer.ID)
	t.set("Factor", grammar[45], lexer.LPAREN)

	t.set("FactorSuffix", grammar[46], lexer.LSBRACE)
	t.set("FactorSuffix", grammar[47], factorFollow...)

	condFirst := concat([]lexer.TokenType{lexer.NOT, lexer.TRUE, lexer.FALSE}, exprFirst)

	t.set("Cond", grammar[48], condFirst...)

	t.set("Cond'", grammar[49], lexer.OR)
	t.set("Cond'", grammar[50], condFollow...)

	t.set("AndCond", grammar[51], condFirst...)

	t.set("AndCond'", grammar[52], lexer.AND)
	t.set("AndCond'", grammar[53], concat([]lexer.TokenType{lexer.OR}, condFollow)...)

	t.set("NotCond", grammar[54], lexer.NOT)
	t.set("NotCond", grammar[55], lexer.TRUE)
	t.set("NotCond", grammar[56], lexer.FALSE)
	t.set("NotCond", grammar[57], exprFirst...)

	t.set("RelOp", grammar[58], lexer.LT)
	t.set("RelOp", grammar[59], lexer.GT)
	t.set("RelOp", grammar[60], lexer.LE)
	t.set("RelOp", grammar[61], lexer.GE)
	t.set("RelOp", grammar[62], lexer.EQ)
	t.set("RelOp", grammar[63], lexer.NE)

	return t
}
