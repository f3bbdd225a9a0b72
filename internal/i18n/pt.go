package i18n

// ptMessages contains Portuguese translations
var ptMessages = map[string]string{
	// Parser errors
	ErrExpectedToken:   "linha %d:%d: esperado %s, encontrado %s",
	ErrGeneric:         "linha %d:%d: %s",
	ErrUnexpectedToken: "linha %d:%d: %s inesperado",
	ErrIllegalChar:     "linha %d:%d: caractere inválido %q",
	ErrIntegerRange:    "linha %d:%d: literal inteiro %s fora do intervalo",
	ErrExpectedType:    "linha %d:%d: esperado tipo integer ou boolean, encontrado %s",
	ErrTrailingInput:   "linha %d:%d: %s inesperado após o fim do programa",

	// Semantic errors
	ErrUndefined:       "identificador '%s' não declarado",
	ErrRedeclared:      "'%s' já declarado neste escopo",
	ErrNotVariable:     "'%s' não é uma variável",
	ErrNotProcedure:    "'%s' não é um procedimento",
	ErrNotFunction:     "'%s' não é uma função",
	ErrArgCount:        "'%s' espera %d argumento(s), recebeu %d",
	ErrArgType:         "'%s' argumento %d tem tipo %s, esperado %s",
	ErrOperandType:     "operador %s: operando tem tipo %s, esperado %s",
	ErrOperandMismatch: "operador %s: tipos de operandos diferentes %s e %s",
	ErrConditionType:   "condição de %s tem tipo %s, esperado boolean",
	ErrAssignType:      "não é possível atribuir %s a '%s' do tipo %s",

	// CLI
	ErrCannotReadFile:   "não foi possível ler %s: %v",
	ErrCannotLoadConfig: "não foi possível carregar a configuração: %v",
	ErrCannotGetCwd:     "não foi possível obter o diretório atual: %v",
	ErrParseError:       "%s: %d erro(s) de sintaxe",
	ErrCheckFailed:      "%s: %d erro(s) semântico(s)",
	ErrUnknownFormat:    "formato desconhecido %q",
	MsgCheckOK:          "%s: ok",
}
