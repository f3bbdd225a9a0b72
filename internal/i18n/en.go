package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Parser errors
	ErrExpectedToken:   "line %d:%d: expected %s, got %s",
	ErrGeneric:         "line %d:%d: %s",
	ErrUnexpectedToken: "line %d:%d: unexpected %s",
	ErrIllegalChar:     "line %d:%d: illegal character %q",
	ErrIntegerRange:    "line %d:%d: integer literal %s out of range",
	ErrExpectedType:    "line %d:%d: expected type integer or boolean, got %s",
	ErrTrailingInput:   "line %d:%d: unexpected %s after end of program",

	// Semantic errors
	ErrUndefined:       "undefined identifier '%s'",
	ErrRedeclared:      "'%s' already declared in this scope",
	ErrNotVariable:     "'%s' is not a variable",
	ErrNotProcedure:    "'%s' is not a procedure",
	ErrNotFunction:     "'%s' is not a function",
	ErrArgCount:        "'%s' expects %d argument(s), got %d",
	ErrArgType:         "'%s' argument %d has type %s, expected %s",
	ErrOperandType:     "operator %s: operand has type %s, expected %s",
	ErrOperandMismatch: "operator %s: mismatched operand types %s and %s",
	ErrConditionType:   "%s condition has type %s, expected boolean",
	ErrAssignType:      "cannot assign %s to '%s' of type %s",

	// CLI
	ErrCannotReadFile:   "cannot read %s: %v",
	ErrCannotLoadConfig: "cannot load config: %v",
	ErrCannotGetCwd:     "cannot get current directory: %v",
	ErrParseError:       "%s: %d syntax error(s)",
	ErrCheckFailed:      "%s: %d semantic error(s)",
	ErrUnknownFormat:    "unknown format %q",
	MsgCheckOK:          "%s: ok",
}
