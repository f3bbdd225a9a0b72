package i18n

// Message keys for parser errors
const (
	ErrExpectedToken   = "parser.expected_token"   // args: line, column, expected, got
	ErrGeneric         = "parser.generic"          // args: line, column, message
	ErrUnexpectedToken = "parser.unexpected_token" // args: line, column, got
	ErrIllegalChar     = "parser.illegal_char"     // args: line, column, literal
	ErrIntegerRange    = "parser.integer_range"    // args: line, column, literal
	ErrExpectedType    = "parser.expected_type"    // args: line, column, got
	ErrTrailingInput   = "parser.trailing_input"   // args: line, column, got
)

// Message keys for semantic errors
const (
	ErrUndefined       = "symbol.undefined"        // args: name
	ErrRedeclared      = "symbol.redeclared"       // args: name
	ErrNotVariable     = "symbol.not_variable"     // args: name
	ErrNotProcedure    = "symbol.not_procedure"    // args: name
	ErrNotFunction     = "symbol.not_function"     // args: name
	ErrArgCount        = "symbol.arg_count"        // args: name, expected, got
	ErrArgType         = "symbol.arg_type"         // args: name, index, got, expected
	ErrOperandType     = "symbol.operand_type"     // args: operator, got, expected
	ErrOperandMismatch = "symbol.operand_mismatch" // args: operator, left, right
	ErrConditionType   = "symbol.condition_type"   // args: statement, got
	ErrAssignType      = "symbol.assign_type"      // args: got, name, expected
)

// Message keys for CLI
const (
	ErrCannotReadFile   = "cli.cannot_read_file"   // args: path, error
	ErrCannotLoadConfig = "cli.cannot_load_config" // args: error
	ErrCannotGetCwd     = "cli.cannot_get_cwd"     // args: error
	ErrParseError       = "cli.parse_error"        // args: path, count
	ErrCheckFailed      = "cli.check_failed"       // args: path, count
	ErrUnknownFormat    = "cli.unknown_format"     // args: format

	MsgCheckOK = "cli.check_ok" // args: path
)
