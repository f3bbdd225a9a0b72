package i18n

// zhMessages 中文翻译
var zhMessages = map[string]string{
	// 语法错误
	ErrExpectedToken:   "第 %d 行第 %d 列: 期望 %s, 实际为 %s",
	ErrGeneric:         "第 %d 行第 %d 列: %s",
	ErrUnexpectedToken: "第 %d 行第 %d 列: 意外的 %s",
	ErrIllegalChar:     "第 %d 行第 %d 列: 非法字符 %q",
	ErrIntegerRange:    "第 %d 行第 %d 列: 整数字面量 %s 超出范围",
	ErrExpectedType:    "第 %d 行第 %d 列: 期望类型 integer 或 boolean, 实际为 %s",
	ErrTrailingInput:   "第 %d 行第 %d 列: 程序结束后出现意外的 %s",

	// 语义错误
	ErrUndefined:       "未定义的标识符 '%s'",
	ErrRedeclared:      "'%s' 在当前作用域中已声明",
	ErrNotVariable:     "'%s' 不是变量",
	ErrNotProcedure:    "'%s' 不是过程",
	ErrNotFunction:     "'%s' 不是函数",
	ErrArgCount:        "'%s' 需要 %d 个参数, 实际为 %d 个",
	ErrArgType:         "'%s' 的第 %d 个参数类型为 %s, 期望 %s",
	ErrOperandType:     "运算符 %s: 操作数类型为 %s, 期望 %s",
	ErrOperandMismatch: "运算符 %s: 操作数类型不一致 %s 与 %s",
	ErrConditionType:   "%s 条件类型为 %s, 期望 boolean",
	ErrAssignType:      "不能将 %s 赋值给类型为 %[3]s 的 '%[2]s'",

	// 命令行
	ErrCannotReadFile:   "无法读取 %s: %v",
	ErrCannotLoadConfig: "无法加载配置: %v",
	ErrCannotGetCwd:     "无法获取当前目录: %v",
	ErrParseError:       "%s: %d 个语法错误",
	ErrCheckFailed:      "%s: %d 个语义错误",
	ErrUnknownFormat:    "未知格式 %q",
	MsgCheckOK:          "%s: 没有错误",
}
