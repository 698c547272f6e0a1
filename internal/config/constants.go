package config

const SourceFileExt = ".vx"

// DefaultSourceFile is the fixed source path compiled when no configuration
// overrides it.
const DefaultSourceFile = "input" + SourceFileExt

// DefaultColumnsPerTab is the number of columns a tab advances in the lexer's
// column accounting when not configured otherwise.
const DefaultColumnsPerTab = 2

// Built-in entity names
const (
	DefaultPackageName = "default"
	IntClassName       = "int"
)
