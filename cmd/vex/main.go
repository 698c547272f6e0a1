// Compiles source code into C code, which can then be fed into a C compiler
// to generate a working program binary. The compiler is architected to run
// through several phases in order to produce the final result.
//
// Phases:
//   - Lexer: source code to tokens
//   - Parser: tokens to graph
//   - Translator: graph to C code
//
// Each phase's intermediate artifact is echoed to standard output. On the
// first diagnostic the compiler prints it and exits non-zero.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/vexlang/vex/internal/config"
	"github.com/vexlang/vex/internal/lexer"
	"github.com/vexlang/vex/internal/parser"
	"github.com/vexlang/vex/internal/pipeline"
	"github.com/vexlang/vex/internal/printer"
	"github.com/vexlang/vex/internal/translator"
)

// ConfigFile is the optional compiler configuration, read from vex.yaml in
// the working directory. Environment variables override the file.
const ConfigFile = "vex.yaml"

type Config struct {
	Source        string `yaml:"source"`
	ColumnsPerTab int    `yaml:"columns_per_tab"`
	Color         bool   `yaml:"color"`
}

// loadConfig builds the effective configuration: defaults, then vex.yaml if
// present, then environment overrides (VEX_SOURCE, VEX_COLUMNS_PER_TAB,
// NO_COLOR).
func loadConfig() (Config, error) {
	cfg := Config{
		Source:        config.DefaultSourceFile,
		ColumnsPerTab: config.DefaultColumnsPerTab,
		Color:         true,
	}

	if data, err := os.ReadFile(ConfigFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", ConfigFile, err)
		}
	}

	cfg.Source = env.Str("VEX_SOURCE", cfg.Source)
	cfg.ColumnsPerTab = env.Int("VEX_COLUMNS_PER_TAB", cfg.ColumnsPerTab)
	if env.Has("NO_COLOR") {
		cfg.Color = false
	}
	return cfg, nil
}

// printTokens prints the tokens to standard output, one per line.
func printTokens(ctx *pipeline.PipelineContext) {
	for _, tok := range ctx.Tokens {
		fmt.Println(tok)
	}
}

// fatal prints the first diagnostic and exits non-zero. The message is
// colorized when stderr is a terminal and color is enabled.
func fatal(message string, color bool) {
	useColor := color && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	if useColor {
		fmt.Fprintf(os.Stderr, "\x1b[31merror:\x1b[0m %s\n", message)
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", message)
	}
	os.Exit(1)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fatal(err.Error(), cfg.Color)
	}

	// Read source file
	data, err := os.ReadFile(cfg.Source)
	if err != nil {
		fatal(err.Error(), cfg.Color)
	}
	fmt.Println("---------Vex Code---------")
	fmt.Println(string(data))

	ctx := &pipeline.PipelineContext{
		FilePath:   cfg.Source,
		SourceCode: string(data),
	}

	// Run lexer on source code to get a list of tokens
	lexerProcessor := &lexer.LexerProcessor{ColumnsPerTab: cfg.ColumnsPerTab}
	ctx = lexerProcessor.Process(ctx)
	fmt.Println("----------Tokens----------")
	printTokens(ctx)

	// Run parser on list of tokens to build graph
	parserProcessor := &parser.ParserProcessor{}
	ctx = parserProcessor.Process(ctx)
	if len(ctx.Errors) > 0 {
		fatal(ctx.Errors[0].Error(), cfg.Color)
	}
	fmt.Println("----------Graph ----------")
	fmt.Print(printer.Print(ctx.Graph))

	// Translate graph into C code
	translatorProcessor := &translator.TranslatorProcessor{}
	ctx = translatorProcessor.Process(ctx)
	fmt.Println("----------C Code----------")
	fmt.Print(ctx.CCode)
}
