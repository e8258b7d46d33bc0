package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/loxlang/golox/internal/diag"
	"github.com/loxlang/golox/internal/lexer"
)

func main() {
	trivia := flag.Bool("trivia", true, "include whitespace, newline and comment tokens")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: loxlex [options] [file]\n")
		fmt.Fprintf(os.Stderr, "\nLexes a Lox source file (or stdin) and prints one token per line.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	source, err := readSource(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loxlex: %v\n", err)
		os.Exit(1)
	}

	stream := lexer.New(source).Tokens()
	for {
		tok, ok := stream.Next()
		if !ok {
			break
		}
		if !*trivia && isTrivia(tok.Type) {
			continue
		}
		printToken(tok)
	}

	if len(stream.Errors) > 0 {
		f := diag.NewFormatter(source)
		for _, e := range stream.Errors {
			fmt.Fprint(os.Stderr, f.Format(e.ToDiagnostic()))
		}
		os.Exit(1)
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isTrivia(t lexer.TokenType) bool {
	return t == lexer.WHITESPACE || t == lexer.NEWLINE || t == lexer.COMMENT
}

func printToken(tok lexer.Token) {
	switch tok.Type {
	case lexer.NUMBER:
		fmt.Printf("%s @%s %v\n", tok.Type, tok.Span, tok.Value)
	case lexer.IDENT, lexer.STRING, lexer.COMMENT, lexer.ILLEGAL:
		fmt.Printf("%s @%s %q\n", tok.Type, tok.Span, tok.Text)
	default:
		fmt.Printf("%s @%s\n", tok.Type, tok.Span)
	}
}
