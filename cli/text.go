package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"toolbox-api/renderer"
	"toolbox-api/service"
)

type countCmd struct{}

func (*countCmd) Name() string     { return "count" }
func (*countCmd) Synopsis() string { return "count characters, words, lines, paragraphs and sentences" }
func (*countCmd) Usage() string {
	return `toolbox count [text...]

  Counts the text given as arguments, or read from stdin.
`
}

func (*countCmd) SetFlags(*flag.FlagSet) {}

func (*countCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text, err := readInput(f)
	if err != nil {
		return fail("reading input", err)
	}
	stats, err := service.CountText(text)
	if err != nil {
		return fail("counting text", err)
	}
	printMarkdown(renderer.TextStats(stats))
	return subcommands.ExitSuccess
}

type base64Cmd struct {
	decode bool
}

func (*base64Cmd) Name() string     { return "base64" }
func (*base64Cmd) Synopsis() string { return "encode or decode Base64" }
func (*base64Cmd) Usage() string {
	return `toolbox base64 [-d] [text...]
`
}

func (c *base64Cmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.decode, "d", false, "Decode instead of encode")
}

func (c *base64Cmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text, err := readInput(f)
	if err != nil {
		return fail("reading input", err)
	}
	if !c.decode {
		fmt.Fprintln(stdout, service.Base64Encode(text))
		return subcommands.ExitSuccess
	}
	out, err := service.Base64Decode(text)
	if err != nil {
		return fail("decoding", err)
	}
	fmt.Fprint(stdout, out)
	return subcommands.ExitSuccess
}

type jsonCmd struct {
	mode   string
	indent int
	path   string
}

func (*jsonCmd) Name() string     { return "json" }
func (*jsonCmd) Synopsis() string { return "format, minify, validate, inspect or query JSON" }
func (*jsonCmd) Usage() string {
	return `toolbox json [-m format|minify|validate|stats|query] [-indent <n>] [-path <jsonpath>] [json...]

  Reads the document from the arguments or stdin.
`
}

func (c *jsonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "m", "format", "Operation (format, minify, validate, stats, query)")
	f.IntVar(&c.indent, "indent", service.DefaultJSONIndent, "Spaces per indentation level when formatting")
	f.StringVar(&c.path, "path", "", "JSONPath expression for -m query, e.g. $.address.city")
}

func (c *jsonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := readInput(f)
	if err != nil {
		return fail("reading input", err)
	}

	var out string
	switch c.mode {
	case "format":
		out, err = service.FormatJSON(doc, c.indent)
	case "minify":
		out, err = service.MinifyJSON(doc)
	case "validate":
		if err := service.ValidateJSON(doc); err != nil {
			return fail("validating", err)
		}
		out = "Valid JSON"
	case "stats":
		stats, err := service.JSONStatistics(doc)
		if err != nil {
			return fail("analyzing", err)
		}
		printMarkdown(renderer.JSONStats(stats))
		return subcommands.ExitSuccess
	case "query":
		out, err = service.QueryJSON(doc, c.path)
	default:
		fmt.Fprintf(stderr, "Error: unknown mode %q\n", c.mode)
		return subcommands.ExitUsageError
	}
	if err != nil {
		return fail("processing JSON", err)
	}
	fmt.Fprintln(stdout, out)
	return subcommands.ExitSuccess
}
