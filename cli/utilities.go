package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"toolbox-api/domain"
	"toolbox-api/renderer"
	"toolbox-api/service"
)

type uuidCmd struct {
	count   int
	version string
}

func (*uuidCmd) Name() string     { return "uuid" }
func (*uuidCmd) Synopsis() string { return "generate UUIDs" }
func (*uuidCmd) Usage() string {
	return `toolbox uuid [-n <count>] [-v v4|v1]
`
}

func (c *uuidCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 1, "Number of UUIDs to generate")
	f.StringVar(&c.version, "v", "v4", "UUID version (v4 random, v1 time based)")
}

func (c *uuidCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	ids, err := service.GenerateUUIDs(domain.UUIDInput{Version: c.version, Count: c.count})
	if err != nil {
		return fail("generating UUIDs", err)
	}
	for _, id := range ids {
		fmt.Fprintln(stdout, id)
	}
	return subcommands.ExitSuccess
}

type colorCmd struct{}

func (*colorCmd) Name() string     { return "color" }
func (*colorCmd) Synopsis() string { return "convert a hex color to RGB and HSL" }
func (*colorCmd) Usage() string {
	return `toolbox color <#rrggbb>
`
}

func (*colorCmd) SetFlags(*flag.FlagSet) {}

func (*colorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: expected exactly one color")
		return subcommands.ExitUsageError
	}
	c, err := service.ConvertColor(f.Arg(0))
	if err != nil {
		return fail("converting color", err)
	}
	printMarkdown(renderer.Color(c))
	return subcommands.ExitSuccess
}

type calcCmd struct{}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "evaluate arithmetic left to right" }
func (*calcCmd) Usage() string {
	return `toolbox calc <expression>

  Operators apply in the order typed: "2 + 3 * 4" is 20.
`
}

func (*calcCmd) SetFlags(*flag.FlagSet) {}

func (*calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	expr, err := readInput(f)
	if err != nil {
		return fail("reading input", err)
	}
	result, err := service.Calculate(expr)
	if err != nil {
		return fail("calculating", err)
	}
	fmt.Fprintln(stdout, strconv.FormatFloat(result.Value, 'g', -1, 64))
	return subcommands.ExitSuccess
}

type toolsCmd struct {
	query    string
	category string
}

func (*toolsCmd) Name() string     { return "tools" }
func (*toolsCmd) Synopsis() string { return "list and search the tool catalog" }
func (*toolsCmd) Usage() string {
	return `toolbox tools [-q <text>] [-category <id>]
`
}

func (c *toolsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Case-insensitive text to find in names and descriptions")
	f.StringVar(&c.category, "category", "all", "Category filter")
}

func (c *toolsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	found, err := service.SearchTools(c.query, c.category)
	if err != nil {
		return fail("searching tools", err)
	}
	printMarkdown(renderer.Tools(found))
	return subcommands.ExitSuccess
}
