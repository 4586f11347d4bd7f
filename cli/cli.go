// Package cli implements the toolbox subcommands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"toolbox-api/domain"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&serveCmd{}, "server")

	c.Register(&aprCmd{}, "loans")
	c.Register(&fixedFeeCmd{}, "loans")
	c.Register(&loanAPRCmd{}, "loans")

	c.Register(&countCmd{}, "text")
	c.Register(&base64Cmd{}, "text")
	c.Register(&jsonCmd{}, "text")

	c.Register(&uuidCmd{}, "utilities")
	c.Register(&colorCmd{}, "utilities")
	c.Register(&calcCmd{}, "utilities")
	c.Register(&toolsCmd{}, "utilities")
}

var (
	plain    = flag.Bool("plain", false, "Print raw Markdown instead of rendering it for the terminal")
	currency = flag.String("currency", "USD", "ISO 4217 code used to display amounts")

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprintf(stderr, "Warning: failed to render markdown: %v\n", err)
	fmt.Fprint(stdout, md)
}

// readInput returns the positional arguments joined by spaces, or stdin when
// there are none or the only argument is "-".
func readInput(f *flag.FlagSet) (string, error) {
	if f.NArg() == 0 || (f.NArg() == 1 && f.Arg(0) == "-") {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	return strings.Join(f.Args(), " "), nil
}

// fail reports err and maps input errors to a usage exit status.
func fail(action string, err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error %s: %v\n", action, err)
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
