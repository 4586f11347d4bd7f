package cli

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses args into cmd's flags and executes it, capturing both streams.
func run(t *testing.T, cmd subcommands.Command, input string, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	oldIn, oldOut, oldErr, oldPlain := stdin, stdout, stderr, *plain
	stdin, stdout, stderr, *plain = strings.NewReader(input), &out, &errOut, true
	t.Cleanup(func() {
		stdin, stdout, stderr, *plain = oldIn, oldOut, oldErr, oldPlain
	})

	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))

	status := cmd.Execute(context.Background(), f)
	return status, out.String(), errOut.String()
}

func TestAPRCmd(t *testing.T) {
	status, out, _ := run(t, &aprCmd{}, "", "-principal", "100000", "-payment", "5208.333333", "-periods", "24")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "22.415")
	assert.Contains(t, out, "bisection")

	status, _, errOut := run(t, &aprCmd{}, "", "-principal", "0", "-payment", "10", "-periods", "3")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "principal")
}

func TestFixedFeeCmd(t *testing.T) {
	status, out, _ := run(t, &fixedFeeCmd{}, "", "-amount", "100000", "-rate", "12.5", "-term", "24", "-schedule")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "$5,208.33")
	assert.Contains(t, out, "Payment Schedule")

	status, _, errOut := run(t, &fixedFeeCmd{}, "", "-amount", "100000", "-rate", "12.5", "-term", "24", "-type", "weekly")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "rateType")

	status, _, errOut = run(t, &fixedFeeCmd{}, "", "-history")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "-redis")
}

func TestFixedFeeCmd_RedisHistory(t *testing.T) {
	mr := miniredis.RunT(t)
	calc := []string{"-redis", mr.Addr(), "-amount", "100000", "-rate", "12.5", "-term", "24"}

	status, _, errOut := run(t, &fixedFeeCmd{}, "", append(calc, "-save")...)
	require.Equal(t, subcommands.ExitSuccess, status, errOut)

	status, _, errOut = run(t, &fixedFeeCmd{}, "", append(calc, "-save")...)
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "already exists")

	status, out, _ := run(t, &fixedFeeCmd{}, "", "-redis", mr.Addr(), "-history")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "12.5000% annual")
	assert.Zero(t, mr.TTL("toolbox:fixed-fee:history"), "saved history does not expire")

	status, out, _ = run(t, &fixedFeeCmd{}, "", "-redis", mr.Addr(), "-clear")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "History cleared.")
	assert.False(t, mr.Exists("toolbox:fixed-fee:history"))
}

func TestLoanAPRCmd(t *testing.T) {
	status, out, _ := run(t, &loanAPRCmd{}, "", "-amount", "10000", "-rate", "0", "-term", "12", "-unit", "months")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "$833.33")

	status, _, _ = run(t, &loanAPRCmd{}, "", "-amount", "10000", "-rate", "5", "-term", "1", "-compounding", "daily")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestCountCmd(t *testing.T) {
	status, out, _ := run(t, &countCmd{}, "One. Two!\n\nThree?")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| SENTENCES |")

	// the last cell of the data row holds the sentence count
	assert.Regexp(t, `(?m)^\|(\s+\d+\s+\|){5}\s+3\s+\|$`, out)
}

func TestBase64Cmd(t *testing.T) {
	status, out, _ := run(t, &base64Cmd{}, "", "hello", "world")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "aGVsbG8gd29ybGQ=\n", out)

	status, out, _ = run(t, &base64Cmd{}, "aGVsbG8gd29ybGQ=\n", "-d")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "hello world", out)

	status, _, _ = run(t, &base64Cmd{}, "", "-d", "***")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestJSONCmd(t *testing.T) {
	doc := `{"a":{"b":[1,2]}}`

	status, out, _ := run(t, &jsonCmd{}, doc, "-indent", "0")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, doc+"\n", out)

	status, out, _ = run(t, &jsonCmd{}, doc, "-m", "query", "-path", "$.a.b")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "1,")

	status, out, _ = run(t, &jsonCmd{}, doc, "-m", "stats")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "JSON Statistics")

	status, _, _ = run(t, &jsonCmd{}, "{", "-m", "validate")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, _, errOut := run(t, &jsonCmd{}, doc, "-m", "sort")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "unknown mode")
}

func TestUtilityCmds(t *testing.T) {
	status, out, _ := run(t, &uuidCmd{}, "", "-n", "3")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Len(t, strings.Fields(out), 3)

	status, out, _ = run(t, &colorCmd{}, "", "#ef4444")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "rgb(239, 68, 68)")

	status, _, _ = run(t, &colorCmd{}, "")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, out, _ = run(t, &calcCmd{}, "", "2", "+", "3", "*", "4")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "20\n", out)

	status, out, _ = run(t, &calcCmd{}, "7 × 6\n")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "42\n", out)

	status, _, _ = run(t, &calcCmd{}, "", "1", "/", "0")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, out, _ = run(t, &toolsCmd{}, "", "-q", "color")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Color")

	status, _, _ = run(t, &toolsCmd{}, "", "-category", "games")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestRegister(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("toolbox", flag.ContinueOnError), "toolbox")
	Register(commander)

	var names []string
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		names = append(names, c.Name())
	})
	for _, want := range []string{
		"serve", "apr", "fixed-fee", "loan-apr", "count", "base64", "json", "uuid", "color", "calc", "tools",
	} {
		assert.Contains(t, names, want)
	}
}
