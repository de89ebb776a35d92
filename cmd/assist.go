package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/halverson/gainfolio"
	"github.com/halverson/gainfolio/agent"
	"github.com/halverson/gainfolio/renderer"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `gft assist [<question>]

  Start an interactive session with the AI assistant, grounded in the
  portfolio report.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(renderReport)
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// renderReport builds the current portfolio report from the app files.
func renderReport() (string, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return "", err
	}
	rates, err := DecodeRates()
	if err != nil {
		return "", err
	}
	prices, err := DecodePrices()
	if err != nil {
		return "", err
	}
	report := gainfolio.Report(ledger, prices, rates, *reportingCurrency, gainfolio.DefaultAccountClassifier())
	return renderer.ReportMarkdown(report), nil
}
