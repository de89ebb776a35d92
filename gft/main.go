package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/halverson/gainfolio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It returns
// immediately unless the shell is asking for completions.
func completion() {
	files := predict.Files("*.jsonl")
	sub := func(flags map[string]complete.Predictor) *complete.Command {
		return &complete.Command{Flags: flags}
	}
	spec := &complete.Command{
		Sub: map[string]*complete.Command{
			"buy": sub(map[string]complete.Predictor{
				"symbol": predict.Something, "quantity": predict.Something,
				"price": predict.Something, "fee": predict.Something,
				"currency": predict.Something, "date": predict.Something,
				"exchange": predict.Something, "account": predict.Something,
			}),
			"sell": sub(map[string]complete.Predictor{
				"symbol": predict.Something, "quantity": predict.Something,
				"price": predict.Something, "fee": predict.Something,
				"currency": predict.Something, "date": predict.Something,
				"exchange": predict.Something, "account": predict.Something,
			}),
			"tx":       sub(map[string]complete.Predictor{"symbol": predict.Something}),
			"gains":    sub(map[string]complete.Predictor{"symbol": predict.Something}),
			"report":   sub(nil),
			"accounts": sub(nil),
			"topic":    sub(nil),
			"assist":   sub(nil),
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": files,
			"rates-file":  files,
			"prices-file": files,
			"currency":    predict.Something,
		},
	}
	spec.Complete("gft")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
