package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/core-resolve/internal/console"
	"github.com/griffnb/core-resolve/internal/diagnostic"
	"github.com/griffnb/core-resolve/internal/gen"
	"github.com/griffnb/core-resolve/internal/resolver"
	"github.com/griffnb/core-resolve/internal/templates"
)

const (
	outputFlag            = "output"
	outputTypesFlag       = "outputTypes"
	instanceNameFlag      = "instanceName"
	stateFlag             = "state"
	cacheSizeFlag         = "cacheSize"
	dumpModelFlag         = "dumpModel"
	failOnDiagnosticsFlag = "failOnDiagnostics"
	quietFlag             = "quiet"
	debugFlag             = "debug"
)

var emitFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./docs",
		Usage:   "Output directory for all the generated files (swagger.json, swagger.yaml)",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json,yaml",
		Usage:   "Output types of generated files (swagger.json, swagger.yaml) like json,yaml",
	},
	&cli.StringFlag{
		Name:  instanceNameFlag,
		Value: "",
		Usage: "This parameter can be used to name different document instances. It is optional.",
	},
	&cli.StringFlag{
		Name:  stateFlag,
		Value: "",
		Usage: "Set host state for swagger.json",
	},
	&cli.IntFlag{
		Name:  cacheSizeFlag,
		Value: 0,
		Usage: "Bound for the flattened-field cache, 0 uses the default",
	},
	&cli.BoolFlag{
		Name:  dumpModelFlag,
		Usage: "Dump the resolved document through the debug logger",
	},
	&cli.BoolFlag{
		Name:  failOnDiagnosticsFlag,
		Usage: "Exit non-zero when classification reported diagnostics",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

func emitAction(ctx *cli.Context) error {
	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}

	outputTypes := strings.Split(ctx.String(outputTypesFlag), ",")
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if ctx.Bool(quietFlag) {
		logger = log.New(io.Discard, "", log.LstdFlags)
	}

	return gen.New().Build(&gen.Config{
		OutputDir:         ctx.String(outputFlag),
		OutputTypes:       outputTypes,
		InstanceName:      ctx.String(instanceNameFlag),
		State:             ctx.String(stateFlag),
		CacheSize:         ctx.Int(cacheSizeFlag),
		DumpModel:         ctx.Bool(dumpModelFlag),
		FailOnDiagnostics: ctx.Bool(failOnDiagnosticsFlag),
		Debugger:          logger,
	})
}

func listAction(ctx *cli.Context) error {
	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}

	catalog := templates.Catalog()
	collector := diagnostic.NewCollector()

	for _, op := range catalog.Operations {
		body, err := resolver.RequireSuccessBody(op, collector)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s success=%s responses=%d\n", op.Name, body.Name, len(op.Responses))
	}

	for _, d := range collector.All() {
		console.Logger.Warn("%s", d.Error())
	}

	return nil
}

func main() {
	app := cli.NewApp()
	app.Version = gen.Version
	app.Usage = "Resolve API type graphs and emit Swagger 2.0 documents."
	app.Commands = []*cli.Command{
		{
			Name:    "emit",
			Aliases: []string{"e"},
			Usage:   "Resolve the template catalog and write document files",
			Action:  emitAction,
			Flags:   emitFlags,
		},
		{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "List catalog operations with their success classification",
			Action:  listAction,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  debugFlag,
					Usage: "Enable debug mode, disabled by default",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
