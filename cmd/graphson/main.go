package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tiglabs/graphson"
	"github.com/tiglabs/graphson/gateway"
	"github.com/tiglabs/graphson/util/log"
	"github.com/tiglabs/graphson/util/server"
)

const (
	flagConfig    = "config"
	flagFrom      = "from"
	flagTo        = "to"
	flagVersion   = "version"
	flagNormalize = "normalize"
	flagInput     = "input"
	flagOutput    = "output"
)

var (
	app = &cli.App{
		Name:        "graphson",
		Usage:       "graphson [command]",
		Description: "Versioned JSON codec for property graph documents.",
	}

	startCmd = &cli.Command{
		Name:        "start",
		Usage:       "graphson start -c gateway.toml",
		Description: "Start the codec gateway server",
		Action: func(cmdCtx *cli.Context) error {
			// set go flag values
			server.SetGoFlagVals(cmdCtx)

			cfg := gateway.NewConfig(cmdCtx.String(flagConfig))

			// init log
			log.InitFileLog(cfg.LogCfg.LogPath, cfg.ModuleCfg.Name, cfg.LogCfg.Level)

			s := gateway.NewApiServer(cfg)
			if err := s.Start(); err != nil {
				fmt.Printf("Graphson gateway start error: %s", err)
				return err
			}

			server.WaitShutdown(func() error {
				s.Close()
				return nil
			})
			return nil
		},
	}

	convertCmd = &cli.Command{
		Name:        "convert",
		Usage:       "graphson convert --from 1.0 --to 2.0 [-i in.json] [-o out.json]",
		Description: "Convert a document between format versions",
		Action: func(cmdCtx *cli.Context) error {
			from, err := graphson.ParseVersion(cmdCtx.String(flagFrom))
			if err != nil {
				return err
			}
			to, err := graphson.ParseVersion(cmdCtx.String(flagTo))
			if err != nil {
				return err
			}
			doc, err := readInput(cmdCtx.String(flagInput))
			if err != nil {
				return err
			}

			in, err := graphson.NewCodec(from, false)
			if err != nil {
				return err
			}
			out, err := graphson.NewCodec(to, cmdCtx.Bool(flagNormalize))
			if err != nil {
				return err
			}

			value, err := in.Unmarshal(doc)
			if err != nil {
				return err
			}
			converted, err := out.Marshal(value)
			if err != nil {
				return err
			}
			return writeOutput(cmdCtx.String(flagOutput), converted)
		},
	}

	normalizeCmd = &cli.Command{
		Name:        "normalize",
		Usage:       "graphson normalize --version 2.0 [-i in.json] [-o out.json]",
		Description: "Re-encode a document with canonical member order",
		Action: func(cmdCtx *cli.Context) error {
			version, err := graphson.ParseVersion(cmdCtx.String(flagVersion))
			if err != nil {
				return err
			}
			doc, err := readInput(cmdCtx.String(flagInput))
			if err != nil {
				return err
			}

			codec, err := graphson.NewCodec(version, true)
			if err != nil {
				return err
			}
			value, err := codec.Unmarshal(doc)
			if err != nil {
				return err
			}
			normalized, err := codec.Marshal(value)
			if err != nil {
				return err
			}
			return writeOutput(cmdCtx.String(flagOutput), normalized)
		},
	}

	validateCmd = &cli.Command{
		Name:        "validate",
		Usage:       "graphson validate --version 2.0 [-i in.json]",
		Description: "Decode a document and report whether it is well formed",
		Action: func(cmdCtx *cli.Context) error {
			version, err := graphson.ParseVersion(cmdCtx.String(flagVersion))
			if err != nil {
				return err
			}
			doc, err := readInput(cmdCtx.String(flagInput))
			if err != nil {
				return err
			}

			codec, err := graphson.NewCodec(version, false)
			if err != nil {
				return err
			}
			if _, err := codec.Unmarshal(doc); err != nil {
				return err
			}

			fmt.Printf("valid %s document\n", version)
			return nil
		},
	}
)

func init() {
	server.AppendFlags(startCmd, &cli.StringFlag{
		Name:    flagConfig,
		Aliases: []string{"c"},
		Usage:   "gateway config file path",
	})
	// add go flags to start command
	server.AddGoFlags(startCmd)

	server.AppendFlags(convertCmd,
		&cli.StringFlag{Name: flagFrom, Usage: "source format version", Required: true},
		&cli.StringFlag{Name: flagTo, Usage: "target format version", Required: true},
		&cli.BoolFlag{Name: flagNormalize, Usage: "sort map and property keys in output"},
		&cli.StringFlag{Name: flagInput, Aliases: []string{"i"}, Usage: "input file path, stdin when empty"},
		&cli.StringFlag{Name: flagOutput, Aliases: []string{"o"}, Usage: "output file path, stdout when empty"},
	)
	server.AppendFlags(normalizeCmd,
		&cli.StringFlag{Name: flagVersion, Usage: "format version", Required: true},
		&cli.StringFlag{Name: flagInput, Aliases: []string{"i"}, Usage: "input file path, stdin when empty"},
		&cli.StringFlag{Name: flagOutput, Aliases: []string{"o"}, Usage: "output file path, stdout when empty"},
	)
	server.AppendFlags(validateCmd,
		&cli.StringFlag{Name: flagVersion, Usage: "format version", Required: true},
		&cli.StringFlag{Name: flagInput, Aliases: []string{"i"}, Usage: "input file path, stdin when empty"},
	)

	app.Commands = append(app.Commands, startCmd, convertCmd, normalizeCmd, validateCmd)
	app.Commands = append(app.Commands, server.VersionCommand())
}

func readInput(path string) ([]byte, error) {
	if len(path) == 0 {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if len(path) == 0 {
		_, err := fmt.Println(string(data))
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}

func main() {
	// Needed to avoid "logging before flag.Parse" error with glog.
	server.SupressGlogWarnings()
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("Run graphson error: %s", err)
		os.Exit(-1)
	}
}
