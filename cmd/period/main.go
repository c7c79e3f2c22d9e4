// SPDX-License-Identifier: MIT

// Command period builds a period oracle, samples the inverse-QFT experiment
// on it and prints the embedded period, the estimate and the observed peaks.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/oracles/oracle"
	"github.com/katalvlaran/oracles/period"
	"github.com/katalvlaran/oracles/sampler"
)

// VERSION is populated via build flags when packaging binaries.
var VERSION = "SELFBUILD"

const defaultShots = 1024

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "period"
	myApp.Usage = "estimate the hidden power-of-two period of an oracle"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "size,n",
			Value: 4,
			Usage: "input register width",
		},
		cli.StringFlag{
			Name:  "secret,s",
			Value: "",
			Usage: "period, a power of two no larger than 2^n; random if empty",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for secret selection, output flips and sampling; clock-derived if unset",
		},
		cli.StringFlag{
			Name:  "phrase",
			Value: "",
			Usage: "seed phrase, overrides --seed",
		},
		cli.IntFlag{
			Name:  "shots",
			Value: defaultShots,
			Usage: "number of samples",
		},
		cli.BoolFlag{
			Name:  "plain",
			Usage: "disable the random output flips",
		},
		cli.BoolFlag{
			Name:  "circuit",
			Usage: "print the oracle's gate list",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "",
			Usage: "config from json file, which will override the command from shell",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		config := Config{}
		config.Size = c.Int("size")
		if s := c.String("secret"); s != "" {
			p, err := strconv.Atoi(s)
			checkError(errors.Wrapf(err, "parse period %q", s))
			config.Period = &p
		}
		if c.IsSet("seed") {
			s := c.Int64("seed")
			config.Seed = &s
		}
		config.Phrase = c.String("phrase")
		config.Shots = c.Int("shots")
		config.Plain = c.Bool("plain")
		config.Circuit = c.Bool("circuit")
		config.Log = c.String("log")

		if c.String("c") != "" {
			err := parseJSONConfig(&config, c.String("c"))
			checkError(err)
		}

		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			checkError(err)
			defer f.Close()
			log.SetOutput(f)
		}

		log.Println("version:", VERSION)
		checkError(run(context.Background(), &config, os.Stdout))

		return nil
	}
	myApp.Run(os.Args)
}

// run builds the oracle described by config, estimates its period and writes
// the report to out.
func run(ctx context.Context, config *Config, out io.Writer) error {
	choice := oracle.RandomPeriod()
	if config.Period != nil {
		choice = oracle.FixedPeriod(*config.Period)
	}

	var (
		oracleSeed  oracle.Option
		samplerSeed sampler.Option
	)
	switch {
	case config.Phrase != "":
		oracleSeed = oracle.WithSeedPhrase(config.Phrase + "/oracle")
		samplerSeed = sampler.WithSeedPhrase(config.Phrase + "/sampler")
	case config.Seed != nil:
		oracleSeed = oracle.WithSeed(*config.Seed)
		samplerSeed = sampler.WithSeed(*config.Seed + 1)
	default:
		now := time.Now().UnixNano()
		log.Println("seed:", now)
		oracleSeed = oracle.WithSeed(now)
		samplerSeed = sampler.WithSeed(now + 1)
	}

	opts := []oracle.Option{oracleSeed}
	if config.Plain {
		opts = append(opts, oracle.WithoutObfuscation())
	}
	o, err := oracle.BuildPeriod(config.Size, choice, opts...)
	if err != nil {
		return errors.Wrap(err, "build oracle")
	}
	if config.Circuit {
		fmt.Fprintln(out, o)
	}
	p, _ := o.Period()
	fmt.Fprintf(out, "period:   %d\n", p)

	res, err := period.Recover(ctx, sampler.NewFourier(samplerSeed), o, config.Shots)
	if err != nil {
		return errors.Wrap(err, "estimate period")
	}
	fmt.Fprintf(out, "estimate: %d (shots=%d, match=%t)\n", res.Estimate, res.Shots, res.Estimate == p)
	for _, peak := range res.Peaks {
		fmt.Fprintf(out, "  %s %d\n", peak.Value, peak.Hits)
	}

	return nil
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
