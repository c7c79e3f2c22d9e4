// SPDX-License-Identifier: MIT

// Command simon builds a hidden-mask oracle, samples Simon's experiment on it
// and prints the embedded mask next to the recovered one.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/oracles/bitvec"
	"github.com/katalvlaran/oracles/oracle"
	"github.com/katalvlaran/oracles/sampler"
	"github.com/katalvlaran/oracles/simon"
)

// VERSION is populated via build flags when packaging binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "simon"
	myApp.Usage = "recover a hidden XOR mask with Simon's algorithm"
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
			Usage: "mask as a bit string of length n, most significant bit first; random if empty",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for secret selection and sampling; clock-derived if unset",
		},
		cli.StringFlag{
			Name:  "phrase",
			Value: "",
			Usage: "seed phrase, overrides --seed",
		},
		cli.IntFlag{
			Name:  "shots",
			Value: simon.DefaultShots,
			Usage: "shots in the first sampling round",
		},
		cli.IntFlag{
			Name:  "attempts",
			Value: simon.DefaultMaxAttempts,
			Usage: "maximum sampling rounds",
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
		config.Secret = c.String("secret")
		if c.IsSet("seed") {
			s := c.Int64("seed")
			config.Seed = &s
		}
		config.Phrase = c.String("phrase")
		config.Shots = c.Int("shots")
		config.Attempts = c.Int("attempts")
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

// run builds the oracle described by config, recovers its mask and writes
// the comparison to out.
func run(ctx context.Context, config *Config, out io.Writer) error {
	if config.Shots < 1 {
		return errors.Errorf("shots must be positive, got %d", config.Shots)
	}
	if config.Attempts < 1 {
		return errors.Errorf("attempts must be positive, got %d", config.Attempts)
	}

	choice := oracle.RandomMask()
	if config.Secret != "" {
		mask, err := bitvec.Parse(config.Secret)
		if err != nil {
			return errors.Wrap(err, "parse secret")
		}
		choice = oracle.FixedMask(mask)
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

	o, err := oracle.BuildXorMask(config.Size, choice, oracleSeed)
	if err != nil {
		return errors.Wrap(err, "build oracle")
	}
	if config.Circuit {
		fmt.Fprintln(out, o)
	}
	mask, _ := o.Mask()
	fmt.Fprintf(out, "mask:      %s\n", mask)

	res, err := simon.Recover(ctx, sampler.NewFourier(samplerSeed), o,
		simon.WithShots(config.Shots),
		simon.WithMaxAttempts(config.Attempts),
		simon.WithLogf(log.Printf),
	)
	if err != nil {
		return errors.Wrap(err, "recover mask")
	}
	fmt.Fprintf(out, "recovered: %s (attempts=%d, samples=%d, match=%t)\n",
		res.Mask, res.Attempts, res.Samples, res.Mask.Equal(mask))

	return nil
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
