package mine

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"cmp"
	"fmt"
	"os"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fim/cmd"
	"github.com/timtadh/fim/config"
	"github.com/timtadh/fim/miners"
	"github.com/timtadh/fim/miners/apriori"
	"github.com/timtadh/fim/miners/eclat"
	"github.com/timtadh/fim/miners/fpgrowth"
	"github.com/timtadh/fim/miners/pattern"
	"github.com/timtadh/fim/types/itemset"
)

// Miners maps the name of every engine to its constructor.
var Miners = map[string]func(*itemset.Database) miners.Miner{
	"apriori": func(db *itemset.Database) miners.Miner {
		return apriori.NewScan(db)
	},
	"apriori-tid": func(db *itemset.Database) miners.Miner {
		return apriori.NewVertical(db)
	},
	"eclat": func(db *itemset.Database) miners.Miner {
		return eclat.NewMiner(db)
	},
	"fp-growth": func(db *itemset.Database) miners.Miner {
		return fpgrowth.NewMiner(db)
	},
	"pattern-growth": func(db *itemset.Database) miners.Miner {
		return pattern.NewMiner(db)
	},
}

func Names() []string {
	names := make([]string, 0, len(Miners))
	for name := range Miners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func New(name string, db *itemset.Database) (miners.Miner, error) {
	construct, has := Miners[name]
	if !has {
		return nil, &miners.UnknownMinerError{Name: name}
	}
	return construct(db), nil
}

// Mine encodes raw, runs the named engine over it and returns the patterns
// with the index that decodes them.
func Mine[T cmp.Ordered](name string, raw [][]T, minSupport float64) (*itemset.Patterns, *itemset.Index[T], error) {
	if err := miners.CheckThreshold(minSupport); err != nil {
		return nil, nil, err
	}
	db, idx, err := itemset.Encode(raw)
	if err != nil {
		return nil, nil, err
	}
	miner, err := New(name, db)
	if err != nil {
		return nil, nil, err
	}
	patterns, err := miner.Run(minSupport)
	if err != nil {
		return nil, nil, err
	}
	return patterns, idx, nil
}

func mode(name string) cmd.Mode {
	return func(argv []string, conf *config.Config) (func(*itemset.Database) miners.Miner, []string) {
		args, optargs, err := getopt.GetOpt(
			argv,
			"h",
			[]string{
				"help",
			},
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
		for _, oa := range optargs {
			switch oa.Opt() {
			case "-h", "--help":
				cmd.Usage(0)
			default:
				fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		}
		conf.Miner = name
		return Miners[name], args
	}
}

func Run(argv []string) int {
	modes := make(map[string]cmd.Mode, len(Miners))
	for name := range Miners {
		modes[name] = mode(name)
	}

	args, optargs, err := getopt.GetOpt(
		argv,
		"ho:s:l:c:",
		[]string{
			"help",
			"output=",
			"support=",
			"loader=",
			"config=",
			"modes", "reporters",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v %v <input-path> eclat\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := config.Default()
	for _, oa := range optargs {
		if oa.Opt() == "-c" || oa.Opt() == "--config" {
			conf, err = config.Load(oa.Arg())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				cmd.Usage(cmd.ErrorCodes["badfile"])
			}
		}
	}

	output := conf.Output
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-c", "--config":
		case "-o", "--output":
			output = oa.Arg()
		case "-s", "--support":
			conf.MinSupport = cmd.ParseFloat(oa.Arg())
		case "-l", "--loader":
			conf.Loader = oa.Arg()
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for _, k := range Names() {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for _, k := range cmd.ReporterNames(cmd.Reporters) {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			conf.SkipLog = append(conf.SkipLog, oa.Arg())
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	for _, level := range conf.SkipLog {
		errors.Logf("INFO", "not logging level %v", level)
		errors.SkipLogging[level] = true
	}

	if err := conf.Validate(Names()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output != "" {
		conf.Output = cmd.AssertDir(output)
	}

	if cpuProfile != "" {
		defer cmd.CPUProfile(cpuProfile)()
	}

	return cmd.Main(args, conf, modes)
}
