package main

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
	"os"
)

import (
	"github.com/timtadh/fim/cmd"
	"github.com/timtadh/fim/mine"
)

func init() {
	cmd.UsageMessage = "fim --help"
	cmd.ExtendedMessage = `
fim - mine frequent itemsets

$ fim --support=<float> [Global Options] \
    <input-path> \
    <mode> [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then <input-path> then
      [<mode> [Mode Options]] and finally the reporters. Changes in ordering
      are not supported. The mode may be left out when the config file names
      a miner.

Note: The <input-path> may be a regular file or a compressed one. The
      compression is chosen by the file extension: '.gz' (gzip), '.zst'
      (zstandard) or '.lz4'. If <input-path> is a directory every file in it
      is read in name order as one database.

Note: If you don't supply a reporter by default it will use 'chain log file'
      when there is an output directory and 'log' otherwise.


Global Options
    -h, --help                view this message
    --modes                   show the available modes
    --reporters               show the available reporters
    -s, --support=<float>     minimum support of patterns as a fraction of the
                              transactions in [0, 1] (required)
    -o, --output=<path>       path to output directory
                              NB: will overwrite contents of dir
    -l, --loader=<name>       how to read items (default string)
    -c, --config=<path>       read settings from a TOML file. flags given on
                              the command line take precedence.
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

    heap-profile Reporter

        $ fim ... <mode> ... chain ... heap-profile [options]

        -p, profile=<path>    prefix of the heap-profiles written
        -e, every=<int>       write a profile every n patterns (default 1)
        -a, after=<int>       start after n patterns were reported (default 0)

Loaders
    string                    each line is a transaction, the items are
                              whitespace separated words
    int                       each line is a transaction, the items are
                              whitespace separated integers

    Example file:
        bread milk
        bread diaper beer egg
        milk diaper beer coke
        bread milk diaper beer
        bread milk diaper coke

Config File
    output = "/tmp/fim"
    support = 0.4
    miner = "eclat"
    loader = "string"
    skip-log = ["DEBUG"]

    Unknown keys are an error.


Modes
    apriori                   level-wise search counting candidates by
                              scanning the transactions
    apriori-tid               level-wise search counting candidates by
                              intersecting transaction id lists
    eclat                     depth first search over equivalence classes of
                              transaction id lists
    fp-growth                 recursive mining of conditional prefix trees
    pattern-growth            recursive mining of projected databases

    Every mode finds the same patterns with the same counts.


Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the output dir
    count                     write the number of patterns per level to a file
                              in the output dir
    max                       takes an "inner reporter" but only passes the
                              maximal patterns to it
    closed                    takes an "inner reporter" but only passes the
                              closed patterns to it

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the output
                              directory to write the patterns (default
                              patterns). Each line is
                                  <count> <support> <item> <item> ...

    count Options
        -f, filename=<name>   the name of the file (default count)

    Examples

        $ fim -o /tmp/fim --support=.4 ./data/market.txt eclat

        $ fim -o /tmp/fim --support=.01 -l int ./data/transactions.dat.gz \
            fp-growth \
            chain log max file -p maximal endchain

        $ fim --skip-log=DEBUG -o /tmp/fim --support=.05 ./data/ \
            apriori-tid \
            chain \
                count \
                closed \
                    chain \
                        log -p closed \
                        file -p closed \
                    endchain \
                file -p all
`
}

func main() {
	os.Exit(mine.Run(os.Args[1:]))
}
