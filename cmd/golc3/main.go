// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/lassandro/lc3vm/pkg/console"
	"github.com/lassandro/lc3vm/pkg/encoding"
	"github.com/lassandro/lc3vm/pkg/machine"
)

const usage = "golc3 [-raw] [-origin 0x####] image-file ..."

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func golc3(args []string) int {
	var helpvar bool
	var rawvar bool
	var originvar string

	flags := flag.NewFlagSet("golc3", flag.ContinueOnError)
	flags.SetOutput(log.Writer())
	flags.BoolVar(&helpvar, "help", false, "Displays command usage")
	flags.BoolVar(
		&rawvar, "raw", term.IsTerminal(int(os.Stdin.Fd())),
		"Disables line buffering and echo on stdin while running",
	)
	flags.StringVar(
		&originvar, "origin", "",
		"Starts execution at this address instead of the first image origin",
	)

	if err := flags.Parse(args); err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}

	if helpvar {
		fmt.Println(usage)
		flags.SetOutput(os.Stdout)
		flags.PrintDefaults()
		return 0
	}

	images := flags.Args()

	if len(images) < 1 {
		log.Println(usage)
		return 2
	}

	mc := machine.New(
		machine.WithConsole(console.NewTerminal(os.Stdin, os.Stdout)),
	)

	for _, path := range images {
		if _, err := mc.LoadFile(path); err != nil {
			log.Printf("Failed to load image: %s", path)
			log.Println(err)
			return 1
		}
	}

	if originvar != "" {
		pc, err := encoding.DecodeHex(originvar)

		if err != nil {
			log.Println(err)
			return 2
		}

		mc.Regs.PC = pc
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)

	go func() {
		<-c
		fmt.Println()
		atexit.Exit(-2)
	}()

	if rawvar {
		if err := enterRawTerm(os.Stdin); err != nil {
			log.Println(err)
		} else {
			atexit.Register(exitRawTerm)
		}
	}

	if err := mc.Run(); err != nil {
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	atexit.Exit(golc3(os.Args[1:]))
}
