package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	opPrint = iota
	opSpin
	opStop
	opQuiet
	opOutput
	opFatal
)

const hz = 10 // spins per second

type instruction struct {
	ch     chan<- struct{}
	opcode int
	s      string
	quiet  bool
	w      io.Writer
}

var chInst chan<- instruction

func op(opcode int, s string) {
	inst(instruction{opcode: opcode, s: s})
}

// inst hands an instruction to the ui goroutine and waits for it to be
// carried out, so output is complete by the time Print et al. return.
func inst(i instruction) {
	ch := make(chan struct{})
	i.ch = ch
	chInst <- i
	<-ch
}

// init starts a goroutine that serializes all ui elements so that the
// terminal's output makes sense.
func init() {
	ch := make(chan instruction)
	chInst = ch
	go loop(ch)
}

func loop(ch <-chan instruction) {
	var w io.Writer = os.Stderr
	quiet := false
	dots, s, spinner := "", "", ""
	tick := time.Tick(time.Second / hz)
	ticks := 1
	for {
		isTerminal := w == io.Writer(os.Stderr) && term.IsTerminal(int(os.Stderr.Fd()))
		width := 80
		if isTerminal {
			if cols, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && cols > 0 {
				width = cols
			}
		}

		select {

		case inst := <-ch:
			switch inst.opcode {

			case opFatal:
				if spinner != "" {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, inst.s)
				os.Exit(1)

			case opOutput:
				w = inst.w

			case opQuiet:
				quiet = inst.quiet

			case opPrint:
				if quiet {
					break
				}

				// Print called between Spin and Stop
				// demands special consideration.
				if spinner != "" {
					if isTerminal {
						fmt.Fprint(w, "\r", s, " ", dots, ". (to be continued)\n")
					} else {
						fmt.Fprintln(w, " (to be continued)")
					}
					dots, s = "", "(continuing)"
				}

				fmt.Fprintln(w, inst.s)

				if spinner != "" {
					fmt.Fprint(w, "(continuing)")
				}

			case opSpin:
				if quiet {
					break
				}

				// The last line of output on the terminal can't wrap or
				// carriage returns will make a mess of things.
				var i int
				if isTerminal {
					i = len(inst.s) - len(inst.s)%width
					if i > 0 {
						fmt.Fprintln(w, inst.s[:i])
					}
				}
				s, spinner = inst.s[i:], "-"
				fmt.Fprint(w, s, " ", dots, spinner)

			case opStop:
				if quiet {
					break
				}

				// No carriage returns if output is not a terminal.
				if !isTerminal {
					fmt.Fprint(w, " ", strings.TrimSuffix(inst.s, "\n"), "\n")
				} else {
					fmt.Fprint(w, "\r", s, " ", dots, ". ", strings.TrimSuffix(inst.s, "\n"), "\n")
				}
				dots, s, spinner = "", "", ""

			}
			inst.ch <- struct{}{}

		case <-tick:
			if !isTerminal || quiet {
				continue
			}

			if ticks%(2*hz) == 0 {
				dots = dots + "."
			}
			if spinner != "" {
				fmt.Fprint(w, "\r", s, " ", dots, spinner)
			}
			switch spinner {
			case "-":
				spinner = "\\"
			case "\\":
				spinner = "|"
			case "|":
				spinner = "/"
			case "/":
				spinner = "-"
			}

			ticks = (ticks + 1) % (2 * hz)

		}
	}
}
