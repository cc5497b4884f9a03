// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ls8/internal"
)

// Loader reads the LS-8 program text format: one byte per line, as a
// binary literal, with '#' comments. A line may instead be a $(...)
// expression, evaluated at load time.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates visible to $(...) expressions.
}

// Predefine defines a new equate or redefines an existing equate.
func (ld *Loader) Predefine(equ string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{equ: value}
	} else {
		ld.predefine[equ] = value
	}
}

// valueOf parses a single binary byte literal.
func (ld *Loader) valueOf(word string) (value uint8, err error) {
	v64, err := strconv.ParseUint(word, 2, 8)
	if err != nil {
		err = ErrParseBinary(word)
		return
	}

	value = uint8(v64)
	return
}

// parenEval does load-time $(...) evaluations
func (ld *Loader) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint8(st_int64)
	return
}

// parseLine parses a single comment-stripped line into a byte.
func (ld *Loader) parseLine(line string) (value uint8, err error) {
	if strings.HasPrefix(line, "$(") && strings.HasSuffix(line, ")") {
		return ld.parenEval(line[2 : len(line)-1])
	}

	return ld.valueOf(line)
}

// Parse parses an input stream into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Equate = maps.Collect(internal.IterSeq2Concat(Defines(), maps.All(ld.predefine)))

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, "#")
		line = strings.TrimSpace(text_comment[0])

		if len(line) == 0 {
			continue
		}

		if address >= MEMORY_SIZE {
			err = ErrProgramTooLarge
			return
		}

		ld.Equate["ADDRESS"] = fmt.Sprintf("%d", address)

		var value uint8
		value, err = ld.parseLine(line)
		if err != nil {
			return
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Text:    line,
			Value:   value,
		})
		address++
	}

	err = scanner.Err()

	return
}
