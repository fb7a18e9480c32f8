package parser

import (
	"fmt"
	"io"
)

// Reporter receives the syntax errors of Parser.Parse. HadError stays true
// after the first report until Reset, which the interactive prompt calls
// after every line.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter prints one error message per line.
type SimpleReporter struct {
	out    io.Writer
	failed bool
}

func NewSimpleReporter(out io.Writer) Reporter {
	return &SimpleReporter{out: out}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.failed = true
	fmt.Fprintln(reporter.out, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.failed
}

func (reporter *SimpleReporter) Reset() {
	reporter.failed = false
}
