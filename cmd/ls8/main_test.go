package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doMain(args ...string) (code int, stdout string, stderr string) {
	out := &bytes.Buffer{}
	errout := &bytes.Buffer{}

	code = run(append([]string{"ls8"}, args...), out, errout)

	return code, out.String(), errout.String()
}

func TestMain_Programs(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		file   string
		output string
	}){
		{"print8.ls8", "8\n"},
		{"mult.ls8", "27\n"},
		{"stack.ls8", "2\n1\n"},
	}

	for _, entry := range table {
		code, stdout, stderr := doMain(filepath.Join("testdata", entry.file))
		assert.Equal(EXIT_OK, code, entry.file)
		assert.Equal(entry.output, stdout, entry.file)
		assert.Empty(stderr, entry.file)
	}
}

func TestMain_Usage(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := doMain()
	assert.Equal(EXIT_USAGE, code)
	assert.Empty(stdout)
	assert.Contains(stderr, "ls8 <filename>")

	code, _, stderr = doMain("testdata/print8.ls8", "testdata/mult.ls8")
	assert.Equal(EXIT_USAGE, code)
	assert.Contains(stderr, "ls8 <filename>")

	code, _, _ = doMain("-nosuchflag", "testdata/print8.ls8")
	assert.Equal(EXIT_USAGE, code)
}

func TestMain_NotFound(t *testing.T) {
	assert := assert.New(t)

	missing := filepath.Join(t.TempDir(), "missing.ls8")

	code, stdout, stderr := doMain(missing)
	assert.Equal(EXIT_NOT_FOUND, code)
	assert.Equal(missing+" not found\n", stdout)
	assert.Empty(stderr)
}

func TestMain_UnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	code, stdout, _ := doMain("testdata/unknown.ls8")
	assert.Equal(EXIT_FAULT, code)
	assert.NotEqual(EXIT_OK, code)
	assert.Contains(stdout, "Unknown command: 255")
}

func TestMain_Syntax(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := doMain("testdata/syntax.ls8")
	assert.Equal(EXIT_FAULT, code)
	assert.Empty(stdout)
	assert.Contains(stderr, "line 3")
	assert.Contains(stderr, "NOTBINARY")
}

func TestMain_Dump(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := doMain("-d", "testdata/mult.ls8")
	assert.Equal(EXIT_OK, code)
	assert.Equal("27\n", stdout)
	assert.Contains(stderr, "REGISTER")
	assert.Contains(stderr, "1B")
}
