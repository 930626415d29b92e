package command

import (
	"bytes"
	"testing"
	"time"
)

type fakeRenderer struct {
	content string
	err     error
	calls   []renderCall
}

type renderCall struct {
	lang    string
	version string
	flavor  string
}

func (f *fakeRenderer) Generate(lang, version, flavor string) (string, error) {
	f.calls = append(f.calls, renderCall{lang: lang, version: version, flavor: flavor})
	return f.content, f.err
}

type fakeWriter struct {
	err     error
	path    string
	content string
	calls   int
}

func (f *fakeWriter) WriteFile(path, content string) error {
	f.calls++
	f.path = path
	f.content = content
	return f.err
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func fixedNow() time.Time {
	return time.Date(2024, time.May, 6, 7, 8, 9, 0, time.Local)
}

func runWith(t *testing.T, deps Dependencies, args ...string) runResult {
	t.Helper()
	var out, errOut bytes.Buffer
	deps.Out = &out
	deps.ErrOut = &errOut
	if deps.Now == nil {
		deps.Now = fixedNow
	}
	code := Run(args, deps)
	return runResult{code: code, stdout: out.String(), stderr: errOut.String()}
}
