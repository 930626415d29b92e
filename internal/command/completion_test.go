// Where: internal/command/completion_test.go
// What: Tests for shell completion scripts.
// Why: Keep subcommands and language choices in every generated script.
package command

import (
	"strings"
	"testing"
)

func TestCompletionScripts(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{shell: "bash", want: []string{"complete -F _dockerfile_generator_completion dockerfile-generator", "create list completion version", "python nodejs -lv"}},
		{shell: "zsh", want: []string{"#compdef dockerfile-generator", "_values 'create' python nodejs"}},
		{shell: "fish", want: []string{"complete -c dockerfile-generator", "__fish_seen_subcommand_from completion", "bash zsh fish"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			res := runWith(t, Dependencies{}, "completion", tt.shell)
			if res.code != ExitOK {
				t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
			}
			for _, want := range tt.want {
				if !strings.Contains(res.stdout, want) {
					t.Errorf("%s completion missing %q:\n%s", tt.shell, want, res.stdout)
				}
			}
		})
	}
}

func TestCollectCompletionCommands(t *testing.T) {
	commands, subcommands := collectCompletionCommands(CLI{})
	if strings.Join(commands, ",") != "create,list,completion,version" {
		t.Fatalf("unexpected commands: %v", commands)
	}
	if got := strings.Join(subcommands["completion"], ","); got != "bash,zsh,fish" {
		t.Fatalf("unexpected completion subcommands: %s", got)
	}
	if got := subcommands["create"]; len(got) < 2 || got[0] != "python" || got[1] != "nodejs" {
		t.Fatalf("unexpected create completions: %v", got)
	}
	if _, ok := subcommands["list"]; ok {
		t.Fatalf("list takes no completions")
	}
}
