package tagger_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/espacy/internal/tagger"
)

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func Test_Command_Returns_Tokens_And_Tags_When_Process_Prints_JSON(t *testing.T) {
	t.Parallel()
	requireShell(t)

	script := `cat >/dev/null; printf '{"tokens":["the","dog"],"tags":["DET","NOUN"]}'`

	cmd, err := tagger.NewCommand([]string{"sh", "-c", script})
	require.NoError(t, err)

	ctx := context.Background()

	tokens, err := cmd.Tokenize(ctx, "the dog", tagger.DefaultDelimiters())
	require.NoError(t, err)

	tags, err := cmd.Tag(ctx, "the dog", tagger.DefaultDelimiters())
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"the", "dog"}, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"DET", "NOUN"}, tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func Test_Command_Passes_Text_And_Delimiters_When_Running(t *testing.T) {
	t.Parallel()
	requireShell(t)

	// Echo stdin back as the single token and the delimiter list as its tag.
	script := `text=$(cat); printf '{"tokens":["%s"],"tags":["%s"]}' "$text" "$(printf '%s' "$ESPACY_DELIMITERS" | tr '\n' ' ')"`

	cmd, err := tagger.NewCommand([]string{"sh", "-c", script})
	require.NoError(t, err)

	ctx := context.Background()
	delims := tagger.Only(".", ",")

	tokens, err := cmd.Tokenize(ctx, "hola", delims)
	require.NoError(t, err)

	tags, err := cmd.Tag(ctx, "hola", delims)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"hola"}, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{". ,"}, tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func Test_Command_Returns_Error_When_Process_Misbehaves(t *testing.T) {
	t.Parallel()
	requireShell(t)

	tests := []struct {
		name   string
		script string
		want   error
	}{
		{name: "exit", script: `echo nope >&2; exit 3`, want: tagger.ErrCommandFailed},
		{name: "garbage", script: `echo not json`, want: tagger.ErrBadResponse},
		{name: "misaligned", script: `printf '{"tokens":["a","b"],"tags":["X"]}'`, want: tagger.ErrMisaligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := tagger.NewCommand([]string{"sh", "-c", tt.script})
			require.NoError(t, err)

			_, err = cmd.Tag(context.Background(), "x", tagger.DefaultDelimiters())
			if !errors.Is(err, tt.want) {
				t.Errorf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func Test_NewCommand_Returns_Error_When_Argv_Empty(t *testing.T) {
	t.Parallel()

	_, err := tagger.NewCommand(nil)
	if !errors.Is(err, tagger.ErrCommandEmpty) {
		t.Errorf("err=%v, want ErrCommandEmpty", err)
	}
}
