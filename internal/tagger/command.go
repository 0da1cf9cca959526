package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DelimitersEnv carries the delimiter set to a [Command] tagger, one mark
// per line.
const DelimitersEnv = "ESPACY_DELIMITERS"

// Command runs an external tagger process once per call.
//
// The text goes to the process on stdin and the delimiters in
// [DelimitersEnv]. The process must print a single JSON object:
//
//	{"tokens": ["el", "perro"], "tags": ["DET", "NOUN"]}
type Command struct {
	argv []string
	env  []string
}

// NewCommand returns a tagger running argv. Extra environment entries
// ("KEY=value") are appended to the current environment.
func NewCommand(argv []string, env ...string) (*Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, ErrCommandEmpty
	}

	return &Command{argv: append([]string(nil), argv...), env: env}, nil
}

type commandResponse struct {
	Tokens []string `json:"tokens"`
	Tags   []string `json:"tags"`
}

// Tokenize returns the tokens reported by the process.
func (c *Command) Tokenize(ctx context.Context, text string, delims Delimiters) ([]string, error) {
	resp, err := c.run(ctx, text, delims)
	if err != nil {
		return nil, err
	}

	return resp.Tokens, nil
}

// Tag returns the tags reported by the process.
func (c *Command) Tag(ctx context.Context, text string, delims Delimiters) ([]string, error) {
	resp, err := c.run(ctx, text, delims)
	if err != nil {
		return nil, err
	}

	return resp.Tags, nil
}

// Analyze returns tokens and tags from a single run of the process.
func (c *Command) Analyze(ctx context.Context, text string, delims Delimiters) (tokens, tags []string, err error) {
	resp, err := c.run(ctx, text, delims)
	if err != nil {
		return nil, nil, err
	}

	return resp.Tokens, resp.Tags, nil
}

func (c *Command) run(ctx context.Context, text string, delims Delimiters) (commandResponse, error) {
	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Env = append(os.Environ(), c.env...)
	cmd.Env = append(cmd.Env, DelimitersEnv+"="+strings.Join(delims, "\n"))

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		msg := strings.TrimSpace(stderr.String())

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) && msg != "" {
			return commandResponse{}, fmt.Errorf("%w: %s: %s", ErrCommandFailed, c.argv[0], msg)
		}

		return commandResponse{}, fmt.Errorf("%w: %s: %w", ErrCommandFailed, c.argv[0], runErr)
	}

	var resp commandResponse

	decodeErr := json.Unmarshal(stdout.Bytes(), &resp)
	if decodeErr != nil {
		return commandResponse{}, fmt.Errorf("%w: %w", ErrBadResponse, decodeErr)
	}

	if len(resp.Tokens) != len(resp.Tags) {
		return commandResponse{}, fmt.Errorf("%w: %d tokens, %d tags", ErrMisaligned, len(resp.Tokens), len(resp.Tags))
	}

	return resp, nil
}
