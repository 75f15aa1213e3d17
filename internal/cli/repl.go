package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunInteractive reads commands from in, one per line, and writes replies to
// out framed by dividers until "bye" or end of input.
func (a *App) RunInteractive(ctx context.Context, s *Session, in io.Reader, out io.Writer) error {
	errHandler := NewErrorHandler(a.renderer)
	a.printBlock(out, a.renderer.StyleHeader(a.renderer.Welcome()))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		response, err := a.Respond(ctx, s, line)

		var parts []string
		if response.Message != "" {
			parts = append(parts, a.renderer.StyleHeader(response.Message))
		}
		if err != nil {
			errHandler.Detail(err)
			parts = append(parts, a.renderer.StyleError(errHandler.Message(err)))
		}
		a.printBlock(out, strings.Join(parts, "\n"))

		if response.Exit {
			return nil
		}
	}
	return scanner.Err()
}

// RunOnce executes a single command line and writes the reply to out.
func (a *App) RunOnce(ctx context.Context, s *Session, line string, out io.Writer) error {
	response, err := a.Respond(ctx, s, line)
	if response.Message != "" {
		fmt.Fprintln(out, a.renderer.StyleHeader(response.Message))
	}
	if err != nil {
		errHandler := NewErrorHandler(a.renderer)
		errHandler.Detail(err)
		return fmt.Errorf("%s", errHandler.Message(err))
	}
	return nil
}

func (a *App) printBlock(out io.Writer, body string) {
	divider := a.renderer.StyleDivider(a.renderer.Divider())
	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, body)
	fmt.Fprintln(out, divider)
}
