package survey

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/odpf/salt/log"

	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/core/shelflife/service"
)

// PromptConfirmer asks the operator on an interactive terminal
type PromptConfirmer struct{}

func (PromptConfirmer) Confirm(_ context.Context, prompt string) (shelflife.Answer, error) {
	var response string
	if err := survey.AskOne(&survey.Input{Message: prompt}, &response); err != nil {
		return shelflife.AnswerInvalid, err
	}
	return shelflife.AnswerFrom(response), nil
}

// LineConfirmer reads a single line answer, used when stdin is not a terminal
type LineConfirmer struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewLineConfirmer(reader io.Reader, writer io.Writer) *LineConfirmer {
	return &LineConfirmer{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

func (l *LineConfirmer) Confirm(_ context.Context, prompt string) (shelflife.Answer, error) {
	fmt.Fprintf(l.writer, "%s ", prompt)
	line, err := l.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return shelflife.AnswerInvalid, err
	}
	return shelflife.AnswerFrom(line), nil
}

// FixedConfirmer gives the same answer to every prompt
type FixedConfirmer struct {
	answer string
	logger log.Logger
}

func NewFixedConfirmer(answer string, logger log.Logger) *FixedConfirmer {
	return &FixedConfirmer{
		answer: answer,
		logger: logger,
	}
}

func (f *FixedConfirmer) Confirm(_ context.Context, prompt string) (shelflife.Answer, error) {
	f.logger.Info("%s %s", prompt, f.answer)
	return shelflife.AnswerFrom(f.answer), nil
}

// NewConfirmer picks the fixed answer when given, the interactive prompt on a terminal,
// and a plain line read otherwise
func NewConfirmer(answer string, logger log.Logger) service.Confirmer {
	if answer != "" {
		return NewFixedConfirmer(answer, logger)
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return PromptConfirmer{}
	}
	return NewLineConfirmer(os.Stdin, os.Stdout)
}
