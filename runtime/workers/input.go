package workers

import (
	"bufio"
	"context"
	"fmt"
	"group-chat/contract"
	"group-chat/errors"
	"io"
	"log/slog"
)

// InputWorker feeds the lines typed by the user to the handler, one at a time.
type InputWorker struct {
	scanner *bufio.Scanner
	handler contract.LineHandler
	log     *slog.Logger
}

func NewInputWorker(reader io.Reader, handler contract.LineHandler, log *slog.Logger) *InputWorker {
	return &InputWorker{scanner: bufio.NewScanner(reader), handler: handler, log: log}
}

func (w *InputWorker) Name() string {
	return "input"
}

// Run returns ErrInputClosed at end of input, nil once the handler is offline.
// A Scan blocked on stdin cannot be interrupted: when the peer closes for
// another reason this goroutine is abandoned until the process exits.
func (w *InputWorker) Run(ctx context.Context) error {
	for ctx.Err() == nil && w.handler.Online() {
		if !w.scanner.Scan() {
			if err := w.scanner.Err(); err != nil {
				return fmt.Errorf("%w: reading input: %v", errors.ErrIO, err)
			}
			return errors.ErrInputClosed
		}

		if err := w.handler.HandleLine(w.scanner.Text()); err != nil {
			if errors.IsFatal(err) {
				return err
			}
			w.handler.ReportError(err)
		}
	}
	return nil
}
