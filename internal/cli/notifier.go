package cli

import (
	"fmt"
	"io"
	"os"
)

// ToastNotifier prints transient user-facing messages to the terminal,
// styled the same way everywhere the ledger emits them.
type ToastNotifier struct {
	out io.Writer
}

// NewToastNotifier creates a notifier writing to stdout.
func NewToastNotifier() *ToastNotifier {
	return &ToastNotifier{out: os.Stdout}
}

// NewToastNotifierTo creates a notifier writing to the given writer.
func NewToastNotifierTo(out io.Writer) *ToastNotifier {
	return &ToastNotifier{out: out}
}

// Notify prints a single toast line.
func (n *ToastNotifier) Notify(message string) {
	fmt.Fprintln(n.out, InfoStyle.Render(message))
}
