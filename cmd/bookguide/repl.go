package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/bookguide-go/pkg/bookguide"
)

// replOptions configures REPL behavior.
type replOptions struct {
	Verbose bool
	Logger  bookguide.Logger
}

// runREPL starts an interactive BookGuide session. Recognized commands
// (case-insensitive, whitespace-trimmed) are exit, history, and save;
// any other non-empty line is treated as a question.
func runREPL(app *bookguide.App, opts replOptions, in io.Reader, out io.Writer) error {
	if app == nil {
		return fmt.Errorf("app is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	if opts.Verbose && opts.Logger != nil {
		opts.Logger.Debugf("[verbose] repl start")
	}

	session := bookguide.NewSession()
	scanner := bufio.NewScanner(in)

	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "exit":
			if len(session.Exchanges) > 0 {
				if err := app.SaveTranscript(session); err != nil {
					_, _ = fmt.Fprintf(out, "Error saving conversation: %v\n", err)
				}
			}
			_, _ = fmt.Fprintln(out, "\nThank you for chatting with BookGuide! Happy reading! 📚")
			return nil
		case "history":
			if len(session.Exchanges) > 0 {
				_, _ = fmt.Fprintf(out, "\nConversation Summary: %s\n\n", bookguide.Summarize(session.Exchanges))
			}
			continue
		case "save":
			if len(session.Exchanges) > 0 {
				if err := app.SaveTranscript(session); err != nil {
					_, _ = fmt.Fprintf(out, "Error saving conversation: %v\n", err)
				} else {
					_, _ = fmt.Fprintln(out, "\nConversation saved!")
				}
			}
			continue
		case "":
			_, _ = fmt.Fprintln(out, "Please ask a book-related question!")
			continue
		}

		updated, reply, err := app.Ask(session, input)
		if err != nil {
			_, _ = fmt.Fprintf(out, "\nBookGuide: I apologize, but I encountered an error: %v. Please try again.\n\n", err)
			continue
		}

		session = updated
		_, _ = fmt.Fprintf(out, "\nBookGuide: %s\n\n", reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "📚 Welcome to BookGuide! I'm here to help with all your book-related questions.")
	_, _ = fmt.Fprintln(out, "Type your question and press Enter. Commands:")
	_, _ = fmt.Fprintln(out, "  history - Show a summary of the conversation")
	_, _ = fmt.Fprintln(out, "  save    - Store the conversation transcript")
	_, _ = fmt.Fprintln(out, "  exit    - Save and end the conversation")
	_, _ = fmt.Fprintln(out)
}
