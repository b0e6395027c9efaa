package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// Prompter handles interactive confirmation and progress reporting for
// organize runs.
type Prompter struct {
	writer      io.Writer
	reader      *NonBlockingReader
	progressBar *progressbar.ProgressBar
}

// NewPrompter creates a prompter reading from reader and writing to writer.
// Nil arguments default to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Confirm asks a yes/no question and returns the answer. An empty line
// means no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		if _, err := fmt.Fprint(p.writer, FormatPrompt(question+" [y/N]")); err != nil {
			return false, fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := p.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, ErrInputCancelled) {
				return false, ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return false, fmt.Errorf("input terminated")
			}
			return false, err
		}

		switch strings.ToLower(input) {
		case "", "n", "no":
			return false, nil
		case "y", "yes":
			return true, nil
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("Please answer y or n.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}

// StartProgress begins a progress bar over total move operations.
func (p *Prompter) StartProgress(total int) {
	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Moving items...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// AdvanceProgress records one completed move.
func (p *Prompter) AdvanceProgress() {
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Add(1); err != nil {
		slog.Warn("Failed to advance progress bar", "error", err)
	}
}

// FinishProgress completes and clears the progress bar.
func (p *Prompter) FinishProgress() {
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
	p.progressBar = nil
}

// ShowRunSummary prints the outcome box for a finished organize run.
func (p *Prompter) ShowRunSummary(report *model.RunReport) {
	duration := report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)

	var sb strings.Builder
	if report.Project != "" {
		sb.WriteString(fmt.Sprintf("Project: %s\n\n", report.Project))
	}
	sb.WriteString(fmt.Sprintf("  • Items examined: %d\n", report.ItemCount))
	sb.WriteString(fmt.Sprintf("  • Moved: %d\n", report.MovedCount))
	sb.WriteString(fmt.Sprintf("  • Skipped: %d\n", report.SkippedCount))
	for _, fc := range report.MovedItems {
		sb.WriteString(fmt.Sprintf("      %s %s: %d\n", FolderIcon, fc.FolderName, fc.Count))
	}
	if report.DeletedFolders > 0 {
		sb.WriteString(fmt.Sprintf("  • Empty folders removed: %d\n", report.DeletedFolders))
	}
	sb.WriteString(fmt.Sprintf("  • Time taken: %s\n", duration))

	title := "Organize Complete"
	if !report.Success {
		title = "Organize Failed"
		if report.Error != "" {
			sb.WriteString("\n" + FormatError(report.Error) + "\n")
		}
	}

	if _, err := fmt.Fprintln(p.writer, RenderBox(title, sb.String())); err != nil {
		slog.Warn("Failed to write summary box", "error", err)
	}
}
