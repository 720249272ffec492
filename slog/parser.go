package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingParser implements htmlcheck.Parser.
var _ htmlcheck.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging. Documents it returns log every
// selector query.
type LoggingParser struct {
	next   htmlcheck.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next htmlcheck.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the input size and duration.
func (p *LoggingParser) Parse(html string) (doc htmlcheck.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	doc, err = p.next.Parse(html)
	if err != nil {
		return nil, err
	}
	return &loggingDocument{next: doc, logger: p.logger}, nil
}

type loggingDocument struct {
	next   htmlcheck.Document
	logger *slog.Logger
}

func (d *loggingDocument) Count(sel htmlcheck.Selector) (n int, err error) {
	defer func() {
		d.logger.Info("count",
			"selector", string(sel),
			"matches", n,
			"err", err,
		)
	}()
	return d.next.Count(sel)
}
