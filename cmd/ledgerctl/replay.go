package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// replayResult summarises a replay run.
type replayResult struct {
	Applied    int            `json:"applied"`
	Duplicates int            `json:"duplicates"`
	Failed     int            `json:"failed"`
	Errors     []replayFailed `json:"errors,omitempty"`
}

type replayFailed struct {
	Index  int    `json:"index"`
	TxHash string `json:"tx_hash"`
	Code   string `json:"error_code,omitempty"`
	Error  string `json:"error"`
}

// readEvents accepts either a JSON array of events or one event object per
// line.
func readEvents(r io.Reader) ([]domain.LedgerEvent, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var events []domain.LedgerEvent
		if err := dec.Decode(&events); err != nil {
			return nil, fmt.Errorf("decode events: %w", err)
		}
		return events, nil
	}

	var events []domain.LedgerEvent
	for {
		var ev domain.LedgerEvent
		err := dec.Decode(&ev)
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode event %d: %w", len(events), err)
		}
		events = append(events, ev)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

// replay applies events in order. Rejected events are recorded and skipped
// unless stopOnError is set; infrastructure errors always abort.
func replay(ctx context.Context, r ports.Reconciler, events []domain.LedgerEvent, stopOnError bool, log zerolog.Logger) (replayResult, error) {
	var res replayResult
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out, err := r.Apply(ctx, ev)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindInternal {
				return res, fmt.Errorf("event %d (%s): %w", i, ev.TxHash, err)
			}
			res.Failed++
			res.Errors = append(res.Errors, replayFailed{
				Index:  i,
				TxHash: ev.TxHash,
				Code:   apperror.CodeOf(err),
				Error:  err.Error(),
			})
			log.Warn().Err(err).Int("index", i).Str("tx_hash", ev.TxHash).Msg("event rejected")
			if stopOnError {
				return res, nil
			}
			continue
		}
		if out.Duplicate {
			res.Duplicates++
		} else {
			res.Applied++
		}
	}
	log.Info().
		Int("applied", res.Applied).
		Int("duplicates", res.Duplicates).
		Int("failed", res.Failed).
		Msg("replay complete")
	return res, nil
}
