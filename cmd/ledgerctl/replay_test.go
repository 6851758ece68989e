package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports/mocks"
	"wexel-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReadEvents_Array(t *testing.T) {
	in := `  [
	  {"kind":"deposit_confirmed","wexel_id":1,"tx_hash":"a","payload":{"pool_id":1},"observed_at":"2025-01-01T00:00:00Z"},
	  {"kind":"redeemed","wexel_id":1,"tx_hash":"b","payload":{},"observed_at":"2026-01-01T00:00:00Z"}
	]`

	events, err := readEvents(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventDepositConfirmed, events[0].Kind)
	assert.JSONEq(t, `{"pool_id":1}`, string(events[0].Payload))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), events[1].ObservedAt)
}

func TestReadEvents_Lines(t *testing.T) {
	in := `{"kind":"claim_requested","wexel_id":2,"tx_hash":"x","payload":{}}
{"kind":"claim_requested","wexel_id":2,"tx_hash":"y","payload":{}}
`
	events, err := readEvents(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "y", events[1].TxHash)
}

func TestReadEvents_Empty(t *testing.T) {
	events, err := readEvents(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReadEvents_Malformed(t *testing.T) {
	_, err := readEvents(strings.NewReader(`{"kind":`))
	assert.Error(t, err)
}

func TestReplay_CountsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockReconciler(ctrl)
	events := []domain.LedgerEvent{{TxHash: "a"}, {TxHash: "b"}, {TxHash: "c"}}

	gomock.InOrder(
		r.EXPECT().Apply(gomock.Any(), events[0]).Return(domain.Outcome{}, nil),
		r.EXPECT().Apply(gomock.Any(), events[1]).Return(domain.Outcome{Duplicate: true}, nil),
		r.EXPECT().Apply(gomock.Any(), events[2]).Return(domain.Outcome{}, apperror.ErrNothingToClaim()),
	)

	res, err := replay(context.Background(), r, events, false, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "CLM_001", res.Errors[0].Code)
	assert.Equal(t, 2, res.Errors[0].Index)
}

func TestReplay_StopOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockReconciler(ctrl)
	events := []domain.LedgerEvent{{TxHash: "a"}, {TxHash: "b"}}

	r.EXPECT().Apply(gomock.Any(), events[0]).Return(domain.Outcome{}, apperror.ErrWexelNotFound())

	res, err := replay(context.Background(), r, events, true, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Zero(t, res.Applied)
}

func TestReplay_InternalErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockReconciler(ctrl)
	events := []domain.LedgerEvent{{TxHash: "a"}, {TxHash: "b"}}

	r.EXPECT().Apply(gomock.Any(), events[0]).Return(domain.Outcome{}, apperror.ErrDatabaseError(errors.New("conn reset")))

	_, err := replay(context.Background(), r, events, false, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conn reset")
}
