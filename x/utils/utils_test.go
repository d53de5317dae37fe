package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHandler writes the key and value, then returns err.
type writeHandler struct {
	key, value []byte
	err        error
}

func (h writeHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &nftswap.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &nftswap.DeliverResult{}, nil
}

type panicHandler struct{}

func (panicHandler) Check(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.CheckResult, error) {
	panic("check")
}

func (panicHandler) Deliver(nftswap.Context, nftswap.KVStore, nftswap.Tx) (*nftswap.DeliverResult, error) {
	panic("deliver")
}

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	derr := fmt.Errorf("something went wrong")

	cases := map[string]struct {
		save    Savepoint
		handler writeHandler
		check   bool
		wantErr bool
		written [][]byte
		missing [][]byte
	}{
		"inactive savepoint keeps partial writes": {
			save:    NewSavepoint(),
			handler: writeHandler{nk, nv, derr},
			check:   true,
			wantErr: true,
			written: [][]byte{ok, nk},
		},
		"check savepoint rolls back": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{nk, nv, derr},
			check:   true,
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"deliver savepoint rolls back": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{nk, nv, derr},
			wantErr: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{nk, nv, derr},
			wantErr: true,
			written: [][]byte{ok, nk},
		},
		"success is written": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: writeHandler{nk, nv, nil},
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			require.NoError(t, kv.Set(ok, ov))
			ctx := context.Background()
			tx := &weavetest.Tx{}

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, tx, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, tx, tc.handler)
			}
			assert.Equal(t, tc.wantErr, err != nil)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%X", k)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%X", k)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := NewRecovery()
	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{}

	_, err := r.Check(ctx, db, tx, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = r.Deliver(ctx, db, tx, panicHandler{})
	assert.True(t, errors.ErrPanic.Is(err))

	h := &weavetest.Handler{}
	_, err = r.Deliver(ctx, db, tx, h)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.CallCount())
}

func TestLoggingPassesResults(t *testing.T) {
	l := NewLogging()
	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{}

	h := &weavetest.Handler{
		CheckResult: nftswap.CheckResult{Log: "checked", GasAllocated: 5},
		DeliverErr:  errors.ErrUnauthorized,
	}
	cres, err := l.Check(ctx, db, tx, h)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cres.GasAllocated)

	_, err = l.Deliver(ctx, db, tx, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}
