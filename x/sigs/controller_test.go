package sigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
)

func TestSignBytes(t *testing.T) {
	bz := []byte("foobar")
	tx := NewStdTx(bz)

	chainID := "test-sign-bytes"
	c1, err := BuildSignBytesTx(tx, chainID, 17)
	require.NoError(t, err)
	c1a, err := BuildSignBytes(bz, chainID, 17)
	require.NoError(t, err)
	assert.Equal(t, c1, c1a)
	assert.NotEqual(t, bz, c1)

	// sign bytes change on tx, chain_id and seq
	ct, err := BuildSignBytes([]byte("blast"), chainID, 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, ct)
	c2, err := BuildSignBytes(bz, chainID+"2", 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
	c3, err := BuildSignBytes(bz, chainID, 18)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c3)

	_, err = BuildSignBytes(bz, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(bz, "no", 1)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	kv := store.MemStore()
	priv := crypto.GenPrivKeyEd25519()
	perm := priv.PublicKey().Condition()

	chainID := "emo-music-2345"
	bz := []byte("my special valentine")
	tx := NewStdTx(bz)

	sig0, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)
	sig13, err := SignTx(priv, tx, chainID, 13)
	require.NoError(t, err)

	// signing is deterministic
	sig1a, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)
	assert.Equal(t, sig1, sig1a)

	// nonce must start at zero
	_, err = VerifySignature(kv, sig1, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	_, err = VerifySignature(kv, new(StdSignature), bz, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// wrong chain
	_, err = VerifySignature(kv, sig0, bz, "other-chain")
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// wrong payload
	_, err = VerifySignature(kv, sig0, []byte("foobar"), chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	signer, err := VerifySignature(kv, sig0, bz, chainID)
	require.NoError(t, err)
	assert.Equal(t, perm, signer)

	nonce, err := NextNonce(kv, perm.Address())
	require.NoError(t, err)
	assert.Equal(t, int64(1), nonce)

	// replay fails, next one passes, gaps are not allowed
	_, err = VerifySignature(kv, sig0, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = VerifySignature(kv, sig13, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = VerifySignature(kv, sig1, bz, chainID)
	require.NoError(t, err)

	nonce, err = NextNonce(kv, perm.Address())
	require.NoError(t, err)
	assert.Equal(t, int64(2), nonce)
}

func TestNextNonceUnknownSigner(t *testing.T) {
	priv := crypto.GenPrivKeyEd25519()
	nonce, err := NextNonce(store.MemStore(), priv.PublicKey().Address())
	require.NoError(t, err)
	assert.Equal(t, int64(0), nonce)
}

func TestUserDataRoundTrip(t *testing.T) {
	kv := store.MemStore()
	pub := crypto.GenPrivKeyEd25519().PublicKey()
	b := NewBucket()

	user, err := b.GetOrCreate(kv, pub)
	require.NoError(t, err)
	require.NoError(t, user.CheckAndIncrementSequence(0))
	require.NoError(t, b.Save(kv, user))

	loaded, err := b.GetOrCreate(kv, pub)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Sequence)
	assert.Equal(t, pub.Ed25519, loaded.Pubkey.Ed25519)
}
