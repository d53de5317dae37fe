package gconf

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/store"
	"github.com/iov-one/nftswap/weavetest/assert"
)

type limit struct {
	Max int `json:"max"`
}

func (l *limit) Marshal() ([]byte, error) { return []byte(strconv.Itoa(l.Max)), nil }

func (l *limit) Unmarshal(raw []byte) (err error) {
	l.Max, err = strconv.Atoi(string(raw))
	return err
}

func (l *limit) Validate() error {
	if l.Max <= 0 {
		return errors.Wrap(errors.ErrAmount, "max must be positive")
	}
	return nil
}

func TestSaveAndLoad(t *testing.T) {
	db := store.MemStore()

	var got limit
	assert.IsErr(t, errors.ErrNotFound, Load(db, "limit", &got))

	assert.IsErr(t, errors.ErrAmount, Save(db, "limit", &limit{Max: 0}))
	assert.Nil(t, Save(db, "limit", &limit{Max: 3}))
	assert.Nil(t, Load(db, "limit", &got))
	assert.Equal(t, 3, got.Max)
}

func TestInitConfig(t *testing.T) {
	genesis := `{"conf": {"limit": {"max": 12}}}`
	var opts nftswap.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, InitConfig(db, opts, "limit", &limit{}))

	var got limit
	assert.Nil(t, Load(db, "limit", &got))
	assert.Equal(t, 12, got.Max)

	err := InitConfig(db, opts, "other", &limit{})
	assert.IsErr(t, errors.ErrNotFound, err)
}
