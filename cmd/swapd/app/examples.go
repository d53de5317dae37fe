package app

import (
	"github.com/iov-one/nftswap/coin"
	"github.com/iov-one/nftswap/commands"
	"github.com/iov-one/nftswap/crypto"
	"github.com/iov-one/nftswap/x/cash"
	"github.com/iov-one/nftswap/x/escrow"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/token"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &cash.Set{
		Coins: []*coin.Coin{
			coin.NewCoinp(50000, 0, "IOV"),
			coin.NewCoinp(150, 567000, "RNT"),
		},
	}

	alice := crypto.GenPrivKeyEd25519()
	bob := crypto.GenPrivKeyEd25519().PublicKey().Address()
	user := &sigs.UserData{
		Pubkey:   alice.PublicKey(),
		Sequence: 17,
	}

	amt := coin.NewCoin(250, 0, "IOV")
	send := &cash.SendMsg{
		Source:      alice.PublicKey().Address(),
		Destination: bob,
		Amount:      &amt,
		Memo:        "Test payment",
	}

	offMint := crypto.GenPrivKeyEd25519().PublicKey().Address()
	reqMint := crypto.GenPrivKeyEd25519().PublicKey().Address()
	offSource := crypto.GenPrivKeyEd25519().PublicKey().Address()
	reqSource := crypto.GenPrivKeyEd25519().PublicKey().Address()
	transfer := &token.TransferMsg{
		Source:      offSource,
		Destination: reqSource,
		Amount:      1,
	}

	addrs, err := escrow.Derive(offSource, reqSource)
	if err != nil {
		panic(err)
	}
	initSwap := &escrow.InitMsg{
		OfferingParty:    alice.PublicKey().Address(),
		RequestingParty:  bob,
		OfferingMint:     offMint,
		RequestingMint:   reqMint,
		OfferingSource:   offSource,
		RequestingSource: reqSource,
		Record:           addrs.Record.Address(),
		OfferingEscrow:   addrs.OfferingEscrow.Address(),
		RequestingEscrow: addrs.RequestingEscrow.Address(),
	}
	record := &escrow.Escrow{
		OfferingParty:    initSwap.OfferingParty,
		RequestingParty:  initSwap.RequestingParty,
		OfferingMint:     offMint,
		RequestingMint:   reqMint,
		OfferingSource:   offSource,
		RequestingSource: reqSource,
		OfferingEscrow:   initSwap.OfferingEscrow,
		RequestingEscrow: initSwap.RequestingEscrow,
		OfferingFunded:   true,
		Status:           escrow.StatusOpen,
		RecordBump:       addrs.Record.Bump,
		OfferingBump:     addrs.OfferingEscrow.Bump,
		RequestingBump:   addrs.RequestingEscrow.Bump,
	}

	unsigned := NewTx(initSwap)
	tx := *unsigned
	sig, err := sigs.SignTx(alice, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "user", Obj: user},
		{Filename: "send_msg", Obj: send},
		{Filename: "transfer_msg", Obj: transfer},
		{Filename: "init_swap_msg", Obj: initSwap},
		{Filename: "escrow", Obj: record},
		{Filename: "unsigned_tx", Obj: unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
