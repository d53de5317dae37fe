package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mr-tron/base58"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/x/escrow"
)

//nolint
func main() {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	headerFl := fl.Bool("header", true, "Display header")
	hrpFl := fl.String("hrp", "swap", "Human readable part of the bech32 encoding.")
	fl.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
	%s [options] <offering source> <requesting source>

Print the record and escrow account addresses of the swap between two token
accounts, together with the derived digest each address is computed from.

Those addresses are derived from the source accounts only. They can be
computed before the swap is initialized, which is needed to build the init
message.

`, os.Args[0])
		fl.PrintDefaults()
	}
	fl.Parse(os.Args[1:])

	if fl.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Both source accounts are required.")
		os.Exit(2)
	}

	var sources [2]nftswap.Address
	for i, raw := range fl.Args() {
		addr, err := nftswap.ParseAddress(raw)
		if err == nil {
			err = addr.Validate()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid address %q: %s\n", raw, err)
			os.Exit(2)
		}
		sources[i] = addr
	}

	addrs, err := escrow.Derive(sources[0], sources[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot derive addresses: %s\n", err)
		os.Exit(1)
	}
	if err := printAddresses(os.Stdout, addrs, *hrpFl, *headerFl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printAddresses(out io.Writer, addrs *escrow.Addresses, hrp string, header bool) error {
	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	defer w.Flush()

	if header {
		fmt.Fprintln(w, "name\tbump\thex\tbech32\tbase58\tdigest")
	}
	rows := []struct {
		name    string
		derived escrow.Derived
	}{
		{"record", addrs.Record},
		{"offering_escrow", addrs.OfferingEscrow},
		{"requesting_escrow", addrs.RequestingEscrow},
	}
	for _, r := range rows {
		a := r.derived.Address()
		b32, err := a.Bech32(hrp)
		if err != nil {
			return err
		}
		// The digest is the off curve key the address is a hash of.
		digest := nftswap.DerivedDigest(r.derived.Condition)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n", r.name, r.derived.Bump, a.String(), b32, base58.Encode(a), base58.Encode(digest))
	}
	return nil
}
