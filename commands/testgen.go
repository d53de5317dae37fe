/*
Package commands holds helpers shared by the command line tools.
*/
package commands

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// Example will be written out to a file, .json, .bin and .hex
// Filename should have no path and no extension
type Example struct {
	Filename string
	Obj      nftswap.Marshaller
}

// TestGenCmd writes the json and binary encodings of the examples into
// the directory given as the first argument, "testdata" by default. Clients
// in other languages check their codecs against these files.
func TestGenCmd(examples []Example, args []string) error {
	outdir := "testdata"
	if len(args) > 0 {
		outdir = args[0]
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errors.Wrap(err, "cannot create output directory")
	}

	for _, ex := range examples {
		js, err := json.MarshalIndent(ex.Obj, "", "  ")
		if err != nil {
			return errors.Wrapf(err, "json %s", ex.Filename)
		}
		if err := write(outdir, ex.Filename+".json", js); err != nil {
			return err
		}

		bin, err := ex.Obj.Marshal()
		if err != nil {
			return errors.Wrapf(err, "binary %s", ex.Filename)
		}
		if err := write(outdir, ex.Filename+".bin", bin); err != nil {
			return err
		}
		if err := write(outdir, ex.Filename+".hex", []byte(hex.EncodeToString(bin))); err != nil {
			return err
		}
	}
	return nil
}

func write(dir, name string, data []byte) error {
	if err := ioutil.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}
