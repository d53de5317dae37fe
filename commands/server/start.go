package server

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/nftswap/errors"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"

	defaultBind = "tcp://localhost:46658"
)

type startArgs struct {
	bind  string
	debug bool
}

func parseStartArgs(args []string) (startArgs, error) {
	var res startArgs
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&res.bind, flagBind, defaultBind, "address server listens on")
	startFlags.BoolVar(&res.debug, flagDebug, false, "call stack returned on error")
	if err := startFlags.Parse(args); err != nil {
		return res, errors.Wrap(errors.ErrInput, err.Error())
	}
	return res, nil
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd builds the application in the home directory and serves it over
// the abci socket until the process receives an interrupt.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	flags, err := parseStartArgs(args)
	if err != nil {
		return err
	}

	app, err := gen(home, logger, flags.debug)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", flags.bind)

	svr, err := server.NewServer(flags.bind, "socket", app)
	if err != nil {
		return errors.Wrap(err, "cannot create listener")
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrap(err, "cannot start server")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	logger.Info("Shutting down", "signal", s.String())
	return svr.Stop()
}
