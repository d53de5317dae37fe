package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/cmd/swapd/app"
	"github.com/iov-one/nftswap/commands"
	"github.com/iov-one/nftswap/commands/server"
	"github.com/iov-one/nftswap/errors"
)

var (
	flagHome     = "home"
	flagLogLevel = "log_level"
	varHome      *string
	varLogLevel  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".swapd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLogLevel = flag.String(flagLogLevel, "info", "lowest level logged: debug, info, error or none")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("swapd")
	fmt.Println("         Token swap escrow node")
	fmt.Println("")
	fmt.Println("help     Print this message")
	fmt.Println("init     Initialize app options in genesis file")
	fmt.Println("start    Run the abci server")
	fmt.Println("testgen  Write example encodings into a directory")
	fmt.Println("validate Check the app_state of genesis files")
	fmt.Println("version  Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.swapd")
  -log_level string
        lowest level logged: debug, info, error or none (default "info")`)
}

func main() {
	flag.Parse()

	level, err := log.AllowLevel(*varLogLevel)
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		helpMessage()
		os.Exit(1)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stdout)), level).
		With("module", "swapd")

	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "testgen":
		err = commands.TestGenCmd(app.Examples(), rest)
	case "validate":
		err = server.ValidateGenesis(app.Initializers(), rest)
	case "version":
		fmt.Println(nftswap.Version())
	default:
		err = errors.Wrapf(errors.ErrInput, "unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
