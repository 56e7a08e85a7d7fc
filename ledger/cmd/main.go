package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/Luismorlan/land_in_go/commands"
	"github.com/Luismorlan/land_in_go/config"
	"github.com/Luismorlan/land_in_go/layout"
	"github.com/Luismorlan/land_in_go/ledger"
	"github.com/Luismorlan/land_in_go/service"
	"github.com/jroimartin/gocui"
	"google.golang.org/grpc"
)

var (
	port       *string
	configPath *string
	debugMode  *bool
)

func init() {
	port = flag.String("port", "10000", "port to listen to wallets")
	configPath = flag.String("config_path", "ledger/cmd/config.yaml", "path to ledger config")
	debugMode = flag.Bool("debug_mode", false, "Using debug mode will disable fancy GUI.")
}

// Return a gui handle if not in debug mode.
func ListenOnInput(cmd chan commands.Command, debugMode bool) *gocui.Gui {
	if debugMode {
		go ParseCommand(cmd)
		return nil
	}
	g, err := layout.CreateGui(cmd, "ledger/cmd/usage.txt")
	if err != nil {
		log.Fatalln(err)
	}
	go func() {
		if err := g.MainLoop(); err != nil {
			g.Close()
			if err == gocui.ErrQuit {
				os.Exit(0)
			}
			os.Exit(1)
		}
	}()
	return g
}

// Parse command from stdio.
func ParseCommand(cmd chan commands.Command) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		// convert CRLF to LF
		text = strings.Replace(text, "\n", "", -1)
		c, err := commands.CreateCommand(text)
		if err != nil {
			log.Println(err)
			continue
		}
		cmd <- c
	}
}

func HandleCommand(cmd chan commands.Command, server *ledger.LedgerServer, g *gocui.Gui) {
	l := server.GetLedger()
	for {
		c := <-cmd
		switch c.Op {
		case commands.SHOW:
			d, _ := strconv.Atoi(c.Args[0])
			path, err := server.Show(d)
			if err != nil {
				layout.Log(g, "fail to render chain: "+err.Error())
				continue
			}
			layout.Log(g, "chain rendered to "+path)
		case commands.VERIFY:
			if err := l.VerifyChain(); err != nil {
				layout.Log(g, "chain is invalid: "+err.Error())
				continue
			}
			layout.Log(g, fmt.Sprintf("chain of %d blocks is valid", l.GetHeight()))
		case commands.CHAIN:
			tail := l.GetTail()
			layout.Log(g, fmt.Sprintf("height: %d, tail: #%d %s by %s, %d transactions", l.GetHeight(), tail.Index, tail.Hash, tail.Validator, len(tail.Txs)))
		case commands.OWNER:
			owner, ok := l.OwnerOf(c.Args[0])
			if !ok {
				layout.Log(g, c.Args[0]+" has no owner yet")
				continue
			}
			layout.Log(g, c.Args[0]+" is owned by "+owner)
		case commands.PENDING:
			txs := l.GetPendingTransactions()
			layout.Log(g, fmt.Sprintf("%d pending transactions", len(txs)))
			for _, tx := range txs {
				layout.Log(g, fmt.Sprintf("  %s: %s -> %s for %v", tx.LandId, tx.SellerId, tx.BuyerId, tx.Price))
			}
		default:
			layout.Log(g, fmt.Sprintf("Unimplemented command: %d", c.Op))
		}
	}
}

func main() {
	flag.Parse()

	cfg, err := config.ParseAppConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config %s: %v", *configPath, err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%s", *port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	server, err := ledger.NewLedgerServer(cfg)
	if err != nil {
		log.Fatalf("failed to create ledger: %v", err)
	}
	grpcServer := grpc.NewServer()
	service.RegisterLandRegistryServer(grpcServer, server)

	// The admin loop: cmd carries parsed commands from stdin or the GUI to HandleCommand.
	cmd := make(chan commands.Command)
	g := ListenOnInput(cmd, *debugMode)
	if g != nil {
		// Keep ledger logs out of the GUI.
		logPath := "/tmp/ledger-" + server.GetLedger().GetId() + ".log"
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
			layout.Log(g, "logging to "+logPath)
		}
	}
	layout.Log(g, fmt.Sprintf("ledger %s serving at port %s", server.GetLedger().GetId(), *port))
	go HandleCommand(cmd, server, g)

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
