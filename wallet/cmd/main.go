package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Luismorlan/land_in_go/commands"
	"github.com/Luismorlan/land_in_go/layout"
	"github.com/Luismorlan/land_in_go/model"
	"github.com/Luismorlan/land_in_go/wallet"
	"github.com/jroimartin/gocui"
)

var (
	ledgerAddr *string
	ledgerPort *string
	debugMode  *bool
)

func init() {
	ledgerAddr = flag.String("ledger_addr", "", "ip address of the ledger to connect at startup")
	ledgerPort = flag.String("ledger_port", "10000", "port of the ledger to connect at startup")
	debugMode = flag.Bool("debug_mode", false, "Using debug mode will disable fancy GUI.")
}

// Return a gui handle if not in debug mode.
func ListenOnInput(cmd chan commands.ClientCommand, debugMode bool) *gocui.Gui {
	// Choose a fancy GUI
	if debugMode {
		go ParseCommand(cmd)
		return nil
	}
	g, err := layout.CreateGui(cmd, "wallet/cmd/usage.txt")
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

func main() {
	flag.Parse()

	cmd := make(chan commands.ClientCommand)
	// Start listening on input.
	g := ListenOnInput(cmd, *debugMode)
	w := wallet.NewWallet(g)
	if *ledgerAddr != "" {
		connect(w, *ledgerAddr, *ledgerPort)
	}

	HandleCommand(cmd, w)
}

// Parse command from stdio.
func ParseCommand(cmd chan commands.ClientCommand) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		// convert CRLF to LF
		text = strings.Replace(text, "\n", "", -1)
		c, err := commands.CreateClientCommand(text)
		if err != nil {
			log.Println(err)
			continue
		}
		cmd <- c
	}
}

func connect(w *wallet.Wallet, ipAddr string, port string) {
	if err := w.SetLedgerConnection(ipAddr, port); err != nil {
		w.Log("failed to connect to ledger endpoint " + ipAddr + ":" + port)
		return
	}
	w.Log("connected ledger endpoint " + ipAddr + ":" + port)
}

func logTransactions(w *wallet.Wallet, txs []*model.LandTransaction) {
	if len(txs) == 0 {
		w.Log("no transactions found")
		return
	}
	for _, tx := range txs {
		w.Log(fmt.Sprintf("%s: %s -> %s for %v, signature %s", tx.LandId, tx.SellerId, tx.BuyerId, tx.Price, tx.Signature))
	}
}

func HandleCommand(cmd chan commands.ClientCommand, w *wallet.Wallet) {
	for {
		c := <-cmd
		switch c.Op {
		case commands.CONNECT:
			connect(w, c.Args[0], c.Args[1])
		case commands.ADD_USER:
			if err := w.AddUser(c.Args[0], c.Args[1], c.Args[2]); err != nil {
				w.Log("fail to add user: " + err.Error())
				continue
			}
			w.Log("user " + c.Args[1] + " registered")
		case commands.BUY:
			price, _ := strconv.ParseFloat(c.Args[3], 64)
			receipt, err := w.BuyLand(c.Args[0], c.Args[1], c.Args[2], price, c.Args[4])
			if err != nil {
				w.Log("fail to buy land: " + err.Error())
				continue
			}
			w.Log(fmt.Sprintf("%s now owns %s, signature %s", c.Args[0], c.Args[2], receipt.Signature))
			if receipt.BlockIndex >= 0 {
				w.Log(fmt.Sprintf("block %d mined", receipt.BlockIndex))
			}
		case commands.LAND:
			txs, err := w.TransactionsByLand(c.Args[0])
			if err != nil {
				w.Log("fail to query land: " + err.Error())
				continue
			}
			logTransactions(w, txs)
		case commands.USER:
			txs, err := w.TransactionsByUser(c.Args[0])
			if err != nil {
				w.Log("fail to query user: " + err.Error())
				continue
			}
			logTransactions(w, txs)
		default:
			w.Log(fmt.Sprintf("Unimplemented command: %d", c.Op))
		}
	}
}
