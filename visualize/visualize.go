package visualize

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os/exec"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/bradleyjkemp/memviz"
)

// Rendering models. Only the fields worth looking at are kept, and hashes are shortened.
type transfer struct {
	land   string
	buyer  string
	seller string
	price  float64
}

type block struct {
	index     int64
	hash      string
	prevHash  string
	validator string
	txs       []transfer
	next      *block
}

// The hashes are just too long to render, instead we take only first 3 and last 3
// characters and replace the middle part with '...'. E.g. "abcdefghi" will be rendered as "abc...ghi"
func shortenString(s string) string {
	if len(s) < 9 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:3], s[len(s)-3:])
}

func blockToBlock(b *model.Block) *block {
	n := &block{
		index:     b.Index,
		hash:      shortenString(b.Hash),
		prevHash:  shortenString(b.PrevHash),
		validator: b.Validator,
	}
	for _, tx := range b.Txs {
		n.txs = append(n.txs, transfer{land: tx.LandId, buyer: tx.BuyerId, seller: tx.SellerId, price: tx.Price})
	}
	return n
}

// Link the last d+1 blocks of the chain, oldest first. A negative d means the whole chain.
func constructData(blocks []*model.Block, d int) *block {
	start := 0
	if d >= 0 && len(blocks) > d+1 {
		start = len(blocks) - d - 1
	}
	var head, prev *block
	for _, b := range blocks[start:] {
		n := blockToBlock(b)
		if prev == nil {
			head = n
		} else {
			prev.next = n
		}
		prev = n
	}
	return head
}

// BuildGraph writes a graphviz description of the tail of the chain to w.
func BuildGraph(w io.Writer, blocks []*model.Block, d int) {
	chain := constructData(blocks, d)
	memviz.Map(w, &chain)
}

// Entry to this package, where:
// blocks: the chain as held by the ledger.
// d: how many blocks before the tail to include.
// id: unique id of the ledger.
// The graph is written to /tmp and turned into a png with graphviz if it is installed.
func Render(blocks []*model.Block, d int, id string) (string, error) {
	buf := &bytes.Buffer{}
	BuildGraph(buf, blocks, d)

	fileName := "/tmp/chaindata-" + id
	outputName := "/tmp/rendered-chain-" + id + ".png"
	if err := ioutil.WriteFile(fileName, buf.Bytes(), 0644); err != nil {
		return "", err
	}

	cmd := exec.Command("dot", "-Tpng", fileName, "-o", outputName)
	if err := cmd.Run(); err != nil {
		return fileName, err
	}

	opCmd := exec.Command("open", outputName)
	opCmd.Run()
	return outputName, nil
}
