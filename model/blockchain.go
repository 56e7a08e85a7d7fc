package model

type Block struct {
	// Position of this block in the chain. Genesis is 0.
	Index int64
	// Hash of the previous block in the hex format. "0" for genesis.
	PrevHash string
	// Unix time in nanoseconds when the block was built.
	Timestamp int64
	// Name of the validator picked by the stake lottery.
	Validator string
	// Transactions for this block, in pool order.
	Txs []*LandTransaction
	// Identity of this block: the merkle root of Txs in hex.
	Hash string
	// Digest over the header fields and the raw fields of every transaction.
	HeaderHash string
}

// Blockchain is an append-only list of blocks, Blocks[0] is always genesis.
type Blockchain struct {
	Blocks []*Block
}

// Tail returns the most recent block.
func (bc *Blockchain) Tail() *Block {
	return bc.Blocks[len(bc.Blocks)-1]
}

// Height is the number of blocks including genesis.
func (bc *Blockchain) Height() int64 {
	return int64(len(bc.Blocks))
}
