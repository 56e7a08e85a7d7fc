package model

// LandTransaction moves a land parcel from seller to buyer. It is never mutated after creation.
type LandTransaction struct {
	BuyerId  string
	SellerId string
	LandId   string
	Price    float64
	// Authorization token produced by the challenge-response exchange.
	Signature string
}

type TransactionPool struct {
	// Txs contains all pending transactions that haven't been checked in the blockchain, in
	// arrival order.
	Txs []*LandTransaction
}

// NewTransactionPool creates a new transaction pool with no transaction at all.
func NewTransactionPool() TransactionPool {
	return TransactionPool{
		Txs: []*LandTransaction{},
	}
}

// TxStatus is where a transaction currently lives.
type TxStatus int

const (
	// Not known to the ledger, e.g. dropped with a rejected block.
	UNKNOWN TxStatus = iota
	// Waiting in the pool.
	QUEUED
	// Part of an accepted block.
	INCLUDED
)
