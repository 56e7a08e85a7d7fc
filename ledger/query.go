package ledger

import (
	"fmt"

	"github.com/Luismorlan/land_in_go/model"
	"github.com/Luismorlan/land_in_go/utils"
)

// QueryByLand returns every transfer of landId, mined blocks first in chain order, then the
// pending pool in arrival order.
func (l *Ledger) QueryByLand(landId string) []*model.LandTransaction {
	l.m.RLock()
	defer l.m.RUnlock()
	return l.scan(func(tx *model.LandTransaction) bool {
		return tx.LandId == landId
	}, true)
}

// QueryByUser returns every transfer where userId is buyer or seller, mined and pending.
func (l *Ledger) QueryByUser(userId string) ([]*model.LandTransaction, error) {
	l.m.RLock()
	defer l.m.RUnlock()
	if _, ok := l.users[userId]; !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUserNotFound, userId)
	}
	return l.scan(func(tx *model.LandTransaction) bool {
		return utils.InvolvesUser(tx, userId)
	}, true), nil
}

// ViewLandOwnership lists the mined transfers involving userId. Pending ones are left out.
func (l *Ledger) ViewLandOwnership(userId string) ([]*model.LandTransaction, error) {
	l.m.RLock()
	defer l.m.RUnlock()
	if _, ok := l.users[userId]; !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUserNotFound, userId)
	}
	return l.scan(func(tx *model.LandTransaction) bool {
		return utils.InvolvesUser(tx, userId)
	}, false), nil
}

func (l *Ledger) scan(match func(*model.LandTransaction) bool, withPending bool) []*model.LandTransaction {
	matching := []*model.LandTransaction{}
	for _, block := range l.blockchain.Blocks {
		for _, tx := range block.Txs {
			if match(tx) {
				matching = append(matching, tx)
			}
		}
	}
	if !withPending {
		return matching
	}
	for _, tx := range l.txPool.Txs {
		if match(tx) {
			matching = append(matching, tx)
		}
	}
	return matching
}

// LocateTransaction reports whether tx is still queued or which block includes it.
func (l *Ledger) LocateTransaction(tx *model.LandTransaction) (model.TxStatus, int64) {
	l.m.RLock()
	defer l.m.RUnlock()
	for _, block := range l.blockchain.Blocks {
		for _, included := range block.Txs {
			if included == tx {
				return model.INCLUDED, block.Index
			}
		}
	}
	for _, pending := range l.txPool.Txs {
		if pending == tx {
			return model.QUEUED, -1
		}
	}
	return model.UNKNOWN, -1
}

// OwnerOf returns the current owner of landId, counting pending transfers.
func (l *Ledger) OwnerOf(landId string) (string, bool) {
	l.m.RLock()
	defer l.m.RUnlock()
	owner, ok := l.ownership.Owners[landId]
	return owner, ok
}

// Return a deep copy of the current ownership map.
func (l *Ledger) GetOwnershipSnapshot() (*model.OwnershipMap, error) {
	l.m.RLock()
	defer l.m.RUnlock()
	return utils.CopyOwnership(l.ownership)
}

// Return a deep copy of the ownership implied by mined blocks only.
func (l *Ledger) GetConfirmedOwnershipSnapshot() (*model.OwnershipMap, error) {
	l.m.RLock()
	defer l.m.RUnlock()
	return utils.CopyOwnership(l.confirmed)
}

// GetBlocks returns the chain. Blocks are never mutated, so they are shared.
func (l *Ledger) GetBlocks() []*model.Block {
	l.m.RLock()
	defer l.m.RUnlock()
	blocks := make([]*model.Block, len(l.blockchain.Blocks))
	copy(blocks, l.blockchain.Blocks)
	return blocks
}

func (l *Ledger) GetTail() *model.Block {
	l.m.RLock()
	defer l.m.RUnlock()
	return l.blockchain.Tail()
}

func (l *Ledger) GetHeight() int64 {
	l.m.RLock()
	defer l.m.RUnlock()
	return l.blockchain.Height()
}

func (l *Ledger) GetPendingTransactions() []*model.LandTransaction {
	l.m.RLock()
	defer l.m.RUnlock()
	txs := make([]*model.LandTransaction, len(l.txPool.Txs))
	copy(txs, l.txPool.Txs)
	return txs
}

// VerifyChain checks hashes and linkage of the whole chain.
func (l *Ledger) VerifyChain() error {
	l.m.RLock()
	defer l.m.RUnlock()
	return utils.VerifyChain(l.blockchain)
}
