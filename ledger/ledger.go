package ledger

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Luismorlan/land_in_go/config"
	"github.com/Luismorlan/land_in_go/model"
	"github.com/Luismorlan/land_in_go/utils"
	uuid "github.com/satori/go.uuid"
)

// A Ledger maintains the land registry: the blockchain, the pending pool, the ownership map and
// the registered users.
type Ledger struct {
	// The blockchain it needs to maintain.
	blockchain *model.Blockchain
	// Transaction pool it need to maintain. Authorized transfers are added to this pool.
	txPool *model.TransactionPool
	// Ownership including pending transfers. Updated as soon as a transfer is authorized.
	ownership *model.OwnershipMap
	// Ownership implied by accepted blocks only. Restored into ownership when a block is rejected.
	confirmed *model.OwnershipMap
	// Registered users by id.
	users map[string]*model.User
	// Validators taking part in the stake lottery.
	validators *model.ValidatorRegistry
	authorizer *utils.Authorizer
	rnd        utils.RandomSource
	now        func() time.Time
	// Ledger config.
	config config.AppConfig
	// A single mutex for changing internal state.
	m sync.RWMutex
	// A unique identifier of this ledger, used in logs and rendered files.
	uuid string
}

type Option func(*Ledger)

// WithRandomSource replaces the crypto backed randomness, e.g. with a seeded source in tests.
func WithRandomSource(rnd utils.RandomSource) Option {
	return func(l *Ledger) {
		l.rnd = rnd
	}
}

// WithClock replaces time.Now for block timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Create a brand new ledger, which contains a genesis block in the chain.
func NewLedger(c config.AppConfig, opts ...Option) (*Ledger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var validators []model.Validator
	for _, v := range c.VALIDATORS {
		validators = append(validators, model.Validator{Name: v.NAME, Stake: v.STAKE})
	}
	registry, err := utils.NewValidatorRegistry(validators)
	if err != nil {
		return nil, err
	}

	ownership := model.NewOwnershipMap()
	confirmed := model.NewOwnershipMap()
	txPool := model.NewTransactionPool()
	l := &Ledger{
		txPool:     &txPool,
		ownership:  &ownership,
		confirmed:  &confirmed,
		users:      make(map[string]*model.User),
		validators: registry,
		rnd:        utils.NewCryptoRandom(),
		now:        time.Now,
		config:     c,
		uuid:       uuid.NewV4().String(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.authorizer = utils.NewAuthorizer(l.rnd, c.CHALLENGE_LENGTH)
	l.blockchain = &model.Blockchain{
		Blocks: []*model.Block{utils.CreateGenesisBlock(c.GENESIS_VALIDATOR, l.now().UnixNano())},
	}
	return l, nil
}

func (l *Ledger) GetId() string {
	return l.uuid
}

func (l *Ledger) GetConfig() config.AppConfig {
	return l.config
}

// RegisterUser adds a user. Ids are unique.
func (l *Ledger) RegisterUser(name string, id string, password string) error {
	l.m.Lock()
	defer l.m.Unlock()

	if _, exist := l.users[id]; exist {
		return fmt.Errorf("%w: %s", model.ErrDuplicateUserId, id)
	}
	l.users[id] = &model.User{Name: name, Id: id, Password: password}
	log.Printf("[%s] user %s registered", l.uuid, id)
	return nil
}

// AuthorizeAndQueueTransfer authorizes a transfer of landId from seller to buyer:
// 1. Buyer and seller are registered.
// 2. Nobody owns the land yet, or the seller does.
// 3. The seller password passes the challenge-response exchange.
// On success the transaction joins the pool and the buyer owns the land right away, before any
// block includes it. The price is recorded as given and plays no part in authorization, callers
// validate it.
func (l *Ledger) AuthorizeAndQueueTransfer(buyerId string, sellerId string, landId string, price float64, sellerPassword string) (*model.LandTransaction, error) {
	l.m.Lock()
	defer l.m.Unlock()
	return l.queueTransfer(buyerId, sellerId, landId, price, sellerPassword)
}

func (l *Ledger) queueTransfer(buyerId string, sellerId string, landId string, price float64, sellerPassword string) (*model.LandTransaction, error) {
	if _, ok := l.users[buyerId]; !ok {
		return nil, fmt.Errorf("%w: buyer %s", model.ErrUserNotFound, buyerId)
	}
	seller, ok := l.users[sellerId]
	if !ok {
		return nil, fmt.Errorf("%w: seller %s", model.ErrUserNotFound, sellerId)
	}
	if !utils.CanTransfer(l.ownership, landId, sellerId) {
		return nil, fmt.Errorf("%w: %s does not own %s", model.ErrOwnershipViolation, sellerId, landId)
	}

	token, err := l.authorizer.Authorize(sellerPassword, seller.Password)
	if err != nil {
		return nil, err
	}

	tx := &model.LandTransaction{
		BuyerId:   buyerId,
		SellerId:  sellerId,
		LandId:    landId,
		Price:     price,
		Signature: token,
	}
	l.txPool.Txs = append(l.txPool.Txs, tx)
	utils.ApplyTransaction(tx, l.ownership)
	return tx, nil
}

// Create a new block with all transactions in the pool, on top of the current tail. Neither
// the chain nor the pool is changed.
func (l *Ledger) CreateBlock() (*model.Block, error) {
	// Write lock, the random source is not safe for concurrent draws.
	l.m.Lock()
	defer l.m.Unlock()
	return l.createBlock()
}

func (l *Ledger) createBlock() (*model.Block, error) {
	validator, err := utils.SelectValidator(l.validators, l.rnd)
	if err != nil {
		return nil, err
	}
	return utils.CreateNewBlock(l.txPool.Txs, l.blockchain.Tail(), validator, l.now().UnixNano()), nil
}

// Handle a candidate block.
// This function should:
// 1. Validate the block.
//   a. It extends the current tail.
//   b. Its header digest matches.
//   c. Its merkle root matches its hash.
//   d. Its transactions are the oldest pending ones, in pool order.
// 2. Add to blockchain and drop its transactions from the pool.
// A rejected candidate takes the whole pool with it and ownership falls back to what the chain
// says.
func (l *Ledger) MineBlock(candidate *model.Block) error {
	l.m.Lock()
	defer l.m.Unlock()
	return l.mineBlock(candidate)
}

func (l *Ledger) mineBlock(candidate *model.Block) error {
	if candidate == nil {
		return fmt.Errorf("%w: nil block", model.ErrInvalidHeader)
	}
	if err := utils.IsValidSuccessor(candidate, l.blockchain.Tail()); err != nil {
		l.rejectBlock(candidate, err)
		return err
	}
	if !utils.VerifyBlock(candidate) {
		err := fmt.Errorf("%w: block %d", model.ErrMerkleVerificationFailed, candidate.Index)
		l.rejectBlock(candidate, err)
		return err
	}
	if err := l.checkPending(candidate.Txs); err != nil {
		l.rejectBlock(candidate, err)
		return err
	}

	l.blockchain.Blocks = append(l.blockchain.Blocks, candidate)
	l.removeFromPool(candidate.Txs)
	utils.ApplyTransactions(candidate.Txs, l.confirmed)
	log.Printf("[%s] block %d mined by %s with %d transactions", l.uuid, candidate.Index, candidate.Validator, len(candidate.Txs))
	return nil
}

func (l *Ledger) rejectBlock(candidate *model.Block, reason error) {
	log.Printf("[%s] block %d rejected, dropping %d pending transactions: %v", l.uuid, candidate.Index, len(l.txPool.Txs), reason)
	pool := model.NewTransactionPool()
	l.txPool = &pool
	ownership, err := utils.CopyOwnership(l.confirmed)
	if err != nil {
		// Fall back to replaying the chain.
		o := model.NewOwnershipMap()
		for _, b := range l.blockchain.Blocks {
			utils.ApplyTransactions(b.Txs, &o)
		}
		ownership = &o
	}
	l.ownership = ownership
}

// A candidate carries the oldest pending transactions in pool order: a prefix of the pool, with
// no reordering, gaps or repeats. Ownership was applied to the pool in that order, so any other
// sequence would let the chain disagree with it.
func (l *Ledger) checkPending(txs []*model.LandTransaction) error {
	if len(txs) > len(l.txPool.Txs) {
		return fmt.Errorf("%w: block carries %d transactions, %d pending", model.ErrMerkleVerificationFailed, len(txs), len(l.txPool.Txs))
	}
	for i, tx := range txs {
		if tx != l.txPool.Txs[i] {
			return fmt.Errorf("%w: transaction %d is not the pending transaction at that position", model.ErrMerkleVerificationFailed, i)
		}
	}
	return nil
}

// Drop the mined prefix from the pool.
func (l *Ledger) removeFromPool(txs []*model.LandTransaction) {
	remaining := make([]*model.LandTransaction, len(l.txPool.Txs)-len(txs))
	copy(remaining, l.txPool.Txs[len(txs):])
	l.txPool.Txs = remaining
}

// SubmitTransfer queues a transfer and, once the pool reaches the configured threshold, creates
// and mines a block. The returned block is nil if no block was mined. The whole sequence runs
// under one lock.
func (l *Ledger) SubmitTransfer(buyerId string, sellerId string, landId string, price float64, sellerPassword string) (*model.LandTransaction, *model.Block, error) {
	l.m.Lock()
	defer l.m.Unlock()

	tx, err := l.queueTransfer(buyerId, sellerId, landId, price, sellerPassword)
	if err != nil {
		return nil, nil, err
	}
	if len(l.txPool.Txs) < l.config.BLOCK_THRESHOLD {
		return tx, nil, nil
	}

	log.Printf("[%s] %d transactions reached, creating and mining a block", l.uuid, len(l.txPool.Txs))
	block, err := l.createBlock()
	if err != nil {
		return tx, nil, err
	}
	if err := l.mineBlock(block); err != nil {
		return tx, nil, err
	}
	return tx, block, nil
}
