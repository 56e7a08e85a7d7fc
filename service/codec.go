package service

import (
	"strconv"

	"github.com/Luismorlan/land_in_go/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Struct field names shared by server and client.
const (
	NAME         = "name"
	ID           = "id"
	PASSWORD     = "password"
	BUYER_ID     = "buyer_id"
	SELLER_ID    = "seller_id"
	LAND_ID      = "land_id"
	USER_ID      = "user_id"
	PRICE        = "price"
	SIGNATURE    = "signature"
	BLOCK_INDEX  = "block_index"
	TRANSACTIONS = "transactions"
	BLOCKS       = "blocks"
	INDEX        = "index"
	PREV_HASH    = "prev_hash"
	TIMESTAMP    = "timestamp"
	VALIDATOR    = "validator"
	HASH         = "hash"
	HEADER_HASH  = "header_hash"
)

func NewRegisterUserRequest(name string, id string, password string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		NAME:     name,
		ID:       id,
		PASSWORD: password,
	})
}

func NewSubmitTransferRequest(buyerId string, sellerId string, landId string, price float64, password string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		BUYER_ID:  buyerId,
		SELLER_ID: sellerId,
		LAND_ID:   landId,
		PRICE:     price,
		PASSWORD:  password,
	})
}

func NewQueryByLandRequest(landId string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{LAND_ID: landId})
}

func NewQueryByUserRequest(userId string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{USER_ID: userId})
}

// RequiredString reads a string field, failing with InvalidArgument if it is missing or not a
// string.
func RequiredString(s *structpb.Struct, key string) (string, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "missing field %s", key)
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "field %s is not a string", key)
	}
	return str.StringValue, nil
}

// RequiredNumber reads a number field, failing with InvalidArgument if it is missing or not a
// number.
func RequiredNumber(s *structpb.Struct, key string) (float64, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "missing field %s", key)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "field %s is not a number", key)
	}
	return n.NumberValue, nil
}

func transactionToMap(tx *model.LandTransaction) map[string]interface{} {
	return map[string]interface{}{
		BUYER_ID:  tx.BuyerId,
		SELLER_ID: tx.SellerId,
		LAND_ID:   tx.LandId,
		PRICE:     tx.Price,
		SIGNATURE: tx.Signature,
	}
}

func transactionsToList(txs []*model.LandTransaction) []interface{} {
	list := make([]interface{}, 0, len(txs))
	for _, tx := range txs {
		list = append(list, transactionToMap(tx))
	}
	return list
}

func transactionFromStruct(s *structpb.Struct) *model.LandTransaction {
	f := s.GetFields()
	return &model.LandTransaction{
		BuyerId:   f[BUYER_ID].GetStringValue(),
		SellerId:  f[SELLER_ID].GetStringValue(),
		LandId:    f[LAND_ID].GetStringValue(),
		Price:     f[PRICE].GetNumberValue(),
		Signature: f[SIGNATURE].GetStringValue(),
	}
}

func transactionsFromList(l *structpb.ListValue) []*model.LandTransaction {
	txs := []*model.LandTransaction{}
	for _, v := range l.GetValues() {
		txs = append(txs, transactionFromStruct(v.GetStructValue()))
	}
	return txs
}

// TransactionsToStruct encodes txs as {"transactions": [...]}.
func TransactionsToStruct(txs []*model.LandTransaction) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		TRANSACTIONS: transactionsToList(txs),
	})
}

func TransactionsFromStruct(s *structpb.Struct) []*model.LandTransaction {
	return transactionsFromList(s.GetFields()[TRANSACTIONS].GetListValue())
}

// Timestamps are nanoseconds and would lose precision as a json number, they travel as strings.
func blockToMap(b *model.Block) map[string]interface{} {
	return map[string]interface{}{
		INDEX:        b.Index,
		PREV_HASH:    b.PrevHash,
		TIMESTAMP:    strconv.FormatInt(b.Timestamp, 10),
		VALIDATOR:    b.Validator,
		HASH:         b.Hash,
		HEADER_HASH:  b.HeaderHash,
		TRANSACTIONS: transactionsToList(b.Txs),
	}
}

func blockFromStruct(s *structpb.Struct) (*model.Block, error) {
	f := s.GetFields()
	ts, err := strconv.ParseInt(f[TIMESTAMP].GetStringValue(), 10, 64)
	if err != nil {
		return nil, err
	}
	return &model.Block{
		Index:      int64(f[INDEX].GetNumberValue()),
		PrevHash:   f[PREV_HASH].GetStringValue(),
		Timestamp:  ts,
		Validator:  f[VALIDATOR].GetStringValue(),
		Txs:        transactionsFromList(f[TRANSACTIONS].GetListValue()),
		Hash:       f[HASH].GetStringValue(),
		HeaderHash: f[HEADER_HASH].GetStringValue(),
	}, nil
}

// BlocksToStruct encodes a chain as {"blocks": [...]}.
func BlocksToStruct(blocks []*model.Block) (*structpb.Struct, error) {
	list := make([]interface{}, 0, len(blocks))
	for _, b := range blocks {
		list = append(list, blockToMap(b))
	}
	return structpb.NewStruct(map[string]interface{}{BLOCKS: list})
}

func BlocksFromStruct(s *structpb.Struct) ([]*model.Block, error) {
	blocks := []*model.Block{}
	for _, v := range s.GetFields()[BLOCKS].GetListValue().GetValues() {
		b, err := blockFromStruct(v.GetStructValue())
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
