package common

import (
	gethCommon "github.com/ethereum/go-ethereum/common"
)

// Source is the contract a data source tracks: its address, the ABI it is
// decoded with, and the block indexing starts from.
type Source struct {
	Address    gethCommon.Address `json:"address"`
	ABI        string             `json:"abi"`
	StartBlock uint64             `json:"start_block"`
}

// DynamicDataSource is a data source a deployment registered at runtime.
// CreationBlock is the chain height it was registered at; nil means no lower
// bound was recorded. Context is an opaque serialized blob and is passed
// through uninterpreted.
type DynamicDataSource struct {
	Name          string  `json:"name"`
	Source        Source  `json:"source"`
	Context       *string `json:"context,omitempty"`
	CreationBlock *uint64 `json:"creation_block,omitempty"`
}
