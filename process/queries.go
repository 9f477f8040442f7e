package process

import (
	"net/url"
	"strconv"
)

const (
	moduleAccount  = "account"
	actionTokenTx  = "tokentx"
	actionTxList   = "txlist"
	sortAscending  = "asc"
	sortDescending = "desc"
	firstPage      = 1
)

// tokenTransfersAtBlock selects the transfers of a token sent by an address inside a single block
func tokenTransfersAtBlock(contract string, sender string, block uint64, pageSize int) url.Values {
	params := url.Values{}
	params.Set("module", moduleAccount)
	params.Set("action", actionTokenTx)
	params.Set("contractaddress", contract)
	params.Set("address", sender)
	params.Set("page", strconv.Itoa(firstPage))
	params.Set("offset", strconv.Itoa(pageSize))
	params.Set("startblock", strconv.FormatUint(block, 10))
	params.Set("endblock", strconv.FormatUint(block, 10))
	params.Set("sort", sortAscending)

	return params
}

// transactionsOfAddress selects the most recent native transactions of an address
func transactionsOfAddress(address string, startBlock, endBlock uint64, pageSize int) url.Values {
	params := url.Values{}
	params.Set("module", moduleAccount)
	params.Set("action", actionTxList)
	params.Set("address", address)
	params.Set("startblock", strconv.FormatUint(startBlock, 10))
	params.Set("endblock", strconv.FormatUint(endBlock, 10))
	params.Set("page", strconv.Itoa(firstPage))
	params.Set("offset", strconv.Itoa(pageSize))
	params.Set("sort", sortDescending)

	return params
}
