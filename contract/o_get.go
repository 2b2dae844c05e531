package main

//
// Read surface for wallet/UI polling. An external indexer aggregates
// these per-order reads into a browsable list; the contract itself keeps
// no global order index.
//

// getOrderImpl returns the order as a pipe-separated meta row:
//
//	address|maker|amount|direction|expiration|createdAt|status
//
// A finalized order still answers with its terminal status (maker and
// terms are gone with the reclaimed storage); an address never used
// aborts NotFound.
func getOrderImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	addr := nextField(&in)
	require(in == "", "too many arguments", chain)

	o := readOrder(chain, addr)
	require(o != nil, errNotFound, chain)

	meta := make([]byte, 0, len(addr)+len(o.Maker)+48)
	meta = append(meta, addr...)
	meta = append(meta, '|')
	meta = append(meta, o.Maker...)
	meta = append(meta, '|')
	meta = appendU64(meta, o.Amount)
	meta = append(meta, '|')
	meta = appendU8(meta, uint8(o.Direction))
	meta = append(meta, '|')
	meta = appendU64(meta, o.Expiration)
	meta = append(meta, '|')
	meta = appendU64(meta, o.CreatedAt)
	meta = append(meta, '|')
	meta = appendU8(meta, uint8(o.Status))

	s := string(meta)
	return &s
}
