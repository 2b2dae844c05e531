package main

// Exported entrypoints. Each wires the wasm call to its implementation
// with the production SDK; tests call the impls with a fake chain.

//go:wasmexport o_create
func CreateOrder(payload *string) *string {
	return createOrderImpl(payload, RealSDK{})
}

//go:wasmexport o_fill
func FillOrder(payload *string) *string {
	return fillOrderImpl(payload, RealSDK{})
}

//go:wasmexport o_cancel
func CancelOrder(payload *string) *string {
	return cancelOrderImpl(payload, RealSDK{})
}

//go:wasmexport o_reclaim
func ReclaimOrder(payload *string) *string {
	return reclaimOrderImpl(payload, RealSDK{})
}

//go:wasmexport o_get
func GetOrder(payload *string) *string {
	return getOrderImpl(payload, RealSDK{})
}

//go:wasmexport t_deposit
func Deposit(payload *string) *string {
	return depositImpl(payload, RealSDK{})
}

//go:wasmexport t_withdraw
func Withdraw(payload *string) *string {
	return withdrawImpl(payload, RealSDK{})
}

//go:wasmexport t_transfer
func Transfer(payload *string) *string {
	return transferImpl(payload, RealSDK{})
}

//go:wasmexport t_balance
func Balance(payload *string) *string {
	return balanceImpl(payload, RealSDK{})
}

func main() {}
