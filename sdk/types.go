package sdk

// Address is a chain account identifier, e.g. "hive:someone".
type Address string

func (a Address) String() string { return string(a) }

// Asset names a liquid token the host can move on our behalf.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

func (a Asset) String() string { return string(a) }

// Intent is a signed permission attached to the transaction,
// e.g. transfer.allow with a token and a limit.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Env carries the call context the host exposes to the contract.
type Env struct {
	Sender struct {
		Address Address
	}
	Caller  Address
	TxId    string
	Intents []Intent
}
