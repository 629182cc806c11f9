package session

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Session statuses.
const (
	StatusPending      = "pending"
	StatusApproved     = "approved"
	StatusRejected     = "rejected"
	StatusDisconnected = "disconnected"
)

// Request statuses.
const (
	RequestStatusPending   = "pending"
	RequestStatusResolved  = "resolved"
	RequestStatusFailed    = "failed"
	RequestStatusAbandoned = "abandoned"
)

// Session request method names the Kontos wallet supports. The strings are
// defined by the protocol and passed through as-is.
const (
	MethodPersonalSign              = "personal_sign"
	MethodWalletAddEthereumChain    = "wallet_addEthereumChain"
	MethodWalletSwitchEthereumChain = "wallet_switchEthereumChain"
	MethodEthSign                   = "eth_sign"
	MethodEthSignTransaction        = "eth_signTransaction"
	MethodEthSignTypedData          = "eth_signTypedData"
	MethodEthSignTypedDataV3        = "eth_signTypedData_v3"
	MethodEthSignTypedDataV4        = "eth_signTypedData_v4"
	MethodEthSendTransaction        = "eth_sendTransaction"
)

var supportedMethods = map[string]struct{}{
	MethodPersonalSign:              {},
	MethodWalletAddEthereumChain:    {},
	MethodWalletSwitchEthereumChain: {},
	MethodEthSign:                   {},
	MethodEthSignTransaction:        {},
	MethodEthSignTypedData:          {},
	MethodEthSignTypedDataV3:        {},
	MethodEthSignTypedDataV4:        {},
	MethodEthSendTransaction:        {},
}

// IsSupportedMethod reports whether the wallet handles the given session
// request method.
func IsSupportedMethod(method string) bool {
	_, ok := supportedMethods[method]
	return ok
}

// SupportedMethods returns the allowlist in a stable order.
func SupportedMethods() []string {
	return []string{
		MethodPersonalSign,
		MethodWalletAddEthereumChain,
		MethodWalletSwitchEthereumChain,
		MethodEthSign,
		MethodEthSignTransaction,
		MethodEthSignTypedData,
		MethodEthSignTypedDataV3,
		MethodEthSignTypedDataV4,
		MethodEthSendTransaction,
	}
}

// Session is an established (or establishing) WalletConnect session with the
// Kontos wallet.
type Session struct {
	ID        string    `boil:"id"`
	Topic     string    `boil:"topic"`
	Status    string    `boil:"status"`
	ChainID   null.Int  `boil:"chain_id"`
	Accounts  null.JSON `boil:"accounts"`
	CreatedAt time.Time `boil:"created_at"`
	UpdatedAt time.Time `boil:"updated_at"`
}

// Request is a session request relayed to the wallet.
type Request struct {
	ID           string      `boil:"id"`
	SessionID    string      `boil:"session_id"`
	Method       string      `boil:"method"`
	Params       null.JSON   `boil:"params"`
	Status       string      `boil:"status"`
	Result       null.JSON   `boil:"result"`
	ErrorMessage null.String `boil:"error_message"`
	UserRejected bool        `boil:"user_rejected"`
	CreatedAt    time.Time   `boil:"created_at"`
	UpdatedAt    time.Time   `boil:"updated_at"`
	ResolvedAt   null.Time   `boil:"resolved_at"`
}

// ConnectTarget is what a DApp frontend needs to hand the flow over to the
// wallet web UI.
type ConnectTarget struct {
	WalletURL   string
	PopupName   string
	PopupWidth  int
	PopupHeight int
	Features    string
}
