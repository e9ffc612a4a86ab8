package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainBaseMainnet     Chain = "eip155:8453"
	ChainBaseSepolia     Chain = "eip155:84532"
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// IsValidChain checks if a chain is supported
func IsValidChain(chain Chain) bool {
	return chain == ChainBaseMainnet ||
		chain == ChainBaseSepolia ||
		chain == ChainEthereumMainnet ||
		chain == ChainEthereumSepolia
}

// ChainFromID builds the CAIP-2 identifier for an EVM chain ID
func ChainFromID(chainID uint64) Chain {
	return Chain(fmt.Sprintf("eip155:%d", chainID))
}

// ID returns the numeric EVM chain ID of an eip155 chain
func (c Chain) ID() (uint64, error) {
	namespace, reference, ok := strings.Cut(string(c), ":")
	if !ok || namespace != "eip155" {
		return 0, fmt.Errorf("not an eip155 chain: %s", c)
	}
	id, err := strconv.ParseUint(reference, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain reference %q: %w", reference, err)
	}
	return id, nil
}

// PaymentStatus is the lifecycle status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusActive    PaymentStatus = "active"
	PaymentStatusPaused    PaymentStatus = "paused"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// paymentTransitions lists the statuses reachable from each status.
// Completed and cancelled payments are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusActive, PaymentStatusPaused, PaymentStatusCompleted, PaymentStatusCancelled},
	PaymentStatusActive:  {PaymentStatusPaused, PaymentStatusCompleted, PaymentStatusCancelled},
	PaymentStatusPaused:  {PaymentStatusActive, PaymentStatusCancelled},
}

// Valid checks if the status belongs to the payment status vocabulary
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusActive, PaymentStatusPaused, PaymentStatusCompleted, PaymentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a payment may move from s to next
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible
func (s PaymentStatus) Terminal() bool {
	return len(paymentTransitions[s]) == 0
}

// ExecutionMode describes how a payment gets executed
type ExecutionMode string

const (
	// ExecutionModeManual payments are executed by an explicit user action
	ExecutionModeManual ExecutionMode = "manual"
	// ExecutionModeAuto is reserved in the data model; nothing executes payments on its own
	ExecutionModeAuto ExecutionMode = "auto"
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRegex  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// IsEthereumAddress checks if a string is a 0x-prefixed, 40 hex character address
func IsEthereumAddress(s string) bool {
	return addressRegex.MatchString(s)
}

// NormalizeAddress lower-cases an address so that lookups are case-insensitive
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsTransactionHash checks if a string is a 0x-prefixed, 64 hex character transaction hash
func IsTransactionHash(s string) bool {
	return txHashRegex.MatchString(s)
}

// USDC token constants
const (
	USDC_DECIMALS = 6
)

// USDCAddress returns the USDC token contract for a chain
func USDCAddress(chain Chain) (string, bool) {
	switch chain {
	case ChainBaseMainnet:
		return "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", true
	case ChainBaseSepolia:
		return "0x036CbD53842c5426634e7929541eC2318f3dCF7e", true
	case ChainEthereumMainnet:
		return "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", true
	case ChainEthereumSepolia:
		return "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238", true
	}
	return "", false
}
