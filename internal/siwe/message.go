// Package siwe parses and verifies EIP-4361 Sign-In with Ethereum messages.
package siwe

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	siwego "github.com/spruceid/siwe-go"
)

var (
	ErrMalformed = errors.New("malformed siwe message")
	ErrOutOfTime = errors.New("siwe message outside its validity window")
	ErrDomain    = errors.New("siwe message domain mismatch")
)

// Message is a parsed EIP-4361 message with the fields the sign-in flow reads
type Message struct {
	Domain  string
	Address common.Address
	ChainID uint64
	Nonce   string

	parsed *siwego.Message
}

// Parse parses the text form of an EIP-4361 message
func Parse(raw string) (*Message, error) {
	parsed, err := siwego.ParseMessage(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	chainID := parsed.GetChainID()
	if chainID <= 0 {
		return nil, fmt.Errorf("%w: invalid chain id %d", ErrMalformed, chainID)
	}

	return &Message{
		Domain:  parsed.GetDomain(),
		Address: parsed.GetAddress(),
		ChainID: uint64(chainID),
		Nonce:   parsed.GetNonce(),
		parsed:  parsed,
	}, nil
}

// Validate checks the expiration time and not-before bounds of the message at
// now and, when expectedDomain is set, that the message was issued for that domain
func (m *Message) Validate(now time.Time, expectedDomain string) error {
	if m.parsed != nil {
		if _, err := m.parsed.ValidAt(now); err != nil {
			return fmt.Errorf("%w: %v", ErrOutOfTime, err)
		}
	}
	if expectedDomain != "" && !strings.EqualFold(stripScheme(m.Domain), stripScheme(expectedDomain)) {
		return ErrDomain
	}
	return nil
}

func stripScheme(domain string) string {
	if _, rest, ok := strings.Cut(domain, "://"); ok {
		return rest
	}
	return domain
}
