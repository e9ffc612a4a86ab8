package siwe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/subvault/subvault-api/internal/adapter"
	"github.com/subvault/subvault-api/internal/logger"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUnsupportedChain = errors.New("unsupported chain")

	// erc1271MagicValue is bytes4(keccak256("isValidSignature(bytes32,bytes)"))
	erc1271MagicValue = []byte{0x16, 0x26, 0xba, 0x7e}

	// erc6492MagicSuffix terminates signatures of counterfactual accounts
	erc6492MagicSuffix = common.FromHex("0x6492649264926492649264926492649264926492649264926492649264926492")
)

const erc1271ABI = `[{"name":"isValidSignature","type":"function","stateMutability":"view",
"inputs":[{"name":"hash","type":"bytes32"},{"name":"signature","type":"bytes"}],
"outputs":[{"name":"magicValue","type":"bytes4"}]}]`

// SignatureVerifier checks that a signature over a SIWE message was produced by the message's address
//
//go:generate mockgen -source=verifier.go -destination=../mocks/siwe.go -package=mocks -mock_names=SignatureVerifier=MockSignatureVerifier
type SignatureVerifier interface {
	// SupportsChain reports whether a verifier is configured for the chain
	SupportsChain(chainID uint64) bool

	// Verify verifies signature over rawMessage for msg.Address on msg.ChainID
	Verify(ctx context.Context, msg *Message, rawMessage string, signature string) error
}

// Endpoint is a JSON-RPC endpoint expected to serve ChainID
type Endpoint struct {
	ChainID uint64
	RPCURL  string
}

type verifier struct {
	clients map[uint64]adapter.EthClient
	abi     abi.ABI
}

// NewVerifier creates a SignatureVerifier over one RPC client per chain
func NewVerifier(clients map[uint64]adapter.EthClient) (SignatureVerifier, error) {
	parsed, err := abi.JSON(strings.NewReader(erc1271ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc1271 abi: %w", err)
	}
	return &verifier{clients: clients, abi: parsed}, nil
}

// Connect dials every endpoint and checks that the node serves the configured chain
func Connect(ctx context.Context, dialer adapter.EthClientDialer, endpoints []Endpoint) (map[uint64]adapter.EthClient, error) {
	clients := make(map[uint64]adapter.EthClient, len(endpoints))
	closeAll := func() {
		for _, c := range clients {
			c.Close()
		}
	}

	for _, ep := range endpoints {
		if ep.RPCURL == "" {
			continue
		}
		if _, dup := clients[ep.ChainID]; dup {
			closeAll()
			return nil, fmt.Errorf("chain %d configured twice", ep.ChainID)
		}

		var client adapter.EthClient
		operation := func() error {
			c, err := dialer.Dial(ctx, ep.RPCURL)
			if err != nil {
				return err
			}
			remote, err := c.ChainID(ctx)
			if err != nil {
				c.Close()
				return err
			}
			if !remote.IsUint64() || remote.Uint64() != ep.ChainID {
				c.Close()
				return backoff.Permanent(fmt.Errorf("rpc endpoint serves chain %s, expected %d", remote, ep.ChainID))
			}
			client = c
			return nil
		}

		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 500 * time.Millisecond
		b.MaxElapsedTime = 30 * time.Second
		notify := func(err error, d time.Duration) {
			logger.WarnCtx(ctx, "RPC dial failed, retrying",
				zap.Uint64("chainID", ep.ChainID),
				zap.Duration("backoff", d),
				zap.Error(err))
		}
		if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to connect to chain %d: %w", ep.ChainID, err)
		}

		clients[ep.ChainID] = client
		logger.InfoCtx(ctx, "Connected to RPC endpoint", zap.Uint64("chainID", ep.ChainID))
	}

	return clients, nil
}

func (v *verifier) SupportsChain(chainID uint64) bool {
	_, ok := v.clients[chainID]
	return ok
}

func (v *verifier) Verify(ctx context.Context, msg *Message, rawMessage string, signature string) error {
	sig, err := hexutil.Decode(ensureHexPrefix(signature))
	if err != nil || len(sig) == 0 {
		return fmt.Errorf("%w: undecodable signature", ErrInvalidSignature)
	}

	hash := accounts.TextHash([]byte(rawMessage))

	wrapped := bytes.HasSuffix(sig, erc6492MagicSuffix)
	if !wrapped && len(sig) == crypto.SignatureLength {
		if recoverAddress(hash, sig) == msg.Address {
			return nil
		}
	}

	client, ok := v.clients[msg.ChainID]
	if !ok {
		return ErrUnsupportedChain
	}

	code, err := client.CodeAt(ctx, msg.Address, nil)
	if err != nil {
		return fmt.Errorf("failed to get account code: %w", err)
	}

	if wrapped {
		envelope, err := unwrapERC6492(sig)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		if len(code) == 0 {
			return v.verifyCounterfactual(ctx, client, msg.Address, hash, envelope)
		}
		sig = envelope.signature
	} else if len(code) == 0 {
		return fmt.Errorf("%w: no contract deployed at address", ErrInvalidSignature)
	}

	return v.verifyERC1271(ctx, client, msg.Address, hash, sig)
}

// verifyCounterfactual checks the signature of an account that is not deployed
// yet: the factory call and isValidSignature run in one simulated block, so the
// account exists by the time it is asked
func (v *verifier) verifyCounterfactual(ctx context.Context, client adapter.EthClient, account common.Address, hash []byte, envelope *erc6492Envelope) error {
	data, err := v.packIsValidSignature(hash, envelope.signature)
	if err != nil {
		return err
	}

	results, err := client.SimulateCalls(ctx, []ethereum.CallMsg{
		{To: &envelope.factory, Data: envelope.factoryCalldata},
		{To: &account, Data: data},
	})
	if err != nil {
		return fmt.Errorf("failed to simulate account deployment: %w", err)
	}
	if len(results) != 2 {
		return fmt.Errorf("simulation returned %d results, expected 2", len(results))
	}
	if !results[0].Succeeded() {
		return fmt.Errorf("%w: account deployment reverted", ErrInvalidSignature)
	}
	if !results[1].Succeeded() {
		return fmt.Errorf("%w: isValidSignature reverted", ErrInvalidSignature)
	}
	if !isMagicValue(results[1].ReturnData) {
		return ErrInvalidSignature
	}
	return nil
}

func (v *verifier) verifyERC1271(ctx context.Context, client adapter.EthClient, account common.Address, hash []byte, sig []byte) error {
	data, err := v.packIsValidSignature(hash, sig)
	if err != nil {
		return err
	}

	result, err := client.CallContract(ctx, ethereum.CallMsg{To: &account, Data: data}, nil)
	if err != nil {
		// a reverting isValidSignature means the signature is not accepted
		return fmt.Errorf("%w: isValidSignature call failed: %v", ErrInvalidSignature, err)
	}
	if !isMagicValue(result) {
		return ErrInvalidSignature
	}
	return nil
}

func (v *verifier) packIsValidSignature(hash []byte, sig []byte) ([]byte, error) {
	var digest [32]byte
	copy(digest[:], hash)

	data, err := v.abi.Pack("isValidSignature", digest, sig)
	if err != nil {
		return nil, fmt.Errorf("failed to pack isValidSignature: %w", err)
	}
	return data, nil
}

func isMagicValue(result []byte) bool {
	return len(result) >= 4 && bytes.Equal(result[:4], erc1271MagicValue)
}

// recoverAddress returns the signer of a 65-byte [R || S || V] signature,
// or the zero address when recovery fails
func recoverAddress(hash []byte, sig []byte) common.Address {
	s := make([]byte, len(sig))
	copy(s, sig)
	if s[crypto.RecoveryIDOffset] >= 27 {
		s[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(hash, s)
	if err != nil {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(*pub)
}

type erc6492Envelope struct {
	factory         common.Address
	factoryCalldata []byte
	signature       []byte
}

// unwrapERC6492 decodes abi.encode(address factory, bytes factoryCalldata, bytes signature)
// followed by the magic suffix
func unwrapERC6492(sig []byte) (*erc6492Envelope, error) {
	addressT, _ := abi.NewType("address", "", nil)
	bytesT, _ := abi.NewType("bytes", "", nil)
	args := abi.Arguments{{Type: addressT}, {Type: bytesT}, {Type: bytesT}}

	values, err := args.Unpack(sig[:len(sig)-len(erc6492MagicSuffix)])
	if err != nil {
		return nil, fmt.Errorf("failed to decode erc6492 envelope: %w", err)
	}

	factory, ok1 := values[0].(common.Address)
	calldata, ok2 := values[1].([]byte)
	inner, ok3 := values[2].([]byte)
	if !ok1 || !ok2 || !ok3 {
		return nil, errors.New("unexpected erc6492 envelope types")
	}
	return &erc6492Envelope{factory: factory, factoryCalldata: calldata, signature: inner}, nil
}

func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}
