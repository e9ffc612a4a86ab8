package adapter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
)

// SimulatedCall is the outcome of one call of a simulated block
type SimulatedCall struct {
	ReturnData hexutil.Bytes  `json:"returnData"`
	Status     hexutil.Uint64 `json:"status"`
	Error      *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Succeeded reports whether the call ran without reverting
func (c SimulatedCall) Succeeded() bool {
	return c.Status == 1 && c.Error == nil
}

// EthClient is the subset of the JSON-RPC client used for smart-account signature checks
//
//go:generate mockgen -source=ethclient.go -destination=../mocks/ethclient.go -package=mocks -mock_names=EthClient=MockEthClient
type EthClient interface {
	// CallContract executes a read-only contract call
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	// CodeAt returns the deployed bytecode at an account, empty when nothing is deployed
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)

	// SimulateCalls runs calls in order within one simulated block on top of the
	// latest state, so later calls observe the effects of earlier ones
	SimulateCalls(ctx context.Context, calls []ethereum.CallMsg) ([]SimulatedCall, error)

	// ChainID returns the chain ID reported by the node
	ChainID(ctx context.Context) (*big.Int, error)

	// Close closes the connection
	Close()
}

// EthClientDialer opens EthClient connections
type EthClientDialer interface {
	Dial(ctx context.Context, rawurl string) (EthClient, error)
}

// RealEthClientDialer implements EthClientDialer using the go-ethereum ethclient package
type RealEthClientDialer struct{}

// NewEthClientDialer creates a new real Ethereum client dialer
func NewEthClientDialer() EthClientDialer {
	return &RealEthClientDialer{}
}

func (a *RealEthClientDialer) Dial(ctx context.Context, rawurl string) (EthClient, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return &RealEthClient{Client: client}, nil
}

// RealEthClient implements EthClient using the go-ethereum ethclient package
type RealEthClient struct {
	*ethclient.Client
}

type simulatedCallArgs struct {
	From *common.Address `json:"from,omitempty"`
	To   *common.Address `json:"to,omitempty"`
	Data hexutil.Bytes   `json:"data"`
}

type simulatedBlock struct {
	Calls []SimulatedCall `json:"calls"`
}

func (c *RealEthClient) SimulateCalls(ctx context.Context, calls []ethereum.CallMsg) ([]SimulatedCall, error) {
	args := make([]simulatedCallArgs, 0, len(calls))
	for _, call := range calls {
		arg := simulatedCallArgs{To: call.To, Data: call.Data}
		if call.From != (common.Address{}) {
			from := call.From
			arg.From = &from
		}
		args = append(args, arg)
	}

	opts := map[string]interface{}{
		"blockStateCalls": []map[string]interface{}{{"calls": args}},
	}

	var blocks []simulatedBlock
	if err := c.Client.Client().CallContext(ctx, &blocks, "eth_simulateV1", opts, "latest"); err != nil {
		return nil, err
	}
	if len(blocks) != 1 {
		return nil, fmt.Errorf("eth_simulateV1 returned %d blocks, expected 1", len(blocks))
	}
	return blocks[0].Calls, nil
}
