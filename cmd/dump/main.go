package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/deflation-coin/contract/rpc/deflation"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// dumpFile is the layout of the produced storage dump.
type dumpFile struct {
	ID       uuid.UUID   `json:"id"`
	Label    string      `json:"label"`
	Block    uint32      `json:"block"`
	Contract string      `json:"contract"`
	Items    []dumpEntry `json:"items"`
}

type dumpEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	contractHash := flag.String("contract", "", "DeflationCoin contract hash (LE hex)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	case *contractHash == "":
		log.Fatal("missing contract hash")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	const rootDir = "testdata"

	err = os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, rootDir, *chainLabel, h)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("DeflationCoin contract is successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir, label string, contract util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	err = printSummary(b, contract)
	if err != nil {
		return fmt.Errorf("read contract summary: %w", err)
	}

	d := dumpFile{
		ID:       uuid.New(),
		Label:    label,
		Block:    b.currentBlock,
		Contract: contract.StringLE(),
	}

	err = b.iterateContractStorage(contract, func(key, value []byte) error {
		d.Items = append(d.Items, dumpEntry{
			Key:   base64.StdEncoding.EncodeToString(key),
			Value: base64.StdEncoding.EncodeToString(value),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate contract storage: %w", err)
	}

	data, err := json.MarshalIndent(d, "", " ")
	if err != nil {
		return fmt.Errorf("encode dump: %w", err)
	}

	fileName := filepath.Join(rootDir, fmt.Sprintf("%s-%d.json", label, b.currentBlock))

	err = os.WriteFile(fileName, data, 0600)
	if err != nil {
		return fmt.Errorf("write dump file: %w", err)
	}

	return nil
}

// printSummary logs the global state of the coin: supply, dividend pools and
// the recount indicators.
func printSummary(b *remoteBlockchain, contract util.Uint160) error {
	reader := deflation.NewReader(b.invoker, contract)

	supply, err := reader.TotalSupply()
	if err != nil {
		return fmt.Errorf("get total supply: %w", err)
	}

	log.Printf("Total supply: %s\n", supply)

	st, err := reader.GetDividendState()
	if err != nil {
		return fmt.Errorf("get dividend state: %w", err)
	}

	log.Printf("Dividend state: beta=%s, betaUpdate=%s, betaPoD=%s, poolSnapshot=%s, active=%t\n",
		st.BetaIndicator, st.BetaUpdateAccumulator, st.BetaPoDIndicator, st.PoolSnapshot, st.Active)

	for _, pool := range []struct {
		name string
		get  func() (util.Uint160, error)
	}{
		{"dividend", reader.DividendPool},
		{"marketing", reader.MarketingPool},
		{"technical", reader.TechnicalPool},
	} {
		h, err := pool.get()
		if err != nil {
			log.Printf("Pool '%s' is not configured\n", pool.name)
			continue
		}

		log.Printf("Pool '%s': %s\n", pool.name, h.StringLE())
	}

	return nil
}
