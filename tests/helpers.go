package tests

import (
	"path"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const deflationPath = "../contracts/deflation"

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// newCoinInvoker compiles and deploys the coin with the committee account
// acting as both owner and technical wallet. Returned invoker is signed by
// the committee.
func newCoinInvoker(t *testing.T, supply int64) *neotest.ContractInvoker {
	e := newExecutor(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, deflationPath, path.Join(deflationPath, "config.yml"))
	e.DeployContract(t, ctr, []any{e.CommitteeHash, e.CommitteeHash, supply})
	return e.CommitteeInvoker(ctr.Hash)
}

// skipTime appends an empty block with the timestamp moved forward by d, so
// that balance decay, position maturity and calendar periods can be driven
// deterministically.
func skipTime(t *testing.T, c *neotest.ContractInvoker, d time.Duration) {
	b := c.NewUnsignedBlock(t)
	b.Timestamp = c.TopBlock(t).Timestamp + uint64(d/time.Millisecond)
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
}

// skipToNextPeriod moves chain time to the 10th day of the next calendar
// month. Landing this deep into the month guarantees that any balance portion
// created before the jump is fully decayed by the time it completes.
func skipToNextPeriod(t *testing.T, c *neotest.ContractInvoker) {
	top := time.UnixMilli(int64(c.TopBlock(t).Timestamp)).UTC()
	next := time.Date(top.Year(), top.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 9)
	skipTime(t, c, next.Sub(top))
}

func balanceOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	s, err := c.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return itemInt64(t, s.Top().Item())
}

func storedBalanceOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	s, err := c.TestInvoke(t, "storedBalanceOf", acc)
	require.NoError(t, err)
	return itemInt64(t, s.Top().Item())
}

func totalSupply(t *testing.T, c *neotest.ContractInvoker) int64 {
	s, err := c.TestInvoke(t, "totalSupply")
	require.NoError(t, err)
	return itemInt64(t, s.Top().Item())
}

type stakeState struct {
	initialAmount     int64
	amount            int64
	finishedAmount    int64
	startTime         int64
	lockYears         int64
	lastClaimedPeriod int64
	claimedPrincipal  int64
	claimedDividend   int64
}

func getStakes(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160) []stakeState {
	s, err := c.TestInvoke(t, "getStakes", owner)
	require.NoError(t, err)
	items, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)

	res := make([]stakeState, 0, len(items))
	for _, itm := range items {
		fs, ok := itm.Value().([]stackitem.Item)
		require.True(t, ok)
		require.Len(t, fs, 8)
		res = append(res, stakeState{
			initialAmount:     itemInt64(t, fs[0]),
			amount:            itemInt64(t, fs[1]),
			finishedAmount:    itemInt64(t, fs[2]),
			startTime:         itemInt64(t, fs[3]),
			lockYears:         itemInt64(t, fs[4]),
			lastClaimedPeriod: itemInt64(t, fs[5]),
			claimedPrincipal:  itemInt64(t, fs[6]),
			claimedDividend:   itemInt64(t, fs[7]),
		})
	}
	return res
}

type dividendState struct {
	betaIndicator         int64
	betaUpdateAccumulator int64
	betaPoDIndicator      int64
	poolSnapshot          int64
	active                bool
}

func getDividendState(t *testing.T, c *neotest.ContractInvoker) dividendState {
	s, err := c.TestInvoke(t, "getDividendState")
	require.NoError(t, err)
	fs, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, fs, 5)

	active, err := fs[4].TryBool()
	require.NoError(t, err)
	return dividendState{
		betaIndicator:         itemInt64(t, fs[0]),
		betaUpdateAccumulator: itemInt64(t, fs[1]),
		betaPoDIndicator:      itemInt64(t, fs[2]),
		poolSnapshot:          itemInt64(t, fs[3]),
		active:                active,
	}
}

func itemInt64(t *testing.T, itm stackitem.Item) int64 {
	bi, err := itm.TryInteger()
	require.NoError(t, err)
	require.True(t, bi.IsInt64())
	return bi.Int64()
}
