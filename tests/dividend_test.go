package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// setupDividends deploys the coin, configures the dividend pool with 5000
// tokens and opens a single 12-year position of 1000 for a fresh user.
func setupDividends(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker, util.Uint160, util.Uint160) {
	c := newCoinInvoker(t, 1_000_000)
	divPool := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "setDividendPool", divPool.ScriptHash())
	c.Invoke(t, true, "transfer", c.CommitteeHash, divPool.ScriptHash(), 5000, nil)

	cUser := newStaker(t, c, 10_000)
	user := cUser.Signers[0].ScriptHash()
	cUser.Invoke(t, stackitem.Null{}, "stake", user, 1000, 12)
	return c, cUser, user, divPool.ScriptHash()
}

func runRecount(t *testing.T, c *neotest.ContractInvoker, accounts ...util.Uint160) {
	c.Invoke(t, stackitem.Null{}, "initRecount")
	accs := make([]any, len(accounts))
	for i := range accounts {
		accs[i] = accounts[i]
	}
	c.Invoke(t, stackitem.Null{}, "recount", accs)
	c.Invoke(t, stackitem.Null{}, "finishRecount")
}

func TestRecountRoundTrip(t *testing.T) {
	c, cUser, user, divPool := setupDividends(t)
	require.EqualValues(t, 20_000, getDividendState(t, c).betaIndicator)

	skipToNextPeriod(t, c)
	c.Invoke(t, stackitem.Null{}, "initRecount")

	st := getDividendState(t, c)
	require.False(t, st.active)
	require.EqualValues(t, 20_000, st.betaIndicator)
	require.EqualValues(t, 0, st.betaUpdateAccumulator)
	require.EqualValues(t, 0, st.betaPoDIndicator)

	// The position opened in the previous period, so no dividends compound
	// yet, the pass only rebuilds the indicators.
	c.Invoke(t, stackitem.Null{}, "recount", []any{user})
	c.Invoke(t, stackitem.Null{}, "finishRecount")

	st = getDividendState(t, c)
	require.True(t, st.active)
	require.EqualValues(t, 20_000, st.betaIndicator)
	require.EqualValues(t, 12_000, st.betaPoDIndicator)
	require.EqualValues(t, 5000, st.poolSnapshot)

	// 1000/(12*12) principal plus the full pool share 1000*20*5000/20000.
	c.Invoke(t, 5006, "calculateDividends", user)

	cUser.Invoke(t, stackitem.Null{}, "claimDividends", user, 0, 5006)
	require.EqualValues(t, 5006, balanceOf(t, c, user))
	require.EqualValues(t, 0, balanceOf(t, c, divPool))

	// 6 of the claim came out of the principal and shrank the indicators.
	stakes := getStakes(t, c, user)
	require.EqualValues(t, 994, stakes[0].amount)
	require.EqualValues(t, 6, stakes[0].claimedPrincipal)
	require.EqualValues(t, 5000, stakes[0].claimedDividend)

	st = getDividendState(t, c)
	require.EqualValues(t, 19_880, st.betaIndicator)
	require.EqualValues(t, 11_928, st.betaPoDIndicator)

	// Everything withdrawable this period is gone.
	c.Invoke(t, 0, "calculateDividends", user)
	cUser.InvokeFail(t, "invalid amount", "claimDividends", user, 0, 1)

	// Next period the claimed dividends were already compounded away and the
	// pool snapshot drops to the drained pool balance, leaving only the
	// monthly principal instalment.
	skipToNextPeriod(t, c)
	runRecount(t, c, user)

	st = getDividendState(t, c)
	require.EqualValues(t, 19_880, st.betaIndicator)
	require.EqualValues(t, 0, st.poolSnapshot)
	require.EqualValues(t, 994, getStakes(t, c, user)[0].amount)

	c.Invoke(t, 6, "calculateDividends", user)
	cUser.Invoke(t, stackitem.Null{}, "claimDividends", user, 0, 6)
	require.EqualValues(t, 988, getStakes(t, c, user)[0].amount)
}

func TestRecountCompoundsUnclaimed(t *testing.T) {
	c, _, user, divPool := setupDividends(t)

	skipToNextPeriod(t, c)
	runRecount(t, c, user)

	// Nothing was claimed, so the whole pool share compounds into the
	// position on the following recount.
	skipToNextPeriod(t, c)
	runRecount(t, c, user)

	stakes := getStakes(t, c, user)
	require.EqualValues(t, 6000, stakes[0].amount)
	require.EqualValues(t, 0, balanceOf(t, c, divPool))

	st := getDividendState(t, c)
	require.EqualValues(t, 120_000, st.betaIndicator)
	require.EqualValues(t, 72_000, st.betaPoDIndicator)
	require.EqualValues(t, 0, st.poolSnapshot)
}

func TestClaimOpeningPeriod(t *testing.T) {
	_, cUser, user, _ := setupDividends(t)

	cUser.InvokeFail(t, "period is not elapsed", "claimDividends", user, 0, 1)
}

func TestClaimValidation(t *testing.T) {
	c, cUser, user, _ := setupDividends(t)
	skipToNextPeriod(t, c)
	runRecount(t, c, user)

	cUser.InvokeFail(t, "invalid amount", "claimDividends", user, 0, 0)
	cUser.InvokeFail(t, "invalid amount", "claimDividends", user, 0, -5)
	cUser.InvokeFail(t, "index out of range", "claimDividends", user, 3, 1)
	cUser.InvokeFail(t, "invalid amount", "claimDividends", user, 0, 5007)

	other := c.NewAccount(t)
	cUser.InvokeFail(t, "unauthorized", "claimDividends", other.ScriptHash(), 0, 1)
}

func TestClaimWithoutRecountDrainsNothing(t *testing.T) {
	c, cUser, user, _ := setupDividends(t)
	skipToNextPeriod(t, c)
	runRecount(t, c, user)
	cUser.Invoke(t, stackitem.Null{}, "claimDividends", user, 0, 5006)

	// A period change without a recount leaves a stale pool snapshot: the
	// pool is empty, so dividend claims fail until the operator recounts.
	skipToNextPeriod(t, c)
	cUser.InvokeFail(t, "insufficient pool balance", "claimDividends", user, 0, 6)
}

func TestRecountGating(t *testing.T) {
	c, cUser, user, _ := setupDividends(t)
	skipToNextPeriod(t, c)

	cUser.InvokeFail(t, "unauthorized", "initRecount")
	cUser.InvokeFail(t, "unauthorized", "recount", []any{user})
	cUser.InvokeFail(t, "unauthorized", "finishRecount")

	runRecount(t, c, user)
}

func TestCalculateDividendsNoStakes(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	user := c.NewAccount(t)

	c.Invoke(t, 0, "calculateDividends", user.ScriptHash())
}
