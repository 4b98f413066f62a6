package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func newStaker(t *testing.T, c *neotest.ContractInvoker, funds int64) *neotest.ContractInvoker {
	user := c.NewAccount(t)
	c.Invoke(t, true, "transfer", c.CommitteeHash, user.ScriptHash(), funds, nil)
	return c.WithSigners(user)
}

func TestStakeSplit(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	cUser := newStaker(t, c, 10_000)
	user := cUser.Signers[0].ScriptHash()

	cUser.Invoke(t, stackitem.Null{}, "stake", user, 5000, 3)
	require.EqualValues(t, 5000, balanceOf(t, c, user))

	// 1% of the principal is rerouted into a companion 12-year position.
	stakes := getStakes(t, c, user)
	require.Len(t, stakes, 2)
	require.EqualValues(t, 4950, stakes[0].amount)
	require.EqualValues(t, 4950, stakes[0].initialAmount)
	require.EqualValues(t, 3, stakes[0].lockYears)
	require.EqualValues(t, 50, stakes[1].amount)
	require.EqualValues(t, 12, stakes[1].lockYears)

	c.Invoke(t, 3, "yearWeightOf", user, 0)
	c.Invoke(t, 20, "yearWeightOf", user, 1)

	st := getDividendState(t, c)
	require.EqualValues(t, 4950*3+50*20, st.betaIndicator)
	require.EqualValues(t, 4950*3+50*12, st.betaPoDIndicator)
	require.False(t, st.active)
}

func TestStakeTwelveYears(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	cUser := newStaker(t, c, 10_000)
	user := cUser.Signers[0].ScriptHash()

	cUser.Invoke(t, stackitem.Null{}, "stake", user, 5000, 12)

	stakes := getStakes(t, c, user)
	require.Len(t, stakes, 1)
	require.EqualValues(t, 5000, stakes[0].amount)
	require.EqualValues(t, 12, stakes[0].lockYears)
	require.EqualValues(t, 100_000, getDividendState(t, c).betaIndicator)
}

func TestStakeValidation(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	cUser := newStaker(t, c, 1000)
	user := cUser.Signers[0].ScriptHash()

	cUser.InvokeFail(t, "invalid amount", "stake", user, 0, 3)
	cUser.InvokeFail(t, "invalid duration", "stake", user, 100, 0)
	cUser.InvokeFail(t, "invalid duration", "stake", user, 100, 13)
	cUser.InvokeFail(t, "insufficient balance", "stake", user, 2000, 3)

	other := c.NewAccount(t)
	cUser.InvokeFail(t, "unauthorized", "stake", other.ScriptHash(), 100, 3)
}

func TestYearWeightDecreases(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	cUser := newStaker(t, c, 10_000)
	user := cUser.Signers[0].ScriptHash()

	cUser.Invoke(t, stackitem.Null{}, "stake", user, 5000, 5)
	c.Invoke(t, 5, "yearWeightOf", user, 0)

	skipTime(t, c, 366*day)
	c.Invoke(t, 4, "yearWeightOf", user, 0)

	// Matured positions weigh 1.
	skipTime(t, c, 5*365*day)
	c.Invoke(t, 1, "yearWeightOf", user, 0)

	c.InvokeFail(t, "index out of range", "yearWeightOf", user, 9)
}

func TestExtendStaking(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	cUser := newStaker(t, c, 10_000)
	user := cUser.Signers[0].ScriptHash()

	cUser.Invoke(t, stackitem.Null{}, "stake", user, 2000, 12)
	st := getDividendState(t, c)
	require.EqualValues(t, 40_000, st.betaIndicator)
	require.EqualValues(t, 24_000, st.betaPoDIndicator)

	cUser.InvokeFail(t, "invalid duration", "extendStaking", user, 0, 0)
	cUser.InvokeFail(t, "index out of range", "extendStaking", user, 5, 3)

	// Rescheduling to 2 years drops the weight from 20 to 2.
	cUser.Invoke(t, stackitem.Null{}, "extendStaking", user, 0, 2)
	require.EqualValues(t, 2, getStakes(t, c, user)[0].lockYears)
	st = getDividendState(t, c)
	require.EqualValues(t, 4000, st.betaIndicator)
	require.EqualValues(t, 4000, st.betaPoDIndicator)

	// Horizons past 12 years still weigh as 12-year positions.
	cUser.Invoke(t, stackitem.Null{}, "extendStaking", user, 0, 50)
	c.Invoke(t, 20, "yearWeightOf", user, 0)
	st = getDividendState(t, c)
	require.EqualValues(t, 40_000, st.betaIndicator)
	require.EqualValues(t, 100_000, st.betaPoDIndicator)
}

func TestSmoothUnlock(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	cUser := newStaker(t, c, 10_000)
	user := cUser.Signers[0].ScriptHash()

	cUser.Invoke(t, stackitem.Null{}, "stake", user, 3000, 1)
	stakes := getStakes(t, c, user)
	require.Len(t, stakes, 2)
	require.EqualValues(t, 2970, stakes[0].amount)

	cUser.InvokeFail(t, "unauthorized", "smoothUnlock", user, 0)
	c.InvokeFail(t, "position is not matured", "smoothUnlock", user, 0)

	skipTime(t, c, 366*day)

	// 2970 over 30 instalments for a one-year lock.
	c.Invoke(t, stackitem.Null{}, "smoothUnlock", user, 0)
	stakes = getStakes(t, c, user)
	require.EqualValues(t, 2970, stakes[0].finishedAmount)
	require.EqualValues(t, 2871, stakes[0].amount)
	require.EqualValues(t, 99, balanceOf(t, c, user))

	c.Invoke(t, stackitem.Null{}, "smoothUnlock", user, 0)
	require.EqualValues(t, 2772, getStakes(t, c, user)[0].amount)

	// The companion 12-year position is nowhere near maturity.
	c.InvokeFail(t, "position is not matured", "smoothUnlock", user, 1)
	c.InvokeFail(t, "index out of range", "smoothUnlock", user, 7)
}

func TestSmoothUnlockDrain(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	cUser := newStaker(t, c, 3000)
	user := cUser.Signers[0].ScriptHash()

	cUser.Invoke(t, stackitem.Null{}, "stake", user, 3000, 1)
	skipTime(t, c, 366*day)

	for i := 0; i < 30; i++ {
		c.Invoke(t, stackitem.Null{}, "smoothUnlock", user, 0)
	}
	require.EqualValues(t, 0, getStakes(t, c, user)[0].amount)
	require.EqualValues(t, 2970, balanceOf(t, c, user))

	// Nothing is left to release.
	c.InvokeFail(t, "position is not matured", "smoothUnlock", user, 0)
}
