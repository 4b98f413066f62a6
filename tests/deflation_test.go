package tests

import (
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func TestTokenInfo(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)

	c.Invoke(t, "DEF", "symbol")
	c.Invoke(t, 18, "decimals")
	require.EqualValues(t, 1_000_000, totalSupply(t, c))
	require.EqualValues(t, 1_000_000, balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, true, "isExempt", c.CommitteeHash)
}

func TestExemptTransfer(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	user := c.NewAccount(t)

	c.Invoke(t, true, "transfer", c.CommitteeHash, user.ScriptHash(), 10_000, nil)
	require.EqualValues(t, 10_000, balanceOf(t, c, user.ScriptHash()))
	require.EqualValues(t, 990_000, balanceOf(t, c, c.CommitteeHash))

	// Exempt sender pays no fee and the supply is untouched.
	require.EqualValues(t, 1_000_000, totalSupply(t, c))
}

func TestDecaySchedule(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	user := c.NewAccount(t)
	c.Invoke(t, true, "transfer", c.CommitteeHash, user.ScriptHash(), 10_000, nil)

	require.EqualValues(t, 10_000, balanceOf(t, c, user.ScriptHash()))

	expected := []int64{9900, 9700, 9300, 8500, 7100, 4800, 1700, 0, 0}
	for _, exp := range expected {
		skipTime(t, c, day)
		require.EqualValues(t, exp, balanceOf(t, c, user.ScriptHash()))
	}

	// Decay is virtual until settled, the stored balance keeps the raw value.
	require.EqualValues(t, 10_000, storedBalanceOf(t, c, user.ScriptHash()))
}

func TestRefresh(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	user := c.NewAccount(t)
	cUser := c.WithSigners(c.NewAccount(t))
	c.Invoke(t, true, "transfer", c.CommitteeHash, user.ScriptHash(), 10_000, nil)

	cUser.InvokeFail(t, "unauthorized", "refresh", user.ScriptHash())

	// No dividend pool yet, so the whole shortfall is burnt.
	skipTime(t, c, day)
	c.Invoke(t, stackitem.Null{}, "refresh", user.ScriptHash())
	require.EqualValues(t, 9900, storedBalanceOf(t, c, user.ScriptHash()))
	require.EqualValues(t, 999_900, totalSupply(t, c))

	// Second refresh at the same age is a no-op.
	c.Invoke(t, stackitem.Null{}, "refresh", user.ScriptHash())
	require.EqualValues(t, 9900, storedBalanceOf(t, c, user.ScriptHash()))
	require.EqualValues(t, 999_900, totalSupply(t, c))

	// With the pool configured the shortfall is split in half.
	divPool := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "setDividendPool", divPool.ScriptHash())
	skipTime(t, c, day)
	c.Invoke(t, stackitem.Null{}, "refresh", user.ScriptHash())
	require.EqualValues(t, 9700, storedBalanceOf(t, c, user.ScriptHash()))
	require.EqualValues(t, 100, balanceOf(t, c, divPool.ScriptHash()))
	require.EqualValues(t, 999_800, totalSupply(t, c))
}

func TestTransferCommissionNoPools(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	from := c.NewAccount(t)
	to := c.NewAccount(t)
	c.Invoke(t, true, "transfer", c.CommitteeHash, from.ScriptHash(), 10_000, nil)

	cFrom := c.WithSigners(from)
	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), 2000, nil)

	require.EqualValues(t, 8000, balanceOf(t, c, from.ScriptHash()))
	require.EqualValues(t, 1900, balanceOf(t, c, to.ScriptHash()))
	require.EqualValues(t, 999_900, totalSupply(t, c))
}

func TestTransferCommissionFullPools(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	divPool := c.NewAccount(t)
	mktPool := c.NewAccount(t)
	techPool := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "setDividendPool", divPool.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "setMarketingPool", mktPool.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "setTechnicalPool", techPool.ScriptHash())

	from := c.NewAccount(t)
	to := c.NewAccount(t)
	c.Invoke(t, true, "transfer", c.CommitteeHash, from.ScriptHash(), 10_000, nil)

	cFrom := c.WithSigners(from)
	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), 2000, nil)

	require.EqualValues(t, 8000, balanceOf(t, c, from.ScriptHash()))
	require.EqualValues(t, 1900, balanceOf(t, c, to.ScriptHash()))
	require.EqualValues(t, 20, balanceOf(t, c, divPool.ScriptHash()))
	require.EqualValues(t, 40, balanceOf(t, c, mktPool.ScriptHash()))
	require.EqualValues(t, 20, balanceOf(t, c, techPool.ScriptHash()))
	require.EqualValues(t, 999_980, totalSupply(t, c))
}

func TestTransferCommissionReferral(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	divPool := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "setDividendPool", divPool.ScriptHash())

	from := c.NewAccount(t)
	to := c.NewAccount(t)
	referral := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "setReferral", from.ScriptHash(), referral.ScriptHash())
	c.Invoke(t, true, "transfer", c.CommitteeHash, from.ScriptHash(), 10_000, nil)

	// Referral takes precedence over the pool split: 2.25% burnt, 2.25% to
	// the referral wallet, nothing to the pools.
	cFrom := c.WithSigners(from)
	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), 2000, nil)

	require.EqualValues(t, 1910, balanceOf(t, c, to.ScriptHash()))
	require.EqualValues(t, 45, balanceOf(t, c, referral.ScriptHash()))
	require.EqualValues(t, 0, balanceOf(t, c, divPool.ScriptHash()))
	require.EqualValues(t, 999_955, totalSupply(t, c))

	// The referral reward is an ordinary portion and decays like any other.
	skipTime(t, c, day)
	require.EqualValues(t, 44, balanceOf(t, c, referral.ScriptHash()))
}

func TestTransferFailures(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	from := c.NewAccount(t)
	to := c.NewAccount(t)
	c.Invoke(t, true, "transfer", c.CommitteeHash, from.ScriptHash(), 100, nil)

	cFrom := c.WithSigners(from)
	cFrom.InvokeFail(t, "invalid amount", "transfer", from.ScriptHash(), to.ScriptHash(), -1, nil)

	// Fully decayed holdings cannot cover any transfer.
	skipTime(t, c, 9*day)
	cFrom.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), 50, nil)
	require.EqualValues(t, 0, balanceOf(t, c, to.ScriptHash()))

	// Missing sender witness.
	cTo := c.WithSigners(to)
	cTo.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), 1, nil)
}

func TestApproveTransferFrom(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	owner := c.NewAccount(t)
	spender := c.NewAccount(t)
	dest := c.NewAccount(t)
	c.Invoke(t, true, "transfer", c.CommitteeHash, owner.ScriptHash(), 10_000, nil)

	cOwner := c.WithSigners(owner)
	cSpender := c.WithSigners(spender)

	cSpender.InvokeFail(t, "insufficient allowance", "transferFrom",
		spender.ScriptHash(), owner.ScriptHash(), dest.ScriptHash(), 500, nil)

	cOwner.Invoke(t, stackitem.Null{}, "approve", owner.ScriptHash(), spender.ScriptHash(), 1000)
	c.Invoke(t, 1000, "allowance", owner.ScriptHash(), spender.ScriptHash())

	cSpender.Invoke(t, true, "transferFrom",
		spender.ScriptHash(), owner.ScriptHash(), dest.ScriptHash(), 600, nil)
	c.Invoke(t, 400, "allowance", owner.ScriptHash(), spender.ScriptHash())

	// 5% of 600 is burnt, no pools are configured.
	require.EqualValues(t, 570, balanceOf(t, c, dest.ScriptHash()))
	require.EqualValues(t, 9400, balanceOf(t, c, owner.ScriptHash()))
	require.EqualValues(t, 999_970, totalSupply(t, c))

	cSpender.InvokeFail(t, "insufficient allowance", "transferFrom",
		spender.ScriptHash(), owner.ScriptHash(), dest.ScriptHash(), 500, nil)
}

func TestExemptAccounts(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	user := c.NewAccount(t)

	c.Invoke(t, false, "isExempt", user.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "setExempt", user.ScriptHash(), true)
	c.Invoke(t, true, "isExempt", user.ScriptHash())

	c.Invoke(t, true, "transfer", c.CommitteeHash, user.ScriptHash(), 1000, nil)
	skipTime(t, c, 9*day)
	require.EqualValues(t, 1000, balanceOf(t, c, user.ScriptHash()))
}

func TestOwnerGating(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	user := c.NewAccount(t)
	cUser := c.WithSigners(user)

	cUser.InvokeFail(t, "unauthorized", "setDividendPool", user.ScriptHash())
	cUser.InvokeFail(t, "unauthorized", "setMarketingPool", user.ScriptHash())
	cUser.InvokeFail(t, "unauthorized", "setTechnicalPool", user.ScriptHash())
	cUser.InvokeFail(t, "unauthorized", "setExempt", user.ScriptHash(), true)
	cUser.InvokeFail(t, "unauthorized", "setReferral", user.ScriptHash(), user.ScriptHash())
	cUser.InvokeFail(t, "unauthorized", "setTechnical", user.ScriptHash())
}

func TestSetTechnical(t *testing.T) {
	c := newCoinInvoker(t, 1_000_000)
	tech := c.NewAccount(t)
	user := c.NewAccount(t)
	c.Invoke(t, true, "transfer", c.CommitteeHash, user.ScriptHash(), 1000, nil)

	c.Invoke(t, stackitem.Null{}, "setTechnical", tech.ScriptHash())

	// The committee loses the technical role once it is reassigned.
	c.InvokeFail(t, "unauthorized", "refresh", user.ScriptHash())

	cTech := c.WithSigners(tech)
	skipTime(t, c, day)
	cTech.Invoke(t, stackitem.Null{}, "refresh", user.ScriptHash())
	require.EqualValues(t, 990, storedBalanceOf(t, c, user.ScriptHash()))
}
