package deflation

import (
	"github.com/deflation-coin/contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// DividendState is the process-wide dividend bookkeeping record. A single
// instance lives in the contract storage for the whole contract lifetime.
type DividendState struct {
	// Settled weighting indicator used by every share calculation.
	// Swapped in atomically by FinishRecount, never observed
	// half-recomputed.
	BetaIndicator int
	// Accumulator the recount batches build the next indicator in.
	BetaUpdateAccumulator int
	// Proof-of-dedication indicator: principal scaled by plain lock
	// years instead of the weight table.
	BetaPoDIndicator int
	// Dividend pool balance captured by FinishRecount, the fixed
	// denominator of the following period.
	PoolSnapshot int
	// Cleared by InitRecount, set back by FinishRecount.
	Active bool
}

// InitRecount opens the two-phase dividend recomputation: the update
// accumulator and the proof-of-dedication indicator are cleared and the
// settled state is marked inactive. Can be invoked only by the technical
// account.
//
// The operator must cover the whole account population with Recount batches
// and call FinishRecount before any further claims or transfers are let
// through, the contract does not enforce this ordering itself.
func InitRecount() {
	ctx := storage.GetContext()
	common.CheckRoleWitness(common.GetHash160(ctx, technicalKey))

	st := getDividendState(ctx)
	st.BetaUpdateAccumulator = 0
	st.BetaPoDIndicator = 0
	st.Active = false
	putDividendState(ctx, st)
	runtime.Log("dividend recount started")
}

// Recount settles one batch of accounts: every live position gets its
// unclaimed entitlement from the previous calendar period compounded into
// the principal (debiting the dividend pool by the same amount) and then
// contributes its principal-weighted share into the update indicators. Can
// be invoked only by the technical account.
func Recount(accounts []interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRoleWitness(common.GetHash160(ctx, technicalKey))

	now := runtime.GetTime()
	prev := previousPeriod(periodAt(now))

	st := getDividendState(ctx)
	poolDebit := 0

	for i := 0; i < len(accounts); i++ {
		addr := accounts[i]
		acc := getAccount(ctx, addr)
		compounded := false

		for j := 0; j < len(acc.Stakes); j++ {
			s := acc.Stakes[j]
			if s.Amount <= 0 {
				continue
			}

			owed := 0
			if periodAt(s.StartTime) < prev && st.BetaIndicator > 0 {
				owed = s.Amount * yearWeight(s, now) * st.PoolSnapshot / st.BetaIndicator
				if s.LastClaimedPeriod == prev {
					owed -= s.ClaimedDividend
				}
				if owed < 0 {
					owed = 0
				}
			}
			if owed > 0 {
				s.Amount += owed
				poolDebit += owed
				acc.Stakes[j] = s
				compounded = true
			}

			st.BetaUpdateAccumulator += s.Amount * yearWeight(s, now)
			st.BetaPoDIndicator += s.Amount * s.LockYears
		}

		if compounded {
			putAccount(ctx, addr, acc)
		}
	}

	if poolDebit > 0 {
		debitDividendPool(ctx, poolDebit)
	}
	putDividendState(ctx, st)
}

// FinishRecount activates the recomputed dividend state: the settled
// indicator becomes the freshly built accumulator and the current dividend
// pool balance is snapshotted as the denominator for the next period. Can be
// invoked only by the technical account.
func FinishRecount() {
	ctx := storage.GetContext()
	common.CheckRoleWitness(common.GetHash160(ctx, technicalKey))

	st := getDividendState(ctx)
	st.BetaIndicator = st.BetaUpdateAccumulator

	st.PoolSnapshot = 0
	pool := common.GetHash160(ctx, dividendPoolKey)
	if pool != nil {
		st.PoolSnapshot = getAccount(ctx, pool).Balance
	}

	st.Active = true
	putDividendState(ctx, st)
	runtime.Log("dividend recount finished")
}

// CalculateDividends returns the total amount the account can withdraw from
// its positions in the current calendar period: the monthly principal
// release plus the weighted dividend pool share, both reduced by what was
// already claimed this period. Positions opened in the current period earn
// nothing.
func CalculateDividends(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	now := runtime.GetTime()
	st := getDividendState(ctx)

	total := 0
	stakes := getAccount(ctx, account).Stakes
	for i := 0; i < len(stakes); i++ {
		p, d := withdrawable(stakes[i], st, now)
		total += p + d
	}
	return total
}

// ClaimDividends withdraws the given amount from the position. The dividend
// share part is paid out of the dividend pool; anything above it is drawn
// from the position principal, shrinking the global indicators accordingly.
// The claimed amount lands on the owner balance as a fresh portion. Can be
// invoked only by the account owner.
//
// Produces DividendClaimed notification.
func ClaimDividends(owner interop.Hash160, index, amount int) {
	if amount <= 0 {
		panic(common.ErrInvalidAmount)
	}
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	now := runtime.GetTime()
	cur := periodAt(now)

	acc := getAccount(ctx, owner)
	if index < 0 || index >= len(acc.Stakes) {
		panic(common.ErrIndexOutOfRange)
	}

	s := acc.Stakes[index]
	if periodAt(s.StartTime) == cur {
		panic(common.ErrPeriodNotElapsed)
	}
	if s.LastClaimedPeriod != cur {
		s.LastClaimedPeriod = cur
		s.ClaimedPrincipal = 0
		s.ClaimedDividend = 0
	}

	st := getDividendState(ctx)
	principalPart, dividendPart := withdrawable(s, st, now)
	if amount > principalPart+dividendPart {
		panic(common.ErrInvalidAmount)
	}

	fromDividend := amount
	excess := 0
	if amount > dividendPart {
		fromDividend = dividendPart
		excess = amount - dividendPart
	}

	if excess > 0 {
		weight := yearWeight(s, now)
		s.Amount -= excess
		st.BetaIndicator -= excess * weight
		st.BetaPoDIndicator -= excess * s.LockYears
	}

	s.ClaimedDividend += fromDividend
	s.ClaimedPrincipal += excess
	acc.Stakes[index] = s
	putAccount(ctx, owner, acc)
	putDividendState(ctx, st)

	if fromDividend > 0 {
		debitDividendPool(ctx, fromDividend)
	}
	appendPortion(ctx, owner, amount, now)

	runtime.Notify("DividendClaimed", owner, index, amount)
}

// GetDividendState returns the global dividend bookkeeping record.
func GetDividendState() DividendState {
	return getDividendState(storage.GetReadOnlyContext())
}

// withdrawable returns the principal and dividend parts the position still
// allows to claim in the current period. Claim counters of past periods are
// ignored.
func withdrawable(s StakePosition, st DividendState, now int) (int, int) {
	cur := periodAt(now)
	if periodAt(s.StartTime) == cur {
		return 0, 0
	}

	claimedPrincipal := 0
	claimedDividend := 0
	if s.LastClaimedPeriod == cur {
		claimedPrincipal = s.ClaimedPrincipal
		claimedDividend = s.ClaimedDividend
	}

	principal := s.Amount/(s.LockYears*12) - claimedPrincipal
	if principal < 0 {
		principal = 0
	}

	dividend := 0
	if st.BetaIndicator > 0 {
		dividend = s.Amount * yearWeight(s, now) * st.PoolSnapshot / st.BetaIndicator
	}
	dividend -= claimedDividend
	if dividend < 0 {
		dividend = 0
	}

	return principal, dividend
}

func debitDividendPool(ctx storage.Context, amount int) {
	pool := common.GetHash160(ctx, dividendPoolKey)
	if pool == nil {
		panic(common.ErrInsufficientPoolBalance)
	}

	acc := getAccount(ctx, pool)
	if acc.Balance < amount {
		panic(common.ErrInsufficientPoolBalance)
	}
	acc.Balance -= amount
	putAccount(ctx, pool, acc)
}

func getDividendState(ctx storage.Context) DividendState {
	data := storage.Get(ctx, dividendStateKey)
	if data != nil {
		return std.Deserialize(data.([]byte)).(DividendState)
	}

	return DividendState{}
}

func putDividendState(ctx storage.Context, st DividendState) {
	common.SetSerialized(ctx, dividendStateKey, st)
}
