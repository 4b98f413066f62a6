package deflation

import (
	"github.com/deflation-coin/contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// StakePosition is a single staking position of an account. Closed positions
// (Amount == 0) stay in the account record, their index never changes.
type StakePosition struct {
	// Principal the position was opened with.
	InitialAmount int
	// Live principal. Grows on recount compounding, shrinks on claims
	// and smooth unlock.
	Amount int
	// Snapshot of the principal taken by the first smooth unlock call,
	// drives the linear release schedule.
	FinishedAmount int
	// Opening timestamp in milliseconds.
	StartTime int
	// Lock duration in years, 1..12 on opening. Extension can push it
	// further, the weighting clamps at 12 anyway.
	LockYears int
	// Calendar period of the last claim, year*100+month.
	LastClaimedPeriod int
	// Principal withdrawn within the current claim period.
	ClaimedPrincipal int
	// Dividends withdrawn within the current claim period.
	ClaimedDividend int
}

// yearlyWeights converts whole years remaining until maturity into the
// dividend weight multiplier.
var yearlyWeights = []int{1, 2, 3, 4, 5, 6, 7, 10, 12, 14, 16, 20}

const (
	minLockYears = 1
	maxLockYears = 12

	yearDays = 365

	// A matured position is drained in about this many unlock calls
	// per lock year.
	unlockStepsPerYear = 30
)

// Stake opens a staking position: the amount is consumed from the effective
// balance of the owner and locked for the given number of years. Every
// duration except the longest one diverts 1% of the amount into a second
// 12-year position. Can be invoked only by the account owner.
//
// Produces StakeOpened notification per position created.
func Stake(owner interop.Hash160, amount, years int) {
	if amount <= 0 {
		panic(common.ErrInvalidAmount)
	}
	if years < minLockYears || years > maxLockYears {
		panic(common.ErrInvalidDuration)
	}
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	now := runtime.GetTime()

	refresh(ctx, owner, now)
	if !consume(ctx, owner, amount, now) {
		panic(common.ErrInsufficientBalance)
	}

	principal := amount
	if years != maxLockYears {
		principal = amount * 99 / 100
	}
	openPosition(ctx, owner, principal, years, now)

	if years != maxLockYears && amount > principal {
		openPosition(ctx, owner, amount-principal, maxLockYears, now)
	}
}

// ExtendStaking changes the lock duration of an existing position. The
// global dividend indicators are adjusted by the weight delta scaled by the
// current principal. Can be invoked only by the account owner.
//
// Produces StakeExtended notification.
func ExtendStaking(owner interop.Hash160, index, newYears int) {
	if newYears < minLockYears {
		panic(common.ErrInvalidDuration)
	}
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	now := runtime.GetTime()

	acc := getAccount(ctx, owner)
	if index < 0 || index >= len(acc.Stakes) {
		panic(common.ErrIndexOutOfRange)
	}

	s := acc.Stakes[index]
	oldYears := s.LockYears
	oldWeight := yearWeight(s, now)

	s.LockYears = newYears
	newWeight := yearWeight(s, now)
	acc.Stakes[index] = s
	putAccount(ctx, owner, acc)

	st := getDividendState(ctx)
	st.BetaIndicator += s.Amount * (newWeight - oldWeight)
	st.BetaPoDIndicator += s.Amount * (newYears - oldYears)
	putDividendState(ctx, st)

	runtime.Notify("StakeExtended", owner, index, newYears)
}

// SmoothUnlock releases the next instalment of a matured position back to
// the owner as a fresh portion. The first call snapshots the remaining
// principal; every call releases at most snapshot/(lockYears*30) of it. Can
// be invoked only by the technical account.
//
// Produces Unlock notification.
func SmoothUnlock(owner interop.Hash160, index int) {
	ctx := storage.GetContext()
	common.CheckRoleWitness(common.GetHash160(ctx, technicalKey))

	acc := getAccount(ctx, owner)
	if index < 0 || index >= len(acc.Stakes) {
		panic(common.ErrIndexOutOfRange)
	}

	now := runtime.GetTime()
	s := acc.Stakes[index]
	if s.Amount <= 0 || now < maturityTime(s) {
		panic(common.ErrPositionNotMatured)
	}

	if s.FinishedAmount == 0 {
		s.FinishedAmount = s.Amount
	}

	release := s.FinishedAmount / (s.LockYears * unlockStepsPerYear)
	if release > s.Amount {
		release = s.Amount
	}

	s.Amount -= release
	acc.Stakes[index] = s
	putAccount(ctx, owner, acc)

	if release > 0 {
		appendPortion(ctx, owner, release, now)
	}
	runtime.Notify("Unlock", owner, index, release)
}

// GetStakes returns all staking positions of the account, including the
// closed ones.
func GetStakes(owner interop.Hash160) []StakePosition {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, owner).Stakes
}

// YearWeightOf returns the current dividend weight of the position: 1 once
// it is matured, otherwise a table multiplier of the whole years remaining.
func YearWeightOf(owner interop.Hash160, index int) int {
	ctx := storage.GetReadOnlyContext()
	acc := getAccount(ctx, owner)
	if index < 0 || index >= len(acc.Stakes) {
		panic(common.ErrIndexOutOfRange)
	}
	return yearWeight(acc.Stakes[index], runtime.GetTime())
}

func openPosition(ctx storage.Context, owner interop.Hash160, principal, years, now int) {
	s := StakePosition{
		InitialAmount:     principal,
		Amount:            principal,
		StartTime:         now,
		LockYears:         years,
		LastClaimedPeriod: periodAt(now),
	}

	acc := getAccount(ctx, owner)
	acc.Stakes = append(acc.Stakes, s)
	putAccount(ctx, owner, acc)

	st := getDividendState(ctx)
	st.BetaIndicator += principal * yearWeight(s, now)
	st.BetaPoDIndicator += principal * years
	putDividendState(ctx, st)

	runtime.Notify("StakeOpened", owner, principal, years)
}

func maturityTime(s StakePosition) int {
	return s.StartTime + s.LockYears*yearDays*dayMs
}

func yearWeight(s StakePosition, now int) int {
	maturity := maturityTime(s)
	if now >= maturity {
		return 1
	}

	daysRemaining := (maturity - now) / dayMs
	yearsRemaining := (daysRemaining-1)/yearDays + 1
	if yearsRemaining > maxLockYears {
		yearsRemaining = maxLockYears
	}
	return yearlyWeights[yearsRemaining-1]
}
