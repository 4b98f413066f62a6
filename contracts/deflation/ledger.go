package deflation

import (
	"github.com/deflation-coin/contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Portion is a timestamped slice of an account balance. Each portion
	// loses spendable weight day by day until it is worth nothing.
	Portion struct {
		// Nominal amount left in the portion. Consumption reduces it,
		// the portion itself is never removed from the account record.
		Amount int
		// Creation timestamp in milliseconds.
		CreatedAt int
	}

	// Account stores the full state of a single DeflationCoin holder.
	Account struct {
		// Stored balance. For non-exempt accounts it lags behind the
		// decay-weighted sum of portions until the next refresh.
		Balance int
		// Exempt accounts do not decay and carry no portions.
		Exempt bool
		// Referral wallet reference, empty when not set.
		Referral interop.Hash160
		// Index of the first portion that is not fully consumed.
		// Never decreases.
		PortionStart int
		// Append-only portion arena.
		Portions []Portion
		// Append-only staking position arena.
		Stakes []StakePosition
	}
)

// dailyReductions is the spendable percentage of a portion for ages of
// 1..8 elapsed days. Age 0 is worth the full 100%, anything older than the
// table is worth nothing.
var dailyReductions = []int{99, 97, 93, 85, 71, 48, 17, 0}

const dayMs = 86_400_000

func getAccount(ctx storage.Context, addr interop.Hash160) Account {
	data := storage.Get(ctx, accountKey(addr))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

func putAccount(ctx storage.Context, addr interop.Hash160, acc Account) {
	common.SetSerialized(ctx, accountKey(addr), acc)
}

func accountKey(addr interop.Hash160) []byte {
	return append([]byte{accPrefix}, addr...)
}

func decayWeight(ageDays int) int {
	if ageDays <= 0 {
		return 100
	}
	if ageDays > len(dailyReductions) {
		return 0
	}
	return dailyReductions[ageDays-1]
}

// effectiveBalance returns the decay-weighted sum of unconsumed portions,
// or the stored balance as is for exempt accounts.
func effectiveBalance(acc Account, now int) int {
	if acc.Exempt {
		return acc.Balance
	}

	total := 0
	for i := acc.PortionStart; i < len(acc.Portions); i++ {
		p := acc.Portions[i]
		total += p.Amount * decayWeight((now-p.CreatedAt)/dayMs) / 100
	}
	return total
}

// refresh settles accumulated decay of the account. The difference between
// the stored and the effective balance is split in two halves: one is burnt,
// the other is credited to the dividend pool (burnt as well if the pool is
// not configured yet, the supply invariant allows nothing else). Repeated
// calls without new elapsed time are no-ops.
func refresh(ctx storage.Context, addr interop.Hash160, now int) {
	acc := getAccount(ctx, addr)
	if acc.Exempt || acc.Balance == 0 || acc.PortionStart == len(acc.Portions) {
		return
	}

	eff := effectiveBalance(acc, now)
	if eff >= acc.Balance {
		return
	}

	shortfall := acc.Balance - eff
	burnt := shortfall / 2
	toPool := shortfall - burnt

	acc.Balance = eff
	putAccount(ctx, addr, acc)

	pool := common.GetHash160(ctx, dividendPoolKey)
	if pool == nil {
		burnt = shortfall
	} else {
		creditBalance(ctx, pool, toPool)
		runtime.Notify("Transfer", addr, pool, toPool)
	}

	reduceSupply(ctx, addr, burnt)
}

// consume spends the given amount of the effective balance, walking portions
// oldest-first. Fully spent portions are zeroed and the consumed-prefix
// cursor advances past them; the first partially spent portion is reduced by
// the inverse-weighted nominal equivalent. Returns false when the effective
// balance is not enough.
func consume(ctx storage.Context, addr interop.Hash160, amount, now int) bool {
	acc := getAccount(ctx, addr)
	if acc.Exempt {
		if acc.Balance < amount {
			return false
		}
		acc.Balance -= amount
		putAccount(ctx, addr, acc)
		return true
	}

	if effectiveBalance(acc, now) < amount {
		return false
	}

	remaining := amount
	for i := acc.PortionStart; i < len(acc.Portions) && remaining > 0; i++ {
		p := acc.Portions[i]
		w := decayWeight((now - p.CreatedAt) / dayMs)
		if w == 0 || p.Amount == 0 {
			continue
		}

		value := p.Amount * w / 100
		if value <= remaining {
			remaining -= value
			acc.Portions[i].Amount = 0
			continue
		}

		reduced := (remaining*100 + w - 1) / w
		if reduced > p.Amount {
			reduced = p.Amount
		}
		acc.Portions[i].Amount = p.Amount - reduced
		remaining = 0
	}

	for acc.PortionStart < len(acc.Portions) && acc.Portions[acc.PortionStart].Amount == 0 {
		acc.PortionStart++
	}

	acc.Balance -= amount
	if acc.Balance < 0 {
		acc.Balance = 0
	}
	putAccount(ctx, addr, acc)
	return true
}

// appendPortion credits the account with a fresh portion. Exempt accounts
// skip portion bookkeeping and get a plain balance increase.
func appendPortion(ctx storage.Context, addr interop.Hash160, amount, now int) {
	acc := getAccount(ctx, addr)
	acc.Balance += amount
	if !acc.Exempt {
		acc.Portions = append(acc.Portions, Portion{Amount: amount, CreatedAt: now})
	}
	putAccount(ctx, addr, acc)
}

func creditBalance(ctx storage.Context, addr interop.Hash160, amount int) {
	acc := getAccount(ctx, addr)
	acc.Balance += amount
	putAccount(ctx, addr, acc)
}

func reduceSupply(ctx storage.Context, from interop.Hash160, amount int) {
	if amount == 0 {
		return
	}
	supply := common.GetInt(ctx, supplyKey)
	if supply < amount {
		panic("negative supply after burn")
	}
	storage.Put(ctx, supplyKey, supply-amount)
	runtime.Notify("Transfer", from, interop.Hash160(nil), amount)
	runtime.Notify("Burn", from, amount)
}
