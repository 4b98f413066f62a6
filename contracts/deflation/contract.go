package deflation

import (
	"github.com/deflation-coin/contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol.
	Symbol string
	// Amount of decimals.
	Decimals int
}

const (
	symbol   = "DEF"
	decimals = 18

	supplyKey    = 's'
	ownerKey     = 'o'
	technicalKey = 'x'

	dividendPoolKey  = 'd'
	marketingPoolKey = 'm'
	technicalPoolKey = 'h'

	accPrefix       = 'a'
	allowancePrefix = 'w'

	dividendStateKey = 'g'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:   symbol,
		Decimals: decimals,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner     interop.Hash160
		technical interop.Hash160
		supply    int
	})

	if len(args.owner) != interop.Hash160Len || len(args.technical) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if args.supply <= 0 {
		panic(common.ErrInvalidAmount)
	}

	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, technicalKey, args.technical)
	storage.Put(ctx, supplyKey, args.supply)

	// The whole float is minted to the owner. The owner is exempted from
	// decay, otherwise the supply would start evaporating before any
	// distribution happens.
	putAccount(ctx, args.owner, Account{Balance: args.supply, Exempt: true})

	runtime.Notify("Transfer", interop.Hash160(nil), args.owner, args.supply)
	runtime.Log("deflation contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner. Account state, staking positions and dividend
// indicators survive the logic swap.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckOwnerWitness(common.GetHash160(ctx, ownerKey))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("deflation contract updated")
}

// Symbol is a NEP-17 standard method that returns DeflationCoin token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of
// DeflationCoin balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of tokens
// not yet destroyed by decay, commission burns or refreshes.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns the effective
// (decay-weighted) balance of the account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return effectiveBalance(getAccount(ctx, account), runtime.GetTime())
}

// StoredBalanceOf returns the stored balance of the account as it was at the
// last settlement. For non-exempt accounts it can exceed the effective
// balance until the next refresh.
func StoredBalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, account).Balance
}

// Transfer is a NEP-17 standard method that moves tokens between accounts.
// Non-exempt senders spend their effective balance oldest portions first and
// pay a commission routed between burning, the configured pools and the
// sender's referral wallet. Can be invoked only by the account owner.
//
// Produces Transfer notifications for every value movement and Burn
// notifications for the burnt commission parts.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	return transferInternal(storage.GetContext(), from, to, amount)
}

// Approve allows the spender to transfer up to the given amount from the
// owner account via TransferFrom. Can be invoked only by the account owner.
func Approve(owner, spender interop.Hash160, amount int) {
	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}
	if len(owner) != interop.Hash160Len || len(spender) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	storage.Put(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
}

// Allowance returns the amount the spender is still allowed to transfer from
// the owner account.
func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

// TransferFrom moves tokens from one account to another using the allowance
// mechanism: the spender must have been approved by the sender for at least
// the transferred amount. The transfer itself follows the same commission
// and decay rules as Transfer.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}
	common.CheckOwnerWitness(spender)

	ctx := storage.GetContext()
	key := allowanceKey(from, spender)
	allowed := common.GetInt(ctx, key)
	if allowed < amount {
		panic(common.ErrInsufficientAllowance)
	}

	if !transferValue(ctx, from, to, amount) {
		return false
	}

	storage.Put(ctx, key, allowed-amount)
	return true
}

// SetTechnical assigns the technical role account. The role gates refresh,
// the recount sequence and smooth unlock. Can be invoked only by the
// contract owner.
func SetTechnical(account interop.Hash160) {
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	ctx := storage.GetContext()
	common.CheckOwnerWitness(common.GetHash160(ctx, ownerKey))
	storage.Put(ctx, technicalKey, account)
}

// SetDividendPool configures the dividend pool account and exempts it from
// decay. Can be invoked only by the contract owner.
func SetDividendPool(account interop.Hash160) {
	setPool(dividendPoolKey, account)
}

// SetMarketingPool configures the marketing pool account and exempts it from
// decay. Can be invoked only by the contract owner.
func SetMarketingPool(account interop.Hash160) {
	setPool(marketingPoolKey, account)
}

// SetTechnicalPool configures the technical pool account and exempts it from
// decay. Can be invoked only by the contract owner.
func SetTechnicalPool(account interop.Hash160) {
	setPool(technicalPoolKey, account)
}

// DividendPool returns the dividend pool account or nil when not configured.
func DividendPool() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), dividendPoolKey)
}

// MarketingPool returns the marketing pool account or nil when not
// configured.
func MarketingPool() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), marketingPoolKey)
}

// TechnicalPool returns the technical pool account or nil when not
// configured.
func TechnicalPool() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), technicalPoolKey)
}

// SetExempt switches the decay exemption flag of the account. Can be invoked
// only by the contract owner.
func SetExempt(account interop.Hash160, exempt bool) {
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	ctx := storage.GetContext()
	common.CheckOwnerWitness(common.GetHash160(ctx, ownerKey))

	acc := getAccount(ctx, account)
	acc.Exempt = exempt
	putAccount(ctx, account, acc)
}

// IsExempt returns true if the account is exempted from balance decay.
func IsExempt(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, account).Exempt
}

// SetReferral assigns a referral wallet to the account. Transfers of the
// account then pay a reduced commission, half of which goes to the wallet.
// Can be invoked only by the contract owner.
func SetReferral(account, wallet interop.Hash160) {
	if len(account) != interop.Hash160Len || len(wallet) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	ctx := storage.GetContext()
	common.CheckOwnerWitness(common.GetHash160(ctx, ownerKey))

	acc := getAccount(ctx, account)
	acc.Referral = wallet
	putAccount(ctx, account, acc)
}

// Refresh settles accumulated decay of the account: the stored balance drops
// to the effective one, half of the difference is burnt and half is credited
// to the dividend pool. Can be invoked only by the technical account; the
// same settlement runs implicitly before every transfer and stake.
func Refresh(account interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRoleWitness(common.GetHash160(ctx, technicalKey))
	refresh(ctx, account, runtime.GetTime())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func transferInternal(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	if !isUsableAddress(from) {
		runtime.Log("transfer: sender witness check failed")
		return false
	}
	return transferValue(ctx, from, to, amount)
}

func transferValue(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		runtime.Log("transfer: bad script hashes")
		return false
	}

	now := runtime.GetTime()
	refresh(ctx, from, now)

	if !consume(ctx, from, amount, now) {
		runtime.Log(common.ErrInsufficientBalance)
		return false
	}

	fee := 0
	if !getAccount(ctx, from).Exempt {
		fee = routeCommission(ctx, from, amount, now)
	}

	appendPortion(ctx, to, amount-fee, now)
	runtime.Notify("Transfer", from, to, amount-fee)
	return true
}

// routeCommission splits the transfer commission of a non-exempt sender and
// returns the total fee charged. With a referral wallet set the commission
// is 4.5%: half burnt, half credited to the wallet as an ordinary decaying
// portion. Without one it is 5%: fully burnt until all three pools are
// configured, otherwise 1% burnt, 1% to the dividend pool, 1% to the
// technical pool and the rest to the marketing pool.
func routeCommission(ctx storage.Context, from interop.Hash160, amount, now int) int {
	referral := getAccount(ctx, from).Referral
	if len(referral) == interop.Hash160Len {
		half := amount * 225 / 10000
		reduceSupply(ctx, from, half)
		appendPortion(ctx, referral, half, now)
		runtime.Notify("Transfer", from, referral, half)
		return half * 2
	}

	fee := amount * 5 / 100

	dividend := common.GetHash160(ctx, dividendPoolKey)
	marketing := common.GetHash160(ctx, marketingPoolKey)
	technical := common.GetHash160(ctx, technicalPoolKey)
	if dividend == nil || marketing == nil || technical == nil {
		reduceSupply(ctx, from, fee)
		return fee
	}

	share := amount / 100
	reduceSupply(ctx, from, share)
	creditBalance(ctx, dividend, share)
	runtime.Notify("Transfer", from, dividend, share)
	creditBalance(ctx, technical, share)
	runtime.Notify("Transfer", from, technical, share)
	// The marketing pool takes what is left of the fee, so rounding can
	// not leak supply.
	rest := fee - 3*share
	creditBalance(ctx, marketing, rest)
	runtime.Notify("Transfer", from, marketing, rest)
	return fee
}

func setPool(key byte, account interop.Hash160) {
	if len(account) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	ctx := storage.GetContext()
	common.CheckOwnerWitness(common.GetHash160(ctx, ownerKey))

	storage.Put(ctx, key, account)

	acc := getAccount(ctx, account)
	acc.Exempt = true
	putAccount(ctx, account, acc)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}

// isUsableAddress checks if the sender is either a signer of the transaction
// or the calling contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
