// Package deflation contains RPC wrappers for DeflationCoin contract.
package deflation

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// DeflationDividendState is a contract-specific deflation.DividendState type used by its methods.
type DeflationDividendState struct {
	BetaIndicator *big.Int
	BetaUpdateAccumulator *big.Int
	BetaPoDIndicator *big.Int
	PoolSnapshot *big.Int
	Active bool
}

// DeflationStakePosition is a contract-specific deflation.StakePosition type used by its methods.
type DeflationStakePosition struct {
	InitialAmount *big.Int
	Amount *big.Int
	FinishedAmount *big.Int
	StartTime *big.Int
	LockYears *big.Int
	LastClaimedPeriod *big.Int
	ClaimedPrincipal *big.Int
	ClaimedDividend *big.Int
}

// ApprovalEvent represents "Approval" event emitted by the contract.
type ApprovalEvent struct {
	Owner util.Uint160
	Spender util.Uint160
	Amount *big.Int
}

// BurnEvent represents "Burn" event emitted by the contract.
type BurnEvent struct {
	From util.Uint160
	Amount *big.Int
}

// StakeOpenedEvent represents "StakeOpened" event emitted by the contract.
type StakeOpenedEvent struct {
	Owner util.Uint160
	Amount *big.Int
	Years *big.Int
}

// StakeExtendedEvent represents "StakeExtended" event emitted by the contract.
type StakeExtendedEvent struct {
	Owner util.Uint160
	Index *big.Int
	Years *big.Int
}

// DividendClaimedEvent represents "DividendClaimed" event emitted by the contract.
type DividendClaimedEvent struct {
	Owner util.Uint160
	Index *big.Int
	Amount *big.Int
}

// UnlockEvent represents "Unlock" event emitted by the contract.
type UnlockEvent struct {
	Owner util.Uint160
	Index *big.Int
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// CalculateDividends invokes `calculateDividends` method of contract.
func (c *ContractReader) CalculateDividends(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateDividends", account))
}

// DividendPool invokes `dividendPool` method of contract.
func (c *ContractReader) DividendPool() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "dividendPool"))
}

// GetDividendState invokes `getDividendState` method of contract.
func (c *ContractReader) GetDividendState() (*DeflationDividendState, error) {
	return itemToDeflationDividendState(unwrap.Item(c.invoker.Call(c.hash, "getDividendState")))
}

// GetStakes invokes `getStakes` method of contract.
func (c *ContractReader) GetStakes(owner util.Uint160) ([]*DeflationStakePosition, error) {
	return func (item stackitem.Item, err error) ([]*DeflationStakePosition, error) {
		if err != nil {
			return nil, err
		}
		items, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*DeflationStakePosition, len(items))
		for i := range items {
			res[i], err = itemToDeflationStakePosition(items[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "getStakes", owner)))
}

// IsExempt invokes `isExempt` method of contract.
func (c *ContractReader) IsExempt(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isExempt", account))
}

// MarketingPool invokes `marketingPool` method of contract.
func (c *ContractReader) MarketingPool() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "marketingPool"))
}

// StoredBalanceOf invokes `storedBalanceOf` method of contract.
func (c *ContractReader) StoredBalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "storedBalanceOf", account))
}

// TechnicalPool invokes `technicalPool` method of contract.
func (c *ContractReader) TechnicalPool() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "technicalPool"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// YearWeightOf invokes `yearWeightOf` method of contract.
func (c *ContractReader) YearWeightOf(owner util.Uint160, index *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "yearWeightOf", owner, index))
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", owner, spender, amount)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", owner, spender, amount)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, owner, spender, amount)
}

// ClaimDividends creates a transaction invoking `claimDividends` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimDividends(owner util.Uint160, index *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimDividends", owner, index, amount)
}

// ClaimDividendsTransaction creates a transaction invoking `claimDividends` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimDividendsTransaction(owner util.Uint160, index *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimDividends", owner, index, amount)
}

// ClaimDividendsUnsigned creates a transaction invoking `claimDividends` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimDividendsUnsigned(owner util.Uint160, index *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimDividends", nil, owner, index, amount)
}

// ExtendStaking creates a transaction invoking `extendStaking` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ExtendStaking(owner util.Uint160, index *big.Int, newYears *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "extendStaking", owner, index, newYears)
}

// ExtendStakingTransaction creates a transaction invoking `extendStaking` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ExtendStakingTransaction(owner util.Uint160, index *big.Int, newYears *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "extendStaking", owner, index, newYears)
}

// ExtendStakingUnsigned creates a transaction invoking `extendStaking` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ExtendStakingUnsigned(owner util.Uint160, index *big.Int, newYears *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "extendStaking", nil, owner, index, newYears)
}

// FinishRecount creates a transaction invoking `finishRecount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FinishRecount() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "finishRecount")
}

// FinishRecountTransaction creates a transaction invoking `finishRecount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FinishRecountTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "finishRecount")
}

// FinishRecountUnsigned creates a transaction invoking `finishRecount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FinishRecountUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "finishRecount", nil)
}

// InitRecount creates a transaction invoking `initRecount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitRecount() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initRecount")
}

// InitRecountTransaction creates a transaction invoking `initRecount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitRecountTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initRecount")
}

// InitRecountUnsigned creates a transaction invoking `initRecount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitRecountUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initRecount", nil)
}

// Recount creates a transaction invoking `recount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Recount(accounts []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recount", accounts)
}

// RecountTransaction creates a transaction invoking `recount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecountTransaction(accounts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recount", accounts)
}

// RecountUnsigned creates a transaction invoking `recount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecountUnsigned(accounts []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recount", nil, accounts)
}

// Refresh creates a transaction invoking `refresh` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Refresh(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "refresh", account)
}

// RefreshTransaction creates a transaction invoking `refresh` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RefreshTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "refresh", account)
}

// RefreshUnsigned creates a transaction invoking `refresh` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RefreshUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "refresh", nil, account)
}

// SetDividendPool creates a transaction invoking `setDividendPool` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetDividendPool(pool util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setDividendPool", pool)
}

// SetDividendPoolTransaction creates a transaction invoking `setDividendPool` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetDividendPoolTransaction(pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setDividendPool", pool)
}

// SetDividendPoolUnsigned creates a transaction invoking `setDividendPool` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetDividendPoolUnsigned(pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setDividendPool", nil, pool)
}

// SetExempt creates a transaction invoking `setExempt` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetExempt(account util.Uint160, exempt bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setExempt", account, exempt)
}

// SetExemptTransaction creates a transaction invoking `setExempt` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetExemptTransaction(account util.Uint160, exempt bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setExempt", account, exempt)
}

// SetExemptUnsigned creates a transaction invoking `setExempt` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetExemptUnsigned(account util.Uint160, exempt bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setExempt", nil, account, exempt)
}

// SetMarketingPool creates a transaction invoking `setMarketingPool` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMarketingPool(pool util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMarketingPool", pool)
}

// SetMarketingPoolTransaction creates a transaction invoking `setMarketingPool` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMarketingPoolTransaction(pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMarketingPool", pool)
}

// SetMarketingPoolUnsigned creates a transaction invoking `setMarketingPool` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMarketingPoolUnsigned(pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMarketingPool", nil, pool)
}

// SetReferral creates a transaction invoking `setReferral` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetReferral(account util.Uint160, referral util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setReferral", account, referral)
}

// SetReferralTransaction creates a transaction invoking `setReferral` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetReferralTransaction(account util.Uint160, referral util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setReferral", account, referral)
}

// SetReferralUnsigned creates a transaction invoking `setReferral` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetReferralUnsigned(account util.Uint160, referral util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setReferral", nil, account, referral)
}

// SetTechnical creates a transaction invoking `setTechnical` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTechnical(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTechnical", account)
}

// SetTechnicalTransaction creates a transaction invoking `setTechnical` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTechnicalTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTechnical", account)
}

// SetTechnicalUnsigned creates a transaction invoking `setTechnical` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTechnicalUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTechnical", nil, account)
}

// SetTechnicalPool creates a transaction invoking `setTechnicalPool` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTechnicalPool(pool util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTechnicalPool", pool)
}

// SetTechnicalPoolTransaction creates a transaction invoking `setTechnicalPool` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTechnicalPoolTransaction(pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTechnicalPool", pool)
}

// SetTechnicalPoolUnsigned creates a transaction invoking `setTechnicalPool` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTechnicalPoolUnsigned(pool util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTechnicalPool", nil, pool)
}

// SmoothUnlock creates a transaction invoking `smoothUnlock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SmoothUnlock(owner util.Uint160, index *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "smoothUnlock", owner, index)
}

// SmoothUnlockTransaction creates a transaction invoking `smoothUnlock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SmoothUnlockTransaction(owner util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "smoothUnlock", owner, index)
}

// SmoothUnlockUnsigned creates a transaction invoking `smoothUnlock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SmoothUnlockUnsigned(owner util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "smoothUnlock", nil, owner, index)
}

// Stake creates a transaction invoking `stake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Stake(owner util.Uint160, amount *big.Int, years *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "stake", owner, amount, years)
}

// StakeTransaction creates a transaction invoking `stake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StakeTransaction(owner util.Uint160, amount *big.Int, years *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "stake", owner, amount, years)
}

// StakeUnsigned creates a transaction invoking `stake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StakeUnsigned(owner util.Uint160, amount *big.Int, years *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "stake", nil, owner, amount, years)
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, from, to, amount, data)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToDeflationDividendState converts stack item into *DeflationDividendState.
func itemToDeflationDividendState(item stackitem.Item, err error) (*DeflationDividendState, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DeflationDividendState)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DeflationDividendState from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DeflationDividendState) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.BetaIndicator, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BetaIndicator: %w", err)
	}

	index++
	res.BetaUpdateAccumulator, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BetaUpdateAccumulator: %w", err)
	}

	index++
	res.BetaPoDIndicator, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BetaPoDIndicator: %w", err)
	}

	index++
	res.PoolSnapshot, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PoolSnapshot: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// itemToDeflationStakePosition converts stack item into *DeflationStakePosition.
func itemToDeflationStakePosition(item stackitem.Item, err error) (*DeflationStakePosition, error) {
	if err != nil {
		return nil, err
	}
	var res = new(DeflationStakePosition)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of DeflationStakePosition from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *DeflationStakePosition) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.InitialAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field InitialAmount: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.FinishedAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FinishedAmount: %w", err)
	}

	index++
	res.StartTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StartTime: %w", err)
	}

	index++
	res.LockYears, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LockYears: %w", err)
	}

	index++
	res.LastClaimedPeriod, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastClaimedPeriod: %w", err)
	}

	index++
	res.ClaimedPrincipal, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ClaimedPrincipal: %w", err)
	}

	index++
	res.ClaimedDividend, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ClaimedDividend: %w", err)
	}

	return nil
}

// ApprovalEventsFromApplicationLog retrieves a set of all emitted events
// with "Approval" name from the provided [result.ApplicationLog].
func ApprovalEventsFromApplicationLog(log *result.ApplicationLog) ([]*ApprovalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ApprovalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Approval" {
				continue
			}
			event := new(ApprovalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ApprovalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ApprovalEvent or
// returns an error if it's not possible to do to so.
func (e *ApprovalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Spender, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Spender: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// BurnEventsFromApplicationLog retrieves a set of all emitted events
// with "Burn" name from the provided [result.ApplicationLog].
func BurnEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BurnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Burn" {
				continue
			}
			event := new(BurnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BurnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BurnEvent or
// returns an error if it's not possible to do to so.
func (e *BurnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// StakeOpenedEventsFromApplicationLog retrieves a set of all emitted events
// with "StakeOpened" name from the provided [result.ApplicationLog].
func StakeOpenedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeOpenedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeOpenedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StakeOpened" {
				continue
			}
			event := new(StakeOpenedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeOpenedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeOpenedEvent or
// returns an error if it's not possible to do to so.
func (e *StakeOpenedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Years, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Years: %w", err)
	}

	return nil
}

// StakeExtendedEventsFromApplicationLog retrieves a set of all emitted events
// with "StakeExtended" name from the provided [result.ApplicationLog].
func StakeExtendedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeExtendedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeExtendedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StakeExtended" {
				continue
			}
			event := new(StakeExtendedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeExtendedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeExtendedEvent or
// returns an error if it's not possible to do to so.
func (e *StakeExtendedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Years, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Years: %w", err)
	}

	return nil
}

// DividendClaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "DividendClaimed" name from the provided [result.ApplicationLog].
func DividendClaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DividendClaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DividendClaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DividendClaimed" {
				continue
			}
			event := new(DividendClaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DividendClaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DividendClaimedEvent or
// returns an error if it's not possible to do to so.
func (e *DividendClaimedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// UnlockEventsFromApplicationLog retrieves a set of all emitted events
// with "Unlock" name from the provided [result.ApplicationLog].
func UnlockEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnlockEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnlockEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unlock" {
				continue
			}
			event := new(UnlockEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnlockEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnlockEvent or
// returns an error if it's not possible to do to so.
func (e *UnlockEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
