/*
Package deflation implements the DeflationCoin contract.

DeflationCoin is a NEP-17 compatible token whose balances decay over time
unless the account is explicitly exempted. Every credit of a non-exempt
account creates a timestamped portion; a portion loses spendable weight day
by day following a fixed reduction table and is worth nothing after eight
elapsed days. Decay is settled lazily: reads weigh portions on the fly,
while transfers, stakes and the technical refresh call burn half of the
accumulated difference and move the other half to the dividend pool.

Transfers of non-exempt senders pay a commission. A sender with a referral
wallet pays 4.5%, half burnt and half credited to the wallet; otherwise the
commission is 5%, fully burnt until the dividend, marketing and technical
pools are all configured, and split between burning and the pools after
that.

Token holders can stake their balance into positions locked for 1 to 12
years. Any duration except 12 years diverts 1% of the stake into an extra
12-year position. Positions earn a monthly share of the dividend pool
proportional to their principal scaled by a weight of the years remaining
until maturity. Shares are settled against globally recomputed indicators:
the technical account periodically runs the initRecount/recount/
finishRecount sequence over the whole account population, which compounds
unclaimed entitlements into principals and rebuilds the weighting
indicators from a consistent snapshot. Matured positions are drained back
to the spendable balance by smoothUnlock in roughly thirty instalments per
lock year.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification emitted for
every value movement: the net transfer, commission pool legs, referral legs
and burns (with the empty receiver).

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification is emitted by approve.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification is emitted whenever tokens are destroyed: decay
settlement and burnt commission parts.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

StakeOpened notification is emitted by stake for every position created.

	StakeOpened:
	  - name: owner
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: years
	    type: Integer

StakeExtended notification is emitted by extendStaking.

	StakeExtended:
	  - name: owner
	    type: Hash160
	  - name: index
	    type: Integer
	  - name: years
	    type: Integer

DividendClaimed notification is emitted by claimDividends.

	DividendClaimed:
	  - name: owner
	    type: Hash160
	  - name: index
	    type: Integer
	  - name: amount
	    type: Integer

Unlock notification is emitted by smoothUnlock.

	Unlock:
	  - name: owner
	    type: Hash160
	  - name: index
	    type: Integer
	  - name: amount
	    type: Integer
*/
package deflation

/*
Contract storage model.

# Summary
Key-value storage format:
 - 's' -> int
   total token supply, reduced by every burn
 - 'o' -> interop.Hash160
   contract owner (administrative role)
 - 'x' -> interop.Hash160
   technical role account
 - 'd' -> interop.Hash160
   dividend pool account
 - 'm' -> interop.Hash160
   marketing pool account
 - 'h' -> interop.Hash160
   technical pool account
 - 'a' + interop.Hash160 -> std.Serialize(Account)
   balance, decay portions and staking positions of each token holder
   (Account is a structure defined in current package)
 - 'w' + interop.Hash160 + interop.Hash160 -> int
   owner/spender transfer allowance
 - 'g' -> std.Serialize(DividendState)
   global dividend indicators and the pool snapshot (DividendState is a
   structure defined in current package)

# Accounting
Account records are append-only: portions and staking positions are never
removed, consumption zeroes portions and advances the consumed-prefix
cursor, closed positions keep their index forever.
*/
