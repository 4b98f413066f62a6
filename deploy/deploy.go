// Package deploy provides a procedure synchronizing the DeflationCoin
// contract with a Neo blockchain network: the contract is deployed if it is
// missing and updated if the local build is newer than the on-chain one.
package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services of a particular Neo blockchain network required
// for the deployment procedure.
type Blockchain interface {
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups the parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local account used for transaction signing (must be unlocked). The
	// contract address is a function of this account, so redeployments must
	// use the same one.
	LocalAccount *wallet.Account

	NEF      nef.File
	Manifest manifest.Manifest

	// Contract owner. Receives the initial supply and administrative rights.
	Owner util.Uint160
	// Technical wallet allowed to run service operations.
	Technical util.Uint160
	// Tokens minted to the owner on the first deployment.
	InitialSupply int64
}

// Deploy synchronizes the DeflationCoin contract represented by given
// Prm.NEF and Prm.Manifest with the chain and returns its on-chain address.
// If the contract is already deployed, Deploy tries to update it: the
// contract itself rejects downgrades and same-version updates.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	mgmt := management.New(act)

	addr := state.CreateContractHash(act.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	_, err = prm.Blockchain.GetContractStateByHash(addr)
	if err != nil {
		if !strings.Contains(err.Error(), "Unknown contract") {
			return util.Uint160{}, fmt.Errorf("read on-chain state of the contract: %w", err)
		}

		prm.Logger.Info("contract is missing on the chain, deploying...", zap.Stringer("address", addr))

		deployArgs := []any{prm.Owner, prm.Technical, prm.InitialSupply}

		txID, vub, err := mgmt.Deploy(&prm.NEF, &prm.Manifest, deployArgs)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("send transaction deploying the contract: %w", err)
		}

		prm.Logger.Info("transaction deploying the contract has been sent, waiting...",
			zap.Stringer("tx", txID), zap.Uint32("vub", vub))

		res, err := act.Wait(txID, vub, nil)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("wait for deploy transaction: %w", err)
		} else if res.VMState.HasFlag(vmstate.Fault) {
			return util.Uint160{}, fmt.Errorf("deploy transaction failed: %s", res.FaultException)
		}

		prm.Logger.Info("contract successfully deployed", zap.Stringer("address", addr))

		return addr, nil
	}

	prm.Logger.Info("contract is already deployed, updating...", zap.Stringer("address", addr))

	nefBytes, err := prm.NEF.Bytes()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode NEF of the contract: %w", err)
	}

	manifestBytes, err := json.Marshal(prm.Manifest)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode manifest of the contract: %w", err)
	}

	txID, vub, err := act.SendCall(addr, "update", nefBytes, manifestBytes, nil)
	if err != nil {
		if strings.Contains(err.Error(), "has already been updated") {
			prm.Logger.Info("contract is already up-to-date", zap.Stringer("address", addr))
			return addr, nil
		}
		return util.Uint160{}, fmt.Errorf("send transaction updating the contract: %w", err)
	}

	prm.Logger.Info("transaction updating the contract has been sent, waiting...",
		zap.Stringer("tx", txID), zap.Uint32("vub", vub))

	res, err := act.Wait(txID, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for update transaction: %w", err)
	} else if res.VMState.HasFlag(vmstate.Fault) {
		if strings.Contains(res.FaultException, "has already been updated") {
			prm.Logger.Info("contract is already up-to-date", zap.Stringer("address", addr))
			return addr, nil
		}
		return util.Uint160{}, fmt.Errorf("update transaction failed: %s", res.FaultException)
	}

	prm.Logger.Info("contract successfully updated", zap.Stringer("address", addr))

	return addr, nil
}

