// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// genesisCoinbaseScriptSig builds the input scriptSig every genesis
// transaction uses: PUSH(486604799) PUSH(CScriptNum(4)) PUSH(timestamp),
// exactly as spec.md §4.3 requires. 486604799 is 0x1d00ffff, the mainnet
// genesis difficulty reused here as a fixed marker regardless of the
// network's actual genesis bits, matching the source's CreateGenesisBlock.
func genesisCoinbaseScriptSig(timestamp string) []byte {
	b := txscript.NewScriptBuilder()
	b.AddInt64(486604799)
	// CScriptNum(4) is a one-byte data push (0x01 0x04); AddInt64 and
	// AddData would both emit the small-integer opcode OP_4 instead.
	b.AddOps([]byte{txscript.OP_DATA_1, 4})
	b.AddData([]byte(timestamp))
	script, err := b.Script()
	if err != nil {
		// A malformed literal timestamp constant is a programming
		// error caught at process start, not a runtime condition.
		panic("chaincfg: failed to build genesis scriptSig: " + err.Error())
	}
	return script
}

// createGenesisBlock builds the genesis block for one network: a single
// coinbase transaction paying reward to pkScript, wrapped in a block header
// with the given time/nonce/bits/version and a zero PrevBlock. This is the
// Go counterpart of the source's two-argument CreateGenesisBlock overload,
// generalized to take the output script as a parameter per spec.md §4.3
// rather than hardcoding OP_CHECKSIG.
func createGenesisBlock(timestamp string, pkScript []byte, blockTime uint32, nonce uint32, bits uint32, version int32, reward int64) *wire.MsgBlock {
	coinbase := &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: 0xffffffff,
			},
			SignatureScript: genesisCoinbaseScriptSig(timestamp),
			Sequence:        0xffffffff,
		}},
		TxOut: []*wire.TxOut{{
			Value:    reward,
			PkScript: pkScript,
		}},
		LockTime: 0,
	}

	header := wire.BlockHeader{
		Version:    version,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: coinbase.TxHash(),
		Timestamp:  time.Unix(int64(blockTime), 0).UTC(),
		Bits:       bits,
		Nonce:      nonce,
	}

	return &wire.MsgBlock{
		Header:       header,
		Transactions: []*wire.MsgTx{coinbase},
	}
}

// genesisOutputScript is the mainnet/testnet/regtest output script PUSH("0x0")
// OP_CHECKSIG from spec.md §6: OP_0 pushes the empty/zero data element onto
// the stack in place of a pubkey, followed by OP_CHECKSIG. All three Prux
// networks share this literal script; only the timestamp, time, nonce,
// bits, version, and reward vary.
var genesisOutputScript = []byte{txscript.OP_0, txscript.OP_CHECKSIG}

const genesisTimestamp = "The coin was developed in Switzerland by a capitalist, who wants to move the world on 07/27/14"

// CreateGenesisBlock is the exported entry point other packages (and tests)
// use to construct a network's genesis block, parameterized exactly as
// spec.md §4.3 describes: timestamp string, output script, time, nonce,
// bits, version, reward.
func CreateGenesisBlock(timestamp string, pkScript []byte, blockTime, nonce, bits uint32, version int32, reward int64) *wire.MsgBlock {
	return createGenesisBlock(timestamp, pkScript, blockTime, nonce, bits, version, reward)
}
