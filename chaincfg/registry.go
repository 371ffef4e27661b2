// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync"
)

// Registry holds the parameters of the main, test and regression test
// networks and publishes the one a process runs on.
//
// Every network is fully built and its genesis block verified before
// NewRegistry returns, so the parameters it hands out never change
// afterwards.  The only exception is RegTestParams.OverrideDeploymentWindow.
type Registry struct {
	nets    map[string]*Params
	names   []string
	regTest *RegTestParams

	// These maps are used to look up address and key prefixes of any
	// registered network.
	pubKeyHashAddrIDs map[byte]struct{}
	scriptHashAddrIDs map[byte]struct{}
	hdPrivToPubKeyIDs map[[4]byte][]byte

	mtx    sync.RWMutex
	active *Params
}

// NewRegistry builds and verifies the parameters of every network.  An error
// means the built-in configuration is corrupt and the process should refuse
// to start.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		nets:              make(map[string]*Params),
		pubKeyHashAddrIDs: make(map[byte]struct{}),
		scriptHashAddrIDs: make(map[byte]struct{}),
		hdPrivToPubKeyIDs: make(map[[4]byte][]byte),
	}

	mainNet, err := mainNetParams()
	if err != nil {
		return nil, err
	}
	if err := r.register(mainNet); err != nil {
		return nil, err
	}

	testNet, err := testNetParams()
	if err != nil {
		return nil, err
	}
	if err := r.register(testNet); err != nil {
		return nil, err
	}

	regTest, err := regTestParams()
	if err != nil {
		return nil, err
	}
	if err := r.register(regTest.Params); err != nil {
		return nil, err
	}
	r.regTest = regTest

	return r, nil
}

// register adds params to the registry.  Networks are keyed by name since
// all of them share the same wire magic.
func (r *Registry) register(params *Params) error {
	if _, ok := r.nets[params.Name]; ok {
		str := fmt.Sprintf("network %q is already registered",
			params.Name)
		return configError(ErrDuplicateNet, str)
	}
	r.nets[params.Name] = params
	r.names = append(r.names, params.Name)
	r.pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	r.scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	pubKeyID := params.HDPublicKeyID
	r.hdPrivToPubKeyIDs[params.HDPrivateKeyID] = pubKeyID[:]

	log.Debugf("Registered %s network (genesis %v, %d consensus rule "+
		"sets)", params.Name, params.GenesisHash,
		len(params.Consensus.snapshots))
	return nil
}

// Networks returns the names of the registered networks in registration
// order.
func (r *Registry) Networks() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Get returns the parameters of the named network.  An unknown name yields
// an ErrUnknownNetwork error.
func (r *Registry) Get(name string) (*Params, error) {
	params, ok := r.nets[name]
	if !ok {
		str := fmt.Sprintf("unknown network %q", name)
		return nil, configError(ErrUnknownNetwork, str)
	}
	return params, nil
}

// Select publishes the named network as the one this process runs on and
// returns it.  Selecting the already published network again returns the
// same instance.  Once a network is published, selecting another one fails
// with ErrAlreadySelected.  A failed call publishes nothing.
//
// This function is safe for concurrent access.
func (r *Registry) Select(name string) (*Params, error) {
	params, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.active != nil {
		if r.active != params {
			str := fmt.Sprintf("cannot select network %q, %q is "+
				"already selected", name, r.active.Name)
			return nil, configError(ErrAlreadySelected, str)
		}
		return r.active, nil
	}

	r.active = params
	log.Infof("Selected %s network", params.Name)
	return params, nil
}

// Current returns the network published by Select.  It panics when no
// network has been selected yet, since every caller depends on the chain
// identity.
//
// This function is safe for concurrent access.
func (r *Registry) Current() *Params {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if r.active == nil {
		panic("chaincfg: Current called before Select")
	}
	return r.active
}

// RegTest returns the regression test network together with its deployment
// override capability.
func (r *Registry) RegTest() *RegTestParams {
	return r.regTest
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsPubKeyHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, an ErrUnknownHDKeyID error will be returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		str := fmt.Sprintf("hd private key id %x is not 4 bytes", id)
		return nil, configError(ErrUnknownHDKeyID, str)
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	if !ok {
		str := fmt.Sprintf("unknown hd private key id %x", id)
		return nil, configError(ErrUnknownHDKeyID, str)
	}

	return pubBytes, nil
}
