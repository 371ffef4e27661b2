// Copyright (c) 2026 The boskad developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"reflect"
	"sync"
	"testing"
)

// newTestRegistry returns a freshly built registry.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: unexpected error: %v", err)
	}
	return reg
}

// TestRegistryNetworks ensures the canonical networks are registered in order.
func TestRegistryNetworks(t *testing.T) {
	reg := newTestRegistry(t)
	want := []string{"main", "test", "regtest"}
	if got := reg.Networks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Networks: got %v, want %v", got, want)
	}

	for _, name := range want {
		p, err := reg.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): unexpected error: %v", name, err)
		}
		if p.Name != name {
			t.Errorf("Get(%q): got network %q", name, p.Name)
		}
	}
	if reg.RegTest().Params != mustGet(t, reg, "regtest") {
		t.Errorf("RegTest does not wrap the registered regtest network")
	}
}

// TestRegistryUnknown ensures unknown names are reported and publish nothing.
func TestRegistryUnknown(t *testing.T) {
	reg := newTestRegistry(t)

	for _, name := range []string{"", "mainnet-typo", "MAIN", "simnet"} {
		if _, err := reg.Get(name); !IsErrorCode(err, ErrUnknownNetwork) {
			t.Errorf("Get(%q): got error %v, want %v", name, err,
				ErrUnknownNetwork)
		}
		if _, err := reg.Select(name); !IsErrorCode(err, ErrUnknownNetwork) {
			t.Errorf("Select(%q): got error %v, want %v", name, err,
				ErrUnknownNetwork)
		}
	}

	// Nothing was published, so any network can still be selected.
	if _, err := reg.Select("test"); err != nil {
		t.Fatalf("Select after failures: unexpected error: %v", err)
	}
}

// TestRegistrySelect tests the one time selection lifecycle.
func TestRegistrySelect(t *testing.T) {
	reg := newTestRegistry(t)

	first, err := reg.Select("main")
	if err != nil {
		t.Fatalf("Select: unexpected error: %v", err)
	}
	second, err := reg.Select("main")
	if err != nil {
		t.Fatalf("second Select: unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("Select returned distinct instances")
	}
	if reg.Current() != first {
		t.Fatalf("Current does not return the selected network")
	}

	if _, err := reg.Select("regtest"); !IsErrorCode(err, ErrAlreadySelected) {
		t.Fatalf("Select of another network: got error %v, want %v",
			err, ErrAlreadySelected)
	}
	if reg.Current() != first {
		t.Fatalf("failed Select changed the current network")
	}
}

// TestRegistryCurrentBeforeSelect ensures Current panics without a selected
// network.
func TestRegistryCurrentBeforeSelect(t *testing.T) {
	reg := newTestRegistry(t)

	defer func() {
		if recover() == nil {
			t.Fatal("Current did not panic before Select")
		}
	}()
	reg.Current()
}

// TestRegistryConcurrentSelect ensures concurrent selection publishes exactly
// one network.
func TestRegistryConcurrentSelect(t *testing.T) {
	reg := newTestRegistry(t)
	names := []string{"main", "test", "regtest"}

	var (
		wg      sync.WaitGroup
		mtx     sync.Mutex
		results = make(map[*Params]int)
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			p, err := reg.Select(name)
			if err != nil {
				return
			}
			mtx.Lock()
			results[p]++
			mtx.Unlock()
		}(names[i%len(names)])
	}
	wg.Wait()

	if len(results) != 1 {
		t.Fatalf("%d distinct networks were published", len(results))
	}
	for p := range results {
		if reg.Current() != p {
			t.Fatalf("Current is not the published network")
		}
	}
}

// TestRegistryIndependent ensures registries do not share selection state.
func TestRegistryIndependent(t *testing.T) {
	a := newTestRegistry(t)
	b := newTestRegistry(t)

	if _, err := a.Select("main"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := b.Select("test"); err != nil {
		t.Fatalf("Select on second registry: %v", err)
	}
	if a.Current().Name != "main" || b.Current().Name != "test" {
		t.Fatalf("registries share selection state")
	}
}

// TestRegisterDuplicate ensures a network name can only be registered once.
func TestRegisterDuplicate(t *testing.T) {
	reg := newTestRegistry(t)
	err := reg.register(mustGet(t, reg, "main"))
	if !IsErrorCode(err, ErrDuplicateNet) {
		t.Fatalf("register: got error %v, want %v", err, ErrDuplicateNet)
	}
}

// TestRegistryPrefixes tests the address and extended key prefix lookups.
func TestRegistryPrefixes(t *testing.T) {
	reg := newTestRegistry(t)

	for _, id := range []byte{12, 13, 47} {
		if !reg.IsPubKeyHashAddrID(id) {
			t.Errorf("IsPubKeyHashAddrID(%d): got false", id)
		}
	}
	for _, id := range []byte{8, 9, 5} {
		if !reg.IsScriptHashAddrID(id) {
			t.Errorf("IsScriptHashAddrID(%d): got false", id)
		}
	}
	if reg.IsPubKeyHashAddrID(0) || reg.IsScriptHashAddrID(0) {
		t.Errorf("bitcoin prefixes are accepted")
	}

	tests := []struct {
		priv []byte
		pub  []byte
	}{
		{[]byte{0x04, 0x88, 0xad, 0xe4}, []byte{0x04, 0x88, 0xb2, 0x1e}},
		{[]byte{0x02, 0xfa, 0xc3, 0x98}, []byte{0x02, 0xfa, 0xca, 0xfd}},
	}
	for _, test := range tests {
		pub, err := reg.HDPrivateKeyToPublicKeyID(test.priv)
		if err != nil {
			t.Errorf("HDPrivateKeyToPublicKeyID(%x): %v", test.priv, err)
			continue
		}
		if !bytes.Equal(pub, test.pub) {
			t.Errorf("HDPrivateKeyToPublicKeyID(%x): got %x, want %x",
				test.priv, pub, test.pub)
		}
	}

	for _, id := range [][]byte{nil, {0x04, 0x88, 0xad}, {1, 2, 3, 4}} {
		_, err := reg.HDPrivateKeyToPublicKeyID(id)
		if !IsErrorCode(err, ErrUnknownHDKeyID) {
			t.Errorf("HDPrivateKeyToPublicKeyID(%x): got error %v, "+
				"want %v", id, err, ErrUnknownHDKeyID)
		}
	}
}

func mustGet(t *testing.T, reg *Registry, name string) *Params {
	t.Helper()
	p, err := reg.Get(name)
	if err != nil {
		t.Fatalf("Get(%q): %v", name, err)
	}
	return p
}
