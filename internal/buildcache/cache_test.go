// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package buildcache

import (
	"path/filepath"
	"testing"
)

func TestCachePutGetRoundTrip(t *testing.T) {
	for _, enc := range []Encoding{EncodingMsgPack, EncodingCBOR} {
		enc := enc
		t.Run(enc.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cache.db")
			c, err := Open(path, enc)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer c.Close()

			want := []uint64{1, 2, 3, 18446744073709551615}
			if err := c.Put("poly:5:res3", want); err != nil {
				t.Fatalf("Put: %v", err)
			}

			var got []uint64
			ok, err := c.Get("poly:5:res3", &got)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !ok {
				t.Fatal("Get reported not found")
			}
			if len(got) != len(want) {
				t.Fatalf("Get = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("element %d = %d, want %d", i, got[i], want[i])
				}
			}
		})
	}
}

func TestCacheGetMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := Open(path, EncodingMsgPack)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	var v []uint64
	ok, err := c.Get("missing", &v)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get(missing) reported found")
	}
}

func TestEncodingFromString(t *testing.T) {
	if enc, err := EncodingFromString("msgpack"); err != nil || enc != EncodingMsgPack {
		t.Errorf("EncodingFromString(msgpack) = (%v, %v), want (EncodingMsgPack, nil)", enc, err)
	}
	if enc, err := EncodingFromString("cbor"); err != nil || enc != EncodingCBOR {
		t.Errorf("EncodingFromString(cbor) = (%v, %v), want (EncodingCBOR, nil)", enc, err)
	}
	if _, err := EncodingFromString("bogus"); err == nil {
		t.Error("EncodingFromString(bogus) = nil error, want error")
	}
}
