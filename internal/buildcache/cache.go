// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

// Package buildcache is a scratch store the build-time indexer
// (cmd/tzbuild) uses to avoid recomputing each polygon's H3 cell cover on
// every rebuild. Cached values are framed with a pluggable encoding
// (msgpack or cbor) and snappy-compressed before being stored in a bbolt
// bucket keyed by polygon id.
package buildcache

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("polycover")

// Encoding selects how cache values are framed.
type Encoding int

const (
	EncodingMsgPack Encoding = iota
	EncodingCBOR
)

func (e Encoding) String() string {
	if e == EncodingCBOR {
		return "cbor"
	}
	return "msgpack"
}

func EncodingFromString(s string) (Encoding, error) {
	switch s {
	case "msgpack":
		return EncodingMsgPack, nil
	case "cbor":
		return EncodingCBOR, nil
	default:
		return 0, fmt.Errorf("buildcache: unknown encoding %q", s)
	}
}

// Cache is an incremental build-time KV store: string key (polygon id plus
// build params, e.g. "poly:5:res3") -> arbitrary cached value,
// snappy-compressed after framing.
type Cache struct {
	db  *bolt.DB
	enc Encoding
}

func Open(path string, enc Encoding) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("buildcache: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("buildcache: init bucket: %w", err)
	}
	return &Cache{db: db, enc: enc}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

func (c *Cache) marshal(v any) ([]byte, error) {
	switch c.enc {
	case EncodingMsgPack:
		return msgpack.Marshal(v)
	case EncodingCBOR:
		return cbor.Marshal(v)
	default:
		return nil, errors.New("buildcache: unknown encoding")
	}
}

func (c *Cache) unmarshal(buf []byte, v any) error {
	switch c.enc {
	case EncodingMsgPack:
		return msgpack.Unmarshal(buf, v)
	case EncodingCBOR:
		return cbor.Unmarshal(buf, v)
	default:
		return errors.New("buildcache: unknown encoding")
	}
}

// Put stores v under key, framed with the cache's encoding and
// snappy-compressed.
func (c *Cache) Put(key string, v any) error {
	framed, err := c.marshal(v)
	if err != nil {
		return fmt.Errorf("buildcache: marshal %s: %w", key, err)
	}
	compressed := snappy.Encode(nil, framed)
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), compressed)
	})
}

// Get loads the value stored under key into v, reporting whether it was
// present.
func (c *Cache) Get(key string, v any) (bool, error) {
	var compressed []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName).Get([]byte(key))
		if b != nil {
			compressed = append([]byte(nil), b...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if compressed == nil {
		return false, nil
	}
	framed, err := snappy.Decode(nil, compressed)
	if err != nil {
		return false, fmt.Errorf("buildcache: decompress %s: %w", key, err)
	}
	if err := c.unmarshal(framed, v); err != nil {
		return false, fmt.Errorf("buildcache: unmarshal %s: %w", key, err)
	}
	return true, nil
}
