package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns an integer stored under the key or zero if the key is
// not set.
func GetInt(ctx storage.Context, key interface{}) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// GetHash160 returns an address stored under the key or nil if the key is
// not set.
func GetHash160(ctx storage.Context, key interface{}) interop.Hash160 {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.([]byte)
	}

	return nil
}
