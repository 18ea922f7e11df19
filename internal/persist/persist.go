// Package persist stores sparse per-chunk block overrides in an embedded
// LevelDB database, so edits survive a restart without generation needing
// to persist whole chunks (spec.md §6's optional persistence collaborator).
// Grounded on felipemarts-krakovia's pkg/blockchain/checkpoint.go
// (db.Put/Get keyed by a formatted string, leveldb.ErrNotFound handled as
// "nothing saved yet") and oriumgames-pile/provider.go's use of goleveldb
// as a Minecraft-style per-chunk store.
package persist

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"voxelcore/internal/voxel"
)

// Store persists sparse chunk overrides to an on-disk LevelDB database. It
// satisfies terrain.Overrides.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) the LevelDB database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// key encodes coord as a fixed 12-byte big-endian triple (X, then Y, then
// Z), so keys sort in a stable order by X, then Y, then Z.
func key(coord voxel.ChunkCoord) []byte {
	buf := make([]byte, 12)
	binary.BigEndian.PutUint32(buf[0:4], uint32(coord.X))
	binary.BigEndian.PutUint32(buf[4:8], uint32(coord.Y))
	binary.BigEndian.PutUint32(buf[8:12], uint32(coord.Z))
	return buf
}

// Load returns the saved local-index -> Block overrides for coord, or nil
// if nothing has been saved for it. It satisfies terrain.Overrides.
func (s *Store) Load(coord voxel.ChunkCoord) map[int]voxel.Block {
	data, err := s.db.Get(key(coord), nil)
	if err != nil {
		return nil
	}

	var overrides map[int]voxel.Block
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&overrides); err != nil {
		return nil
	}
	return overrides
}

// Save persists overrides for coord, replacing whatever was previously
// saved. Passing an empty map still writes a record, distinguishing "no
// edits" from "edits that happened to cancel out" is left to the caller;
// Save never deletes a key.
func (s *Store) Save(coord voxel.ChunkCoord, overrides map[int]voxel.Block) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(overrides); err != nil {
		return fmt.Errorf("persist: encode overrides for %+v: %w", coord, err)
	}
	if err := s.db.Put(key(coord), buf.Bytes(), nil); err != nil {
		return fmt.Errorf("persist: save %+v: %w", coord, err)
	}
	return nil
}

// Has reports whether overrides have been saved for coord.
func (s *Store) Has(coord voxel.ChunkCoord) bool {
	_, err := s.db.Get(key(coord), nil)
	return err == nil
}

// DiffAgainstGenerated compares a chunk's current contents against a fresh
// regeneration of the same coordinate and returns the sparse set of
// local-index -> Block differences, suitable for Save. This is how an
// edited chunk's overrides are computed without tracking every Set call.
func DiffAgainstGenerated(current, generated *voxel.Chunk) map[int]voxel.Block {
	overrides := make(map[int]voxel.Block)
	for i, b := range current.Blocks {
		if b != generated.Blocks[i] {
			overrides[i] = b
		}
	}
	return overrides
}

// IsNotFound reports whether err is the "no such key" sentinel from the
// underlying database, exposed so callers can distinguish a genuine I/O
// failure from an absent record without importing goleveldb directly.
func IsNotFound(err error) bool {
	return errors.Is(err, leveldb.ErrNotFound)
}
