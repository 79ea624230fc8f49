package libsym

import (
	"github.com/dgraph-io/badger/v3"

	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// NewWordSet returns a map-backed VertexSet, the default for crystal walks.
//
// Words are keyed by their raw letter bytes, so membership probes on the
// walk's hot path hash the fixed-length byte sequence directly and allocate
// only when a new word is inserted.
func NewWordSet() symalg.VertexSet {
	return &wordSet{
		seen: make(map[string]struct{}, 64),
	}
}

type wordSet struct {
	seen  map[string]struct{}
	scrap []byte
}

func (set *wordSet) TryAdd(w symalg.Word) bool {
	key := set.scrap[:0]
	for _, c := range w {
		key = append(key, byte(c))
	}
	set.scrap = key[:0]

	if _, found := set.seen[string(key)]; found {
		return false
	}
	set.seen[string(key)] = struct{}{}
	return true
}

func (set *wordSet) Close() {
	set.seen = nil
}

// NewLSMWordSet returns a VertexSet backed by an in-memory badger LSM,
// trading per-probe speed for a visited set that does not live on the Go
// heap -- useful when a crystal's vertex count dwarfs available heap
// headroom.  Nothing is ever written to disk.
func NewLSMWordSet() symalg.VertexSet {
	return &lsmWordSet{}
}

type lsmWordSet struct {
	db *badger.DB
}

func (set *lsmWordSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmWordSet) TryAdd(w symalg.Word) bool {
	set.autoOpen()

	// Lead byte keeps the empty word's key non-empty.
	key := make([]byte, 0, len(w)+1)
	key = append(key, 0x01)
	for _, c := range w {
		key = append(key, byte(c))
	}

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmWordSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
