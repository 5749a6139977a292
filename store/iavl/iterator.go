package iavl

import (
	"sync"

	"github.com/carbonvault/vault/store"
)

// lazyIterator pulls data out of an iavl range scan on demand. The scan
// runs in its own goroutine and blocks until the consumer asks for the
// next item or closes the iterator.
type lazyIterator struct {
	data    store.Model
	hasMore bool
	read    chan store.Model
	stop    chan struct{}
	once    sync.Once
}

var _ store.Iterator = (*lazyIterator)(nil)

func newLazyIterator() *lazyIterator {
	return &lazyIterator{
		read: make(chan store.Model),
		stop: make(chan struct{}),
	}
}

// add is the callback handed to the iavl IterateRange call. Returning true
// aborts the scan.
func (i *lazyIterator) add(key []byte, value []byte) bool {
	m := store.Model{Key: key, Value: value}
	select {
	case i.read <- m:
		return false
	case <-i.stop:
		return true
	}
}

// finish marks the end of the data stream. Must be called by the producer
// once the scan is complete, aborted or not.
func (i *lazyIterator) finish() {
	close(i.read)
}

func (i *lazyIterator) Next() error {
	i.data, i.hasMore = <-i.read
	return nil
}

func (i *lazyIterator) Valid() bool {
	return i.hasMore
}

func (i *lazyIterator) Key() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Key
}

func (i *lazyIterator) Value() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Value
}

// Close releases the iterator and unblocks the producing goroutine.
func (i *lazyIterator) Close() {
	i.once.Do(func() {
		close(i.stop)
	})
	i.hasMore = false
}
