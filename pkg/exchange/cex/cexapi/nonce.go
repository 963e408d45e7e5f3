package cexapi

import (
	"strconv"
	"sync/atomic"
	"time"
)

// Nonce generates strictly increasing millisecond nonces.
// Calls within the same millisecond are bumped by one so every value is used once.
type Nonce struct {
	current int64
}

func NewNonce() *Nonce {
	return &Nonce{}
}

func (ng *Nonce) GetString() string {
	return strconv.FormatInt(ng.GetInt64(), 10)
}

func (ng *Nonce) GetInt64() int64 {
	for {
		current := atomic.LoadInt64(&ng.current)
		next := time.Now().UnixMilli()
		if next <= current {
			next = current + 1
		}

		if atomic.CompareAndSwapInt64(&ng.current, current, next) {
			return next
		}
	}
}
