package service

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type MemoryService struct {
	mu    sync.Mutex
	Slots map[string]interface{}
}

func NewMemoryService() *MemoryService {
	return &MemoryService{
		Slots: make(map[string]interface{}),
	}
}

func (s *MemoryService) NewStore(id string, subIDs ...string) Store {
	key := strings.Join(append([]string{id}, subIDs...), ":")
	return &MemoryStore{
		Key:    key,
		memory: s,
	}
}

type MemoryStore struct {
	Key    string
	memory *MemoryService
}

func (store *MemoryStore) Save(val interface{}) error {
	store.memory.mu.Lock()
	defer store.memory.mu.Unlock()

	store.memory.Slots[store.Key] = val
	return nil
}

// Load copies the saved value into val, which must be a pointer to the saved type.
// Values saved as pointers are dereferenced.
func (store *MemoryStore) Load(val interface{}) error {
	store.memory.mu.Lock()
	data, ok := store.memory.Slots[store.Key]
	store.memory.mu.Unlock()

	if !ok {
		return ErrPersistenceNotExists
	}

	v := reflect.ValueOf(val)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("memory store %s: load target must be a non-nil pointer, got %T", store.Key, val)
	}

	dataRV := reflect.ValueOf(data)
	if dataRV.Kind() == reflect.Ptr && dataRV.Type() == v.Type() {
		dataRV = dataRV.Elem()
	}

	if !dataRV.Type().AssignableTo(v.Elem().Type()) {
		return fmt.Errorf("memory store %s: can not load %T into %T", store.Key, data, val)
	}

	v.Elem().Set(dataRV)
	return nil
}

func (store *MemoryStore) Reset() error {
	store.memory.mu.Lock()
	delete(store.memory.Slots, store.Key)
	store.memory.mu.Unlock()
	return nil
}
