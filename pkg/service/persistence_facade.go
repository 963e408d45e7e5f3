package service

type PersistenceServiceFacade struct {
	Redis  *RedisPersistenceService
	Json   *JsonPersistenceService
	Memory *MemoryService
}

// Get returns the most durable configured backend, redis first, then json, then memory.
func (facade *PersistenceServiceFacade) Get() PersistenceService {
	if facade.Redis != nil {
		return facade.Redis
	}

	if facade.Json != nil {
		return facade.Json
	}

	if facade.Memory == nil {
		facade.Memory = NewMemoryService()
	}

	return facade.Memory
}
