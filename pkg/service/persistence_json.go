package service

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type JsonPersistenceService struct {
	Directory string
}

func (s *JsonPersistenceService) NewStore(id string, subIDs ...string) Store {
	return &JsonStore{
		ID:        id,
		Directory: filepath.Join(append([]string{s.Directory}, subIDs...)...),
	}
}

// JsonStore keeps one value per file, <Directory>/<ID>.json.
type JsonStore struct {
	ID        string
	Directory string
}

func (store JsonStore) path() string {
	return filepath.Join(store.Directory, store.ID) + ".json"
}

func (store JsonStore) Reset() error {
	err := os.Remove(store.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (store JsonStore) Load(val interface{}) error {
	data, err := os.ReadFile(store.path())
	if os.IsNotExist(err) {
		return ErrPersistenceNotExists
	} else if err != nil {
		return errors.Wrapf(err, "json store %s", store.ID)
	}

	if len(data) == 0 {
		return ErrPersistenceNotExists
	}

	return errors.Wrapf(json.Unmarshal(data, val), "json store %s: decode", store.ID)
}

// Save writes through a temporary file so readers never see a partial document.
func (store JsonStore) Save(val interface{}) error {
	if err := os.MkdirAll(store.Directory, 0777); err != nil {
		return errors.Wrapf(err, "json store %s: mkdir", store.ID)
	}

	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "json store %s: encode", store.ID)
	}

	tmp, err := os.CreateTemp(store.Directory, store.ID+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), store.path())
}
