package harness

import (
	"path/filepath"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"gopkg.in/yaml.v3"
)

func ParseCases(d []byte) (cases []*Case, err error) {
	err = yaml.Unmarshal(d, &cases)

	return
}

// NewCaseStorage keeps case suites as yaml files under root. A nil storage
// means the local file system.
func NewCaseStorage(root string, storage stg.FileStorage) *CaseStorage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &CaseStorage{
		root:    root,
		storage: storage,
	}
}

type CaseStorage struct {
	root    string
	storage stg.FileStorage
}

func (cs *CaseStorage) suiteFile(suite string) string {
	return filepath.Join(cs.root, suite)
}

func (cs *CaseStorage) Load(suite string) ([]*Case, error) {
	d, err := cs.storage.ReadFile(cs.suiteFile(suite))
	if err != nil {
		return nil, err
	}

	return ParseCases(d)
}

func (cs *CaseStorage) Save(suite string, cases []*Case) error {
	if err := pathutils.MustDirExists(cs.root); err != nil {
		return err
	}

	d, err := yaml.Marshal(cases)
	if err != nil {
		return err
	}

	return cs.storage.WriteFile(cs.suiteFile(suite), d)
}
